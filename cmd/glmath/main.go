// Command glmath prints matrices of a scene and applies them to point clouds.
//
//	glmath check
//	glmath mvp -config scene.yaml [-width 640 -height 480]
//	glmath transform -config scene.yaml -in in.pcd -out out.pcd [-clip] [-box x0,y0,z0,x1,y1,z1]
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
)

var errInvalidCommand = errors.New("invalid command")

var commands = map[string]func(w io.Writer, args []string) error{
	"check":     runCheck,
	"mvp":       runMVP,
	"transform": runTransform,
}

func usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "usage: glmath <command> [flags]")
	fmt.Fprintln(w, "commands:")
	for _, name := range names {
		fmt.Fprintln(w, "  "+name)
	}
}

func run(w io.Writer, args []string) error {
	if len(args) == 0 {
		usage(w)
		return errInvalidCommand
	}
	fn, ok := commands[args[0]]
	if !ok {
		usage(w)
		return fmt.Errorf("%w: %q", errInvalidCommand, args[0])
	}
	return fn(w, args[1:])
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("glmath: ")

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
