package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/seqsense/glmath/mat"
	"github.com/seqsense/glmath/mesh"
	"github.com/seqsense/glmath/scene"
)

var (
	errMissingFlag = errors.New("missing flag")
	errInvalidBox  = errors.New("invalid box")
	errEmptyBox    = errors.New("empty crop box")
)

// boxFlag parses "minx,miny,minz,maxx,maxy,maxz".
type boxFlag struct {
	box mesh.Box
	set bool
}

func (f *boxFlag) String() string {
	if !f.set {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g,%g,%g,%g",
		f.box.Min[0], f.box.Min[1], f.box.Min[2],
		f.box.Max[0], f.box.Max[1], f.box.Max[2],
	)
}

func (f *boxFlag) Set(s string) error {
	fields := strings.Split(s, ",")
	if len(fields) != 6 {
		return fmt.Errorf("%w: want 6 values, got %d", errInvalidBox, len(fields))
	}
	var v [6]float32
	for i, field := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
		if err != nil {
			return fmt.Errorf("%w: %v", errInvalidBox, err)
		}
		v[i] = float32(x)
	}
	f.box = mesh.Box{
		Min: mat.NewVec4(v[0], v[1], v[2], 1),
		Max: mat.NewVec4(v[3], v[4], v[5], 1),
	}
	f.set = true
	return nil
}

func loadScene(path string) (*scene.Config, error) {
	if path == "" {
		return scene.Default(), nil
	}
	return scene.LoadFile(path)
}

func runMVP(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("mvp", flag.ContinueOnError)
	config := fs.String("config", "", "scene file, the built-in scene if empty")
	width := fs.Int("width", 0, "viewport width overriding the aspect ratio")
	height := fs.Int("height", 0, "viewport height overriding the aspect ratio")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, err := loadScene(*config)
	if err != nil {
		return err
	}
	if *width > 0 && *height > 0 {
		c = c.WithAspect(*width, *height)
	}
	fmt.Fprintf(w, "model:\n%v\n", c.ModelMatrix())
	fmt.Fprintf(w, "view:\n%v\n", c.View())
	fmt.Fprintf(w, "projection:\n%v\n", c.ProjectionMatrix())
	fmt.Fprintf(w, "mvp:\n%v\n", c.MVP())
	return nil
}

func runTransform(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("transform", flag.ContinueOnError)
	config := fs.String("config", "", "scene file, the built-in scene if empty")
	in := fs.String("in", "", "input PCD file")
	out := fs.String("out", "", "output PCD file")
	clip := fs.Bool("clip", false, "apply the full MVP and the perspective divide, dropping points outside the clip volume")
	box := &boxFlag{}
	fs.Var(box, "box", "keep only points inside `minx,miny,minz,maxx,maxy,maxz`, in normalized device coordinates with -clip")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("%w: -in and -out are required", errMissingFlag)
	}

	var crop *mesh.Box
	switch {
	case *clip && box.set:
		b := mesh.ClipVolume.Intersect(box.box)
		crop = &b
	case *clip:
		crop = &mesh.ClipVolume
	case box.set:
		crop = &box.box
	}
	if crop != nil && !crop.IsValid() {
		return fmt.Errorf("%w: %v - %v", errEmptyBox, crop.Min.Vec3(), crop.Max.Vec3())
	}

	c, err := loadScene(*config)
	if err != nil {
		return err
	}

	fi, err := os.Open(*in)
	if err != nil {
		return err
	}
	defer fi.Close()
	var vs []mat.Vec4
	if *clip {
		if vs, err = mesh.Load(fi); err != nil {
			return err
		}
		vs = mesh.PerspectiveDivide(mesh.Transform(vs, c.MVP()))
	} else if vs, err = mesh.LoadTransformed(fi, c.ModelMatrix()); err != nil {
		return err
	}
	if crop != nil {
		vs = mesh.Crop(vs, *crop)
	}

	if min, max, err := mesh.Bounds(vs); err == nil {
		log.Printf("%d points, bounds %v - %v", len(vs), min.Vec3(), max.Vec3())
	}

	fo, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := mesh.Save(fo, vs); err != nil {
		fo.Close()
		return err
	}
	if err := fo.Close(); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %d points to %s\n", len(vs), *out)
	return nil
}
