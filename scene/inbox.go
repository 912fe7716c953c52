package scene

// Inbox passes scene documents from page callbacks to the render loop.
// Post never blocks; a document not yet received is replaced by a newer one.
type Inbox struct {
	ch chan string
}

func NewInbox() *Inbox {
	return &Inbox{ch: make(chan string, 1)}
}

func (b *Inbox) Post(doc string) {
	for {
		select {
		case b.ch <- doc:
			return
		default:
		}
		select {
		case <-b.ch:
		default:
		}
	}
}

// C returns the channel delivering posted documents.
func (b *Inbox) C() <-chan string {
	return b.ch
}
