package notify

import (
	"io"
	"os"
)

// Beeper gives local audible feedback by ringing the terminal bell.
// It is not a Channel: it carries no message and never fails the tick.
type Beeper struct {
	// out is where the bell character is written.
	out io.Writer
}

// NewBeeper creates a beeper writing to stdout.
func NewBeeper() *Beeper {
	return &Beeper{out: os.Stdout}
}

// NewBeeperTo creates a beeper writing to the provided writer, for tests.
func NewBeeperTo(out io.Writer) *Beeper {
	return &Beeper{out: out}
}

// Beep rings the bell once.
func (b *Beeper) Beep() {
	if b == nil || b.out == nil {
		return
	}

	_, _ = b.out.Write([]byte{'\a'})
}
