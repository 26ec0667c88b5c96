package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

var (
	toastTitle       = color.New(color.Bold)
	destructiveTitle = color.New(color.Bold, color.FgRed)
	toastBody        = color.New(color.Faint)
)

// Terminal renders toasts as short styled lines on a writer, usually stderr
// so they do not interleave with the rendered view on stdout.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTerminal creates a Terminal sink writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) Notify(n Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()

	title := toastTitle
	glyph := "✔"
	if n.Variant == Destructive {
		title = destructiveTitle
		glyph = "✖"
	}

	// Errors from the terminal are ignored: toast delivery is fire-and-forget.
	_, _ = fmt.Fprintf(t.out, "%s %s", glyph, title.Sprint(n.Title))
	if n.Description != "" {
		_, _ = fmt.Fprintf(t.out, ": %s", toastBody.Sprint(n.Description))
	}
	_, _ = fmt.Fprintln(t.out)
}
