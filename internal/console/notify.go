// Package console renders the storefront and admin screens on a terminal.
// Each view owns its transient fetch/mutate state, talks to the ports
// services directly, and touches the session store only for identity and
// login/logout transitions.
package console

import (
	"fmt"
	"io"
)

// Notifier delivers transient notifications: short, dismissed by scrolling,
// one per action outcome. Every failure produces exactly one of these; no
// error crashes the console.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type writerNotifier struct {
	out io.Writer
}

// NewNotifier returns a Notifier that prints one-line messages to out.
func NewNotifier(out io.Writer) Notifier {
	return &writerNotifier{out: out}
}

func (n *writerNotifier) Success(msg string) {
	fmt.Fprintf(n.out, "✓ %s\n", msg)
}

func (n *writerNotifier) Error(msg string) {
	fmt.Fprintf(n.out, "✗ %s\n", msg)
}
