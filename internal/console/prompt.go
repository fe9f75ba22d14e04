package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user to confirm a destructive action before the
// request is issued. Answering anything but yes cancels the action with no
// request sent.
type Prompter interface {
	Confirm(question string) bool
}

type ioPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading answers from in. The reader is
// shared with the shell so neither buffers input away from the other.
func NewPrompter(in *bufio.Reader, out io.Writer) Prompter {
	return &ioPrompter{in: in, out: out}
}

func (p *ioPrompter) Confirm(question string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
