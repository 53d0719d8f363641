package ioreconcile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/d2tools/d2tdb/pkg/canned"
	"github.com/dustin/go-humanize"
)

type prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt creates a Confirmer that prints the summary to out and reads
// one line from in for every decision. Only "y" and "yes" commit.
func NewPrompt(in io.Reader, out io.Writer) canned.Confirmer {
	return &prompt{in: bufio.NewReader(in), out: out}
}

type answer struct {
	line string
	err  error
}

func (p *prompt) Confirm(ctx context.Context, s canned.Summary) (bool, error) {
	fmt.Fprintf(p.out, "\nReady to commit %s:\n", s.Name)
	fmt.Fprintf(p.out, "  canned analyses: %s\n", humanize.Comma(int64(s.Analyses)))
	fmt.Fprintf(p.out, "  new datasets:    %s\n", humanize.Comma(int64(s.Datasets)))
	fmt.Fprintf(p.out, "  new terms:       %s\n", humanize.Comma(int64(s.Terms)))
	fmt.Fprintf(p.out, "  metadata rows:   %s\n", humanize.Comma(int64(s.Metadata)))
	fmt.Fprint(p.out, "\nCommit the transaction? (yes/no): ")

	ch := make(chan answer, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		ch <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, CancelledError(ctx.Err())
	case a := <-ch:
		if a.err != nil && !(errors.Is(a.err, io.EOF) && a.line != "") {
			return false, ConfirmError(a.err)
		}
		res := strings.ToLower(strings.TrimSpace(a.line))
		return res == "y" || res == "yes", nil
	}
}

type auto struct{}

// NewAuto creates a Confirmer that always commits.
func NewAuto() canned.Confirmer {
	return auto{}
}

func (auto) Confirm(context.Context, canned.Summary) (bool, error) {
	return true, nil
}
