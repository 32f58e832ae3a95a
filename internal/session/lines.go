package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tatianab/peppers-last-stand/internal/engine"
)

// Prompt is printed before every line the plain channel reads.
const Prompt = "Enter your move: "

// LineChannel is a plain text channel over a reader and a writer, used when
// there is no interactive terminal.
type LineChannel struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLineChannel(in io.Reader, out io.Writer) *LineChannel {
	return &LineChannel{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (c *LineChannel) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(c.out, Prompt); err != nil {
		return "", err
	}

	line, err := c.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		fmt.Fprintln(c.out)
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *LineChannel) Write(events ...engine.Event) error {
	for _, ev := range events {
		if ev.Text == "" {
			continue
		}
		text := ev.Text
		if ev.Kind == engine.EventStatus {
			text = "\n" + text
		}
		if _, err := fmt.Fprintln(c.out, text); err != nil {
			return err
		}
	}
	return nil
}
