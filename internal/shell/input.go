package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// ErrBadInput is wrapped by every token that fails to parse.
var ErrBadInput = errors.New("shell: invalid input")

// line is one input line split into tokens, or the read error that ended
// the stream.
type line struct {
	fields []string
	err    error
}

// tokenReader splits the input into whitespace-separated tokens, so values
// may be typed on one line or spread across several. Lines are read by a
// background goroutine, so a pending read can be abandoned through ctx.
type tokenReader struct {
	br      *bufio.Reader
	lines   chan line
	done    chan struct{}
	start   sync.Once
	stop    sync.Once
	pending []string
	err     error
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{
		br:    bufio.NewReader(r),
		lines: make(chan line),
		done:  make(chan struct{}),
	}
}

// pump forwards lines until the input ends or close is called.
func (t *tokenReader) pump() {
	defer close(t.lines)
	for {
		s, err := t.br.ReadString('\n')
		select {
		case t.lines <- line{fields: strings.Fields(s), err: err}:
		case <-t.done:
			return
		}
		if err != nil {
			return
		}
	}
}

// close releases the reader goroutine once its current read returns.
func (t *tokenReader) close() {
	t.stop.Do(func() { close(t.done) })
}

// next returns the next token, io.EOF once the input is exhausted, or
// ctx.Err() if ctx ends while waiting for input.
func (t *tokenReader) next(ctx context.Context) (string, error) {
	t.start.Do(func() { go t.pump() })
	for len(t.pending) == 0 {
		if t.err != nil {
			return "", t.err
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case l, ok := <-t.lines:
			if !ok {
				t.err = io.EOF
				continue
			}
			t.pending = l.fields
			if l.err != nil {
				t.err = l.err
			}
		}
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]

	return tok, nil
}

// discardLine drops the unread tokens of the current line.
func (t *tokenReader) discardLine() {
	t.pending = nil
}

func (t *tokenReader) nextInt(ctx context.Context) (int, error) {
	tok, err := t.next(ctx)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer: %w", tok, ErrBadInput)
	}
	return v, nil
}

func (t *tokenReader) nextFloat(ctx context.Context) (float64, error) {
	tok, err := t.next(ctx)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", tok, ErrBadInput)
	}
	return v, nil
}
