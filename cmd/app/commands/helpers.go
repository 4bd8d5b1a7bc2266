// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Dispatcher turns one raw request document into one raw response document.
type Dispatcher interface {
	Dispatch(ctx context.Context, raw string) string
}

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// writeLine writes one response followed by a newline.
func writeLine(w io.Writer, response string) error {
	if _, err := fmt.Fprintln(w, response); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// lineReader reads newline-terminated requests without ever holding more than
// limit+1 bytes of a single line.
type lineReader struct {
	r     *bufio.Reader
	limit int
}

func newLineReader(r io.Reader, limit int) *lineReader {
	return &lineReader{r: bufio.NewReaderSize(r, 64*1024), limit: limit}
}

// next returns the next line without its newline. A line longer than limit is cut to
// limit+1 bytes and the rest of it is discarded, so it still reads as oversized.
// A limit of zero or less keeps whole lines. At the end of input next returns io.EOF.
func (l *lineReader) next() (line string, truncated bool, err error) {
	var buf []byte
	for {
		chunk, readErr := l.r.ReadSlice('\n')
		data := chunk
		if readErr == nil {
			data = chunk[:len(chunk)-1]
		}

		if l.limit <= 0 {
			buf = append(buf, data...)
		} else if room := l.limit + 1 - len(buf); len(data) > room {
			buf = append(buf, data[:room]...)
			truncated = true
		} else {
			buf = append(buf, data...)
		}

		switch {
		case readErr == nil:
			return string(buf), truncated, nil
		case errors.Is(readErr, bufio.ErrBufferFull):
			continue
		case errors.Is(readErr, io.EOF):
			if len(buf) == 0 && !truncated {
				return "", false, io.EOF
			}
			return string(buf), truncated, nil
		default:
			return "", false, readErr
		}
	}
}

// requestText trims a line for dispatch. Truncated lines are passed on as read so the
// dispatcher rejects them on size. An empty result means the line is blank.
func requestText(line string, truncated bool) string {
	trimmed := strings.TrimSpace(line)
	if truncated && trimmed != "" {
		return line
	}
	return trimmed
}
