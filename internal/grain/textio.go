package grain

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteText exports the field as a "<width> <height>" header followed by one
// "<x> <y> <state>" line per cell.
func (f *Field) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", f.W, f.H); err != nil {
		return err
	}
	for p, c := range f.All() {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", p.X, p.Y, c.state); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadText imports a field written by WriteText. A legacy "Size:" prefix on
// the header is accepted. Malformed lines are skipped and reported as
// LineErrors; only a bad header or a read failure aborts the import.
func ReadText(r io.Reader) (*Field, []*LineError, error) {
	sc := bufio.NewScanner(r)
	line := 0
	var header string
	for sc.Scan() {
		line++
		header = strings.TrimSpace(sc.Text())
		if header != "" {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}
	w, h, err := parseHeader(header)
	if err != nil {
		return nil, nil, err
	}
	f := New(w, h)

	var skipped []*LineError
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if err := f.applyLine(text); err != nil {
			skipped = append(skipped, &LineError{Line: line, Text: text, Err: err})
		}
	}
	if err := sc.Err(); err != nil {
		return f, skipped, fmt.Errorf("reading line %d: %w", line+1, err)
	}
	f.Commit()
	return f, skipped, nil
}

func parseHeader(header string) (int, int, error) {
	header = strings.TrimPrefix(header, "Size:")
	parts := strings.Fields(header)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, header)
	}
	w, errW := strconv.Atoi(parts[0])
	h, errH := strconv.Atoi(parts[1])
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, header)
	}
	return w, h, nil
}

func (f *Field) applyLine(text string) error {
	parts := strings.Fields(text)
	if len(parts) != 3 {
		return ErrMalformedLine
	}
	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
		vals[i] = v
	}
	c := f.Cell(vals[0], vals[1])
	if c == nil {
		return ErrOutOfBounds
	}
	if vals[2] < Inclusion {
		return fmt.Errorf("%w: state %d", ErrMalformedLine, vals[2])
	}
	c.SetState(vals[2])
	return nil
}
