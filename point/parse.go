package point

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse decodes a single "x,y,z" line into a Point.
//
// Errors: ErrWrongDimensions, ErrBadCoordinate, ErrCoordinateRange.
func Parse(s string) (Point, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("%w: got %d", ErrWrongDimensions, len(fields))
	}

	var c [3]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return Point{}, fmt.Errorf("%w: %q", ErrBadCoordinate, f)
		}
		if v > MaxCoordinate || v < -MaxCoordinate {
			return Point{}, fmt.Errorf("%w: %d", ErrCoordinateRange, v)
		}
		c[i] = v
	}

	return Point{X: c[0], Y: c[1], Z: c[2]}, nil
}

// Load reads one point per line from r. Blank lines are skipped.
// The first malformed line aborts the load with a *LineError.
func Load(r io.Reader, opts ...Option) (*Store, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var pts []Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		p, err := Parse(text)
		if err != nil {
			return nil, &LineError{Line: line, Text: text, Err: err}
		}
		if o.MaxPoints > 0 && len(pts) == o.MaxPoints {
			return nil, fmt.Errorf("%w: more than %d", ErrTooManyPoints, o.MaxPoints)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("point: read input: %w", err)
	}

	return &Store{points: pts}, nil
}

// LoadFile opens path and calls Load on its contents.
func LoadFile(path string, opts ...Option) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("point: open input: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}
