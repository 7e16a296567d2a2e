package point_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nearpair/point"
)

// TestParse covers the accepted format and each malformed-line category.
func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want point.Point
		err  error
	}{
		{name: "plain", in: "162,817,812", want: point.Point{X: 162, Y: 817, Z: 812}},
		{name: "negative", in: "-1,0,-7", want: point.Point{X: -1, Y: 0, Z: -7}},
		{name: "spaces", in: " 1 , 2 ,3 ", want: point.Point{X: 1, Y: 2, Z: 3}},
		{name: "two fields", in: "1,2", err: point.ErrWrongDimensions},
		{name: "four fields", in: "1,2,3,4", err: point.ErrWrongDimensions},
		{name: "empty field", in: "1,,3", err: point.ErrBadCoordinate},
		{name: "letters", in: "a,b,c", err: point.ErrBadCoordinate},
		{name: "float", in: "1.5,2,3", err: point.ErrBadCoordinate},
		{name: "too large", in: "1073741825,0,0", err: point.ErrCoordinateRange},
		{name: "too small", in: "0,-1073741825,0", err: point.ErrCoordinateRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := point.Parse(tc.in)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestParse_BoundaryCoordinate accepts exactly ±MaxCoordinate.
func TestParse_BoundaryCoordinate(t *testing.T) {
	p, err := point.Parse("1073741824,-1073741824,0")
	require.NoError(t, err)
	assert.Equal(t, point.MaxCoordinate, p.X)
	assert.Equal(t, -point.MaxCoordinate, p.Y)
}

// TestLoad reads points in order and keeps duplicates as distinct entries.
func TestLoad(t *testing.T) {
	in := "0,0,0\n1,0,0\n\n0,0,0\n"
	s, err := point.Load(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, point.Point{}, s.At(0))
	assert.Equal(t, point.Point{X: 1}, s.At(1))
	assert.Equal(t, s.At(0), s.At(2)) // same value, different identity
}

// TestLoad_Malformed returns a *LineError and no store.
func TestLoad_Malformed(t *testing.T) {
	s, err := point.Load(strings.NewReader("1,2,3\n4,5\n6,7,8\n"))
	assert.Nil(t, s)
	require.ErrorIs(t, err, point.ErrWrongDimensions)

	var le *point.LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 2, le.Line)
	assert.Equal(t, "4,5", le.Text)
}

// TestLoad_MaxPoints enforces the point limit.
func TestLoad_MaxPoints(t *testing.T) {
	in := "0,0,0\n1,1,1\n2,2,2\n"

	_, err := point.Load(strings.NewReader(in), point.WithMaxPoints(2))
	assert.ErrorIs(t, err, point.ErrTooManyPoints)

	s, err := point.Load(strings.NewReader(in), point.WithMaxPoints(3))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	_, err = point.Load(strings.NewReader(in), point.WithMaxPoints(-1))
	assert.ErrorIs(t, err, point.ErrOptionViolation)
}

// TestLoadFile reads from disk and reports a missing file.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("1,2,3\n"), 0o644))

	s, err := point.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []point.Point{{X: 1, Y: 2, Z: 3}}, s.Points())

	_, err = point.LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestStore_Copies keeps the store immutable from the caller's side.
func TestStore_Copies(t *testing.T) {
	src := []point.Point{{X: 1}, {X: 2}}
	s := point.NewStore(src)
	src[0].X = 99

	out := s.Points()
	out[1].X = 42

	assert.Equal(t, int64(1), s.At(0).X)
	assert.Equal(t, int64(2), s.At(1).X)
	assert.Equal(t, "1,0,0", s.At(0).String())
}
