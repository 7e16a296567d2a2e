package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/bits"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

// DefaultTop is how many of the largest groups multiply into the answer.
const DefaultTop = 3

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	// ErrBadTop indicates a non-positive top count.
	ErrBadTop = errors.New("report: top must be positive")

	// ErrProductOverflow indicates the product of the top sizes does not
	// fit in a uint64.
	ErrProductOverflow = errors.New("report: product of top sizes overflows uint64")

	// ErrUnknownFormat indicates an unsupported output format.
	ErrUnknownFormat = errors.New("report: unknown output format")
)

// Report summarizes a finished clustering run.
type Report struct {
	// Sizes holds every non-empty group size, largest first.
	Sizes []int `json:"sizes" yaml:"sizes"`

	// Top is how many leading sizes were multiplied.
	Top int `json:"top" yaml:"top"`

	// Product is the product of the Top largest sizes. With fewer groups
	// than Top it multiplies what exists; with none it is 1.
	Product uint64 `json:"product" yaml:"product"`

	// Groups is the number of non-empty groups.
	Groups int `json:"groups" yaml:"groups"`

	// Placed is the number of points that ended up in some group.
	Placed int `json:"placed" yaml:"placed"`

	// Mean and StdDev describe the size distribution (population statistics).
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
}

// Summarize ranks sizes and computes the report. sizes is not modified.
func Summarize(sizes []int, top int) (Report, error) {
	if top < 1 {
		return Report{}, fmt.Errorf("%w: %d", ErrBadTop, top)
	}

	ranked := append([]int(nil), sizes...)
	sort.Sort(sort.Reverse(sort.IntSlice(ranked)))

	r := Report{Sizes: ranked, Top: top, Product: 1, Groups: len(ranked)}
	for i, s := range ranked {
		if i < top {
			hi, lo := bits.Mul64(r.Product, uint64(s))
			if hi != 0 {
				return Report{}, fmt.Errorf("%w: top %d sizes", ErrProductOverflow, top)
			}
			r.Product = lo
		}
		r.Placed += s
	}

	if len(ranked) > 0 {
		xs := make([]float64, len(ranked))
		for i, s := range ranked {
			xs[i] = float64(s)
		}
		mean, variance := stat.PopMeanVariance(xs, nil)
		r.Mean = mean
		r.StdDev = math.Sqrt(variance)
	}

	return r, nil
}

// Write renders r to w as text, JSON or YAML.
func Write(w io.Writer, r Report, format string) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintf(w, "Product of %d largest sizes: %d\n", r.Top, r.Product)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
