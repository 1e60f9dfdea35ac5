package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Table is a header plus rows of integer cells, the shape of every CSV the
// experiment programs emit.
type Table struct {
	Header []string
	Rows   [][]int64
}

func (t *Table) Append(cells ...int64) {
	t.Rows = append(t.Rows, cells)
}

// Column returns column i of every row as float64.
func (t *Table) Column(i int) []float64 {
	col := make([]float64, 0, len(t.Rows))
	for _, r := range t.Rows {
		if i < len(r) {
			col = append(col, float64(r[i]))
		}
	}
	return col
}

// WriteCSV writes the header and rows as comma separated values.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if 0 < len(t.Header) {
		if err := cw.Write(t.Header); err != nil {
			return errors.WithStack(err)
		}
	}
	record := make([]string, 0, len(t.Header))
	for _, r := range t.Rows {
		record = record[:0]
		for _, c := range r {
			record = append(record, strconv.FormatInt(c, 10))
		}
		if err := cw.Write(record); err != nil {
			return errors.WithStack(err)
		}
	}
	cw.Flush()
	return errors.WithStack(cw.Error())
}

func (t *Table) Save(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	if err := t.WriteCSV(f); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	return errors.WithStack(f.Close())
}

// Summary describes one error column.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Max    float64
	SumAbs float64
}

func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	abs := make([]float64, len(values))
	for i, v := range values {
		abs[i] = math.Abs(v)
	}
	mean, std := stat.MeanStdDev(values, nil)
	if len(values) < 2 {
		std = 0
	}
	return Summary{
		Count:  len(values),
		Mean:   mean,
		StdDev: std,
		Max:    floats.Max(abs),
		SumAbs: floats.Sum(abs),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.3f stddev=%.3f max=%.0f sum=%.0f", s.Count, s.Mean, s.StdDev, s.Max, s.SumAbs)
}

// FormatBlock renders a square block as a markdown table.
func FormatBlock[T int32 | uint8](w io.Writer, values []T, n int) {
	sb := strings.Builder{}
	for x := 0; x < n; x += 1 {
		sb.WriteString("|   ")
	}
	sb.WriteString("|\n")
	for x := 0; x < n; x += 1 {
		sb.WriteString("| --- ")
	}
	sb.WriteString("|\n")
	for y := 0; y < n; y += 1 {
		for x := 0; x < n; x += 1 {
			fmt.Fprintf(&sb, "| %d ", values[(y*n)+x])
		}
		sb.WriteString("|\n")
	}
	io.WriteString(w, sb.String())
}
