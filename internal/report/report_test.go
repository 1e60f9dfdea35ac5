package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	tbl := Table{Header: []string{"Pixel", "DCT DC"}}
	tbl.Append(0, 0)
	tbl.Append(1, 32)
	tbl.Append(2, -64)

	t.Run("csv", func(tt *testing.T) {
		buf := bytes.NewBuffer(nil)
		require.NoError(tt, tbl.WriteCSV(buf))
		assert.Equal(tt, "Pixel,DCT DC\n0,0\n1,32\n2,-64\n", buf.String())
	})
	t.Run("column", func(tt *testing.T) {
		assert.Equal(tt, []float64{0, 32, -64}, tbl.Column(1))
		assert.Equal(tt, []float64{}, tbl.Column(5))
	})
	t.Run("save", func(tt *testing.T) {
		path := filepath.Join(tt.TempDir(), "results.csv")
		require.NoError(tt, tbl.Save(path))
		data, err := os.ReadFile(path)
		require.NoError(tt, err)
		assert.Equal(tt, "Pixel,DCT DC\n0,0\n1,32\n2,-64\n", string(data))
	})
}

func TestSummarize(t *testing.T) {
	t.Run("values", func(tt *testing.T) {
		s := Summarize([]float64{-1, 2, -3})
		assert.Equal(tt, 3, s.Count)
		assert.InDelta(tt, -2.0/3.0, s.Mean, 1e-9)
		assert.Equal(tt, 3.0, s.Max)
		assert.Equal(tt, 6.0, s.SumAbs)
		assert.Greater(tt, s.StdDev, 0.0)
	})
	t.Run("single", func(tt *testing.T) {
		s := Summarize([]float64{4})
		assert.Equal(tt, 0.0, s.StdDev)
		assert.Equal(tt, "n=1 mean=4.000 stddev=0.000 max=4 sum=4", s.String())
	})
	t.Run("empty", func(tt *testing.T) {
		assert.Equal(tt, Summary{}, Summarize(nil))
	})
}

func TestFormatBlock(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	FormatBlock(buf, []int32{1, -2, 3, 4}, 2)
	expect := "|   |   |\n| --- | --- |\n| 1 | -2 |\n| 3 | 4 |\n"
	assert.Equal(t, expect, buf.String())
}
