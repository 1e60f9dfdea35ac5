package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Run("valid", func(tt *testing.T) {
		for _, k := range []Kind{DCT, ADST, WHT, Float} {
			v, err := ParseKind(k.String())
			require.NoError(tt, err)
			assert.Equal(tt, k, v)
		}
		v, err := ParseKind("ADST")
		require.NoError(tt, err)
		assert.Equal(tt, ADST, v)
	})
	t.Run("invalid", func(tt *testing.T) {
		_, err := ParseKind("haar")
		assert.ErrorIs(tt, err, ErrUnknownKind)
		assert.Equal(tt, "unknown(7)", Kind(7).String())
	})
}

func TestParseTxType(t *testing.T) {
	t.Run("valid", func(tt *testing.T) {
		expect := map[string]TxType{"0": DCT_DCT, "1": ADST_DCT, "2": DCT_ADST, "3": ADST_ADST}
		for s, tx := range expect {
			v, err := ParseTxType(s)
			require.NoError(tt, err)
			assert.Equal(tt, tx, v)
		}
	})
	t.Run("invalid", func(tt *testing.T) {
		for _, s := range []string{"4", "-1", "dct", ""} {
			_, err := ParseTxType(s)
			assert.ErrorIs(tt, err, ErrUnsupportedTxType, "%q", s)
		}
	})
	t.Run("directions", func(tt *testing.T) {
		assert.Equal(tt, ADST, ADST_DCT.vertical())
		assert.Equal(tt, DCT, ADST_DCT.horizontal())
		assert.Equal(tt, DCT, DCT_ADST.vertical())
		assert.Equal(tt, ADST, DCT_ADST.horizontal())
		assert.Equal(tt, "ADST_ADST", ADST_ADST.String())
	})
}
