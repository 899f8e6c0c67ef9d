package discrete

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-lti/dsp/filter/tf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscretizeBankMatchesSequential(t *testing.T) {
	hs := make([]tf.TransferFunction, 0, 16)
	for i := 1; i <= 16; i++ {
		h, err := tf.ButterworthLowpass(fmt.Sprintf("b%d", i), 1+i%5, 2*math.Pi*float64(20*i))
		require.NoError(t, err)
		hs = append(hs, h)
	}

	bank, err := DiscretizeBank(hs, 8000)
	require.NoError(t, err)
	require.Len(t, bank, len(hs))

	for i, h := range hs {
		want, err := Discretize(h, 8000)
		require.NoError(t, err)

		assert.Equal(t, h.Name(), bank[i].Name())
		assert.Equal(t, want.InputCoefficients(), bank[i].InputCoefficients())
		assert.Equal(t, want.OutputCoefficients(), bank[i].OutputCoefficients())
	}
}

func TestDiscretizeBankError(t *testing.T) {
	good, err := tf.FirstOrderLowpass("good", 10)
	require.NoError(t, err)
	bad, err := tf.New("bad", 1, []float64{1, 0, 0}, []float64{1, 1})
	require.NoError(t, err)

	filters, err := DiscretizeBank([]tf.TransferFunction{good, bad, good}, 100)
	require.ErrorIs(t, err, ErrNotCausal)
	assert.Contains(t, err.Error(), "bank entry 1")
	assert.Nil(t, filters)
}

func TestDiscretizeBankEmpty(t *testing.T) {
	filters, err := DiscretizeBank(nil, 100)
	require.NoError(t, err)
	assert.Empty(t, filters)
}
