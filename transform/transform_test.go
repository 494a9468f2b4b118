package transform

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/owo/errs"
	"github.com/arloliu/owo/format"
)

func TestMoveToFront_Forward(t *testing.T) {
	tests := []struct {
		name string
		in   []Symbol
		want []Symbol
	}{
		{"empty", []Symbol{}, []Symbol{}},
		{"repeats become zero", []Symbol{'b', 'b', 'b'}, []Symbol{'b', 0, 0}},
		{"alternating", []Symbol{1, 0, 1, 0}, []Symbol{1, 1, 1, 1}},
		{"unseen symbol escapes", []Symbol{1000, 1000, 3}, []Symbol{256, 1000, 0, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveToFront{}.Forward(tt.in)
			require.Equal(t, tt.want, got)

			back, err := MoveToFront{}.Inverse(got)
			require.NoError(t, err)
			require.Equal(t, tt.in, back)
		})
	}
}

func TestMoveToFront_InverseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   []Symbol
	}{
		{"index beyond list", []Symbol{257}},
		{"escape at end", []Symbol{256}},
		{"escape for known symbol", []Symbol{256, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MoveToFront{}.Inverse(tt.in)
			require.ErrorIs(t, err, errs.ErrCorruptBitstream)
		})
	}
}

func TestRunLength(t *testing.T) {
	long := make([]Symbol, 600)
	for i := range long {
		long[i] = 9
	}

	tests := []struct {
		name string
		in   []Symbol
		want []Symbol
	}{
		{"empty", []Symbol{}, []Symbol{}},
		{"single", []Symbol{4}, []Symbol{4, 1}},
		{"runs", []Symbol{1, 1, 1, 2, 3, 3}, []Symbol{1, 3, 2, 1, 3, 2}},
		{"split long run", long, []Symbol{9, 255, 9, 255, 9, 90}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RunLength{}.Forward(tt.in)
			require.Equal(t, tt.want, got)

			back, err := RunLength{}.Inverse(got)
			require.NoError(t, err)
			require.Equal(t, tt.in, back)
		})
	}
}

func TestRunLength_InverseErrors(t *testing.T) {
	for _, in := range [][]Symbol{{1}, {1, 0}, {1, 256}} {
		_, err := RunLength{}.Inverse(in)
		require.ErrorIs(t, err, errs.ErrCorruptBitstream)
	}
}

func TestChain_RoundTrip(t *testing.T) {
	chain, err := NewChain(format.TransformMoveToFront, format.TransformRunLength)
	require.NoError(t, err)
	require.Equal(t, []format.TransformType{format.TransformMoveToFront, format.TransformRunLength}, chain.Types())
	require.Equal(t, format.TransformChain, chain.Type())

	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 100; round++ {
		in := make([]Symbol, rng.Intn(500))
		for i := range in {
			in[i] = Symbol(rng.Intn(4)) * 300
		}

		out, err := chain.Inverse(chain.Forward(in))
		require.NoError(t, err)
		require.Equal(t, in, out)
	}
}

func TestChain_Order(t *testing.T) {
	chain, err := NewChain(format.TransformRunLength, format.TransformMoveToFront)
	require.NoError(t, err)

	in := []Symbol{5, 5, 5, 5}
	// Run-length yields (5, 4). Moving 5 to the front pushes 4 to index 5.
	require.Equal(t, []Symbol{5, 5}, chain.Forward(in))

	_, err = chain.Inverse([]Symbol{5})
	require.ErrorIs(t, err, errs.ErrCorruptBitstream)
}

func TestNew_Unknown(t *testing.T) {
	_, err := New(format.TransformType(0))
	require.ErrorIs(t, err, errs.ErrUnknownTransform)

	_, err = NewChain(format.TransformMoveToFront, format.TransformChain)
	require.ErrorIs(t, err, errs.ErrUnknownTransform)
}
