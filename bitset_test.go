package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	b := New()

	assert.True(t, b.IsEmpty())
	assert.True(t, b.IsFinite())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.WordCount())
	assert.Equal(t, "0", b.String())
}

func TestFrom(t *testing.T) {
	t.Run("CopiesInput", func(t *testing.T) {
		buf := []uint64{0b1010, 7}
		b := From(buf)

		buf[0] = 0
		assert.True(t, b.Test(1))
		assert.True(t, b.Test(3))
		assert.Equal(t, 2, b.WordCount())
	})

	t.Run("TrimsTrailingZeroWords", func(t *testing.T) {
		b := From([]uint64{1, 0, 0})

		assert.Equal(t, 1, b.WordCount())
		assert.Equal(t, 64, b.Len())
	})

	t.Run("Empty", func(t *testing.T) {
		assert.True(t, From(nil).IsEmpty())
		assert.True(t, From([]uint64{0, 0}).IsEmpty())
	})
}

func TestClone(t *testing.T) {
	b := New().Set(1).Set(100)
	c := b.Clone()

	require.True(t, c.Equal(b))

	c.Set(5)
	assert.False(t, b.Test(5))
	assert.True(t, c.Test(5))

	m := b.Not().Clone()
	assert.False(t, m.IsFinite())
	assert.True(t, m.Equal(b.Not()))
}

func TestWords(t *testing.T) {
	b := New().Set(0).Set(65)

	w := b.Words()
	require.Equal(t, []uint64{1, 2}, w)

	w[0] = 0
	assert.True(t, b.Test(0))

	assert.Nil(t, New().Words())
}

func TestCardinality(t *testing.T) {
	t.Run("Finite", func(t *testing.T) {
		n, err := New().Cardinality()
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		b, err := Parse("1010")
		require.NoError(t, err)
		n, err = b.Cardinality()
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		n, err = New().SetRange(0, 1000).Cardinality()
		require.NoError(t, err)
		assert.Equal(t, 1000, n)
	})

	t.Run("Indefinite", func(t *testing.T) {
		b, err := Parse("0")
		require.NoError(t, err)

		_, err = b.Not().Cardinality()
		require.ErrorIs(t, err, ErrIndefinite)
	})
}

func TestRank(t *testing.T) {
	b, err := Parse("1010")
	require.NoError(t, err)

	tests := []struct {
		i    int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{1000, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Rank(tt.i), "Rank(%d)", tt.i)
	}

	t.Run("Indefinite", func(t *testing.T) {
		m, err := Parse("~1010")
		require.NoError(t, err)

		assert.Equal(t, 8, m.Rank(9))
		assert.Equal(t, 62, m.Rank(63))
		assert.Equal(t, 126, m.Rank(127))

		all, err := Parse("~0")
		require.NoError(t, err)
		assert.Equal(t, 10, all.Rank(9))
	})

	t.Run("NegativeIndexPanics", func(t *testing.T) {
		require.PanicsWithError(t, "bitvec: Rank: invalid index -1", func() {
			New().Rank(-1)
		})
	})
}

func TestLenTracksExplicitWords(t *testing.T) {
	b := New()
	require.Equal(t, 0, b.Len())

	b.Set(0)
	assert.Equal(t, 64, b.Len())
	assert.Equal(t, 1, b.WordCount())

	b.Set(64)
	assert.Equal(t, 128, b.Len())
	assert.Equal(t, 2, b.WordCount())

	b.Clear(64)
	assert.Equal(t, 64, b.Len())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, New().IsEmpty())
	assert.False(t, New().Set(3).IsEmpty())
	assert.True(t, New().Set(3).Clear(3).IsEmpty())

	all, err := Parse("~0")
	require.NoError(t, err)
	assert.False(t, all.IsEmpty())
	assert.False(t, all.IsFinite())
}

func TestCanonicalForm(t *testing.T) {
	t.Run("MutationNeverLeavesTailWords", func(t *testing.T) {
		b := New().Set(500)
		require.Equal(t, 8, b.WordCount())

		b.Clear(500)
		assert.Equal(t, 0, b.WordCount())
		assert.True(t, b.IsEmpty())
	})

	t.Run("IndefiniteTrimsOnesWords", func(t *testing.T) {
		m := New().Not()
		require.Equal(t, 0, m.WordCount())

		m.Clear(100).Set(100)
		assert.Equal(t, 0, m.WordCount())
		assert.True(t, m.Equal(New().Not()))
	})

	t.Run("EqualValuesShareStructure", func(t *testing.T) {
		a := New().SetRange(10, 20)
		b := New().Set(700).SetRange(10, 20).Clear(700)

		assert.True(t, a.Equal(b))
		assert.Equal(t, a.WordCount(), b.WordCount())
		assert.Equal(t, a.Words(), b.Words())
	})
}
