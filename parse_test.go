package bitvec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		members []int
		finite  bool
	}{
		{"Binary", "1010", []int{1, 3}, true},
		{"BinaryPrefix", "0b1010", []int{1, 3}, true},
		{"BinaryPrefixUpper", "0B11", []int{0, 1}, true},
		{"LeadingZeros", "00001010", []int{1, 3}, true},
		{"Zero", "0", nil, true},
		{"Hex", "0xa2", []int{1, 5, 7}, true},
		{"HexUpper", "0XA2", []int{1, 5, 7}, true},
		{"Complement", "~1010", []int{0, 2, 4, 100}, false},
		{"ComplementZero", "~0", []int{0, 1, 1 << 20}, false},
		{"ComplementHex", "~0xa", []int{0, 2, 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.finite, b.IsFinite())
			for _, i := range tt.members {
				assert.True(t, b.Test(i), "member %d", i)
			}
		})
	}

	t.Run("ExcludedMembers", func(t *testing.T) {
		m, err := Parse("~1010")
		require.NoError(t, err)
		assert.False(t, m.Test(1))
		assert.False(t, m.Test(3))
	})

	t.Run("Errors", func(t *testing.T) {
		tests := []struct {
			input string
			pos   int
		}{
			{"", -1},
			{"~", -1},
			{"0x", -1},
			{"102", 2},
			{"abc", 0},
			{"0b012", 4},
			{"0x12g4", 4},
			{"~12", 2},
		}

		for _, tt := range tests {
			_, err := Parse(tt.input)
			require.Error(t, err, "input %q", tt.input)

			var pe *ParseError
			require.ErrorAs(t, err, &pe, "input %q", tt.input)
			assert.Equal(t, tt.input, pe.Input)
			assert.Equal(t, tt.pos, pe.Pos, "input %q", tt.input)
		}
	})
}

func TestFromBinaryString(t *testing.T) {
	b, err := FromBinaryString("0b110")
	require.NoError(t, err)
	assert.Equal(t, "110", b.String())

	b, err = FromBinaryString("110")
	require.NoError(t, err)
	assert.Equal(t, "110", b.String())

	_, err = FromBinaryString("~1")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 0, pe.Pos)
}

func TestFromHexString(t *testing.T) {
	b, err := FromHexString("ff")
	require.NoError(t, err)
	n, err := b.Cardinality()
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	b, err = FromHexString("0xDeadBeef")
	require.NoError(t, err)
	u, err := b.ToBigInt()
	require.NoError(t, err)
	assert.Equal(t, uint64(0xdeadbeef), u.Uint64())

	t.Run("MultiWord", func(t *testing.T) {
		b, err := FromHexString("0x1" + "0000000000000000") // bit 64
		require.NoError(t, err)
		assert.True(t, b.Test(64))
		n, err := b.Cardinality()
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestFromUint(t *testing.T) {
	assert.True(t, FromUint(0).IsEmpty())
	assert.Equal(t, "1010", FromUint(0b1010).String())
	assert.True(t, FromUint(1<<63).Test(63))
}

func TestFromBigInt(t *testing.T) {
	b, err := FromBigInt(big.NewInt(0xa2))
	require.NoError(t, err)
	assert.True(t, b.Equal(FromUint(0xa2)))

	t.Run("WideValue", func(t *testing.T) {
		x := new(big.Int).Lsh(big.NewInt(1), 100)
		b, err := FromBigInt(x)
		require.NoError(t, err)
		assert.True(t, b.Test(100))

		n, err := b.Cardinality()
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := FromBigInt(big.NewInt(-7))
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "negative value", pe.Reason)
	})

	t.Run("Zero", func(t *testing.T) {
		b, err := FromBigInt(new(big.Int))
		require.NoError(t, err)
		assert.True(t, b.IsEmpty())
	})
}

func TestFromBytes(t *testing.T) {
	b := FromBytes([]byte{0xa2})
	assert.True(t, b.Equal(FromUint(0xa2)))

	assert.True(t, FromBytes(nil).IsEmpty())

	t.Run("BigEndianOrder", func(t *testing.T) {
		b := FromBytes([]byte{0x01, 0x00})
		assert.True(t, b.Test(8))
		n, err := b.Cardinality()
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("MatchesBigInt", func(t *testing.T) {
		p := []byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0, 0x11}
		b := FromBytes(p)
		x := new(big.Int).SetBytes(p)

		for i := 0; i < x.BitLen(); i++ {
			assert.Equal(t, x.Bit(i), b.Get(i), "bit %d", i)
		}
	})
}

func TestFromIndices(t *testing.T) {
	b, err := FromIndices([]int{2, 4, 6})
	require.NoError(t, err)

	got, err := b.ToArray()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, got)

	t.Run("Duplicates", func(t *testing.T) {
		b, err := FromIndices([]int{3, 3, 3})
		require.NoError(t, err)
		n, err := b.Cardinality()
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := FromIndices([]int{1, -5})
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "-5", pe.Input)
	})
}

func TestRandom(t *testing.T) {
	assert.True(t, Random(0).IsEmpty())

	b := Random(100)
	assert.True(t, b.IsFinite())
	assert.LessOrEqual(t, b.Len(), 128)

	hi, err := b.Msb()
	require.NoError(t, err)
	assert.Less(t, hi, 100)

	t.Run("NegativeCountPanics", func(t *testing.T) {
		require.PanicsWithError(t, "bitvec: Random: invalid index -1", func() {
			Random(-1)
		})
	})
}
