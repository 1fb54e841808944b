package bounded_test

import (
	"math"
	"testing"

	"calendar/internal/pkg/bounded"
	"calendar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCheck(t *testing.T) {
	require.NoError(t, bounded.Check("hour", 0, 0, 23))
	require.NoError(t, bounded.Check("hour", 23, 0, 23))

	err := bounded.Check("hour", 24, 0, 23)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	var rangeErr *errs.ValueIsOutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 24, rangeErr.Value)
	assert.Equal(t, 0, rangeErr.Min)
	assert.Equal(t, 23, rangeErr.Max)
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "12", want: 12},
		{in: " 7 ", want: 7},
		{in: "-44", want: -44},
		{in: "+3", want: 3},
		{in: "", wantErr: true},
		{in: "1a", wantErr: true},
		{in: "1.5", wantErr: true},
		{in: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := bounded.ParseInt("value", tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBounded(t *testing.T) {
	n, err := bounded.ParseBounded("month", "12", 1, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = bounded.ParseBounded("month", "13", 1, 12)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = bounded.ParseBounded("month", "x", 1, 12)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCheckedArithmetic(t *testing.T) {
	_, ok := bounded.Add(math.MaxInt64, 1)
	assert.False(t, ok)
	_, ok = bounded.Add(math.MinInt64, -1)
	assert.False(t, ok)
	_, ok = bounded.Sub(math.MinInt64, 1)
	assert.False(t, ok)
	_, ok = bounded.Sub(math.MaxInt64, -1)
	assert.False(t, ok)
	_, ok = bounded.Mul(math.MaxInt64/2+1, 2)
	assert.False(t, ok)
	_, ok = bounded.Mul(math.MinInt64, -1)
	assert.False(t, ok)

	p, ok := bounded.Mul(-3, 4)
	assert.True(t, ok)
	assert.Equal(t, int64(-12), p)
}

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b     int64
		div, mod int64
	}{
		{a: 7, b: 2, div: 3, mod: 1},
		{a: -7, b: 2, div: -4, mod: 1},
		{a: 7, b: -2, div: -4, mod: -1},
		{a: -7, b: -2, div: 3, mod: -1},
		{a: -8, b: 4, div: -2, mod: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.div, bounded.FloorDiv(tt.a, tt.b), "%d div %d", tt.a, tt.b)
		assert.Equal(t, tt.mod, bounded.FloorMod(tt.a, tt.b), "%d mod %d", tt.a, tt.b)
	}
}

func TestFloorDivModIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int64Range(-1_000_000_000, 1_000_000_000).Draw(t, "a")
		b := rapid.Int64Range(1, 100_000).Draw(t, "b")
		if rapid.Bool().Draw(t, "negative") {
			b = -b
		}

		q := bounded.FloorDiv(a, b)
		m := bounded.FloorMod(a, b)
		if q*b+m != a {
			t.Fatalf("%d*%d+%d != %d", q, b, m, a)
		}
		if b > 0 && (m < 0 || m >= b) {
			t.Fatalf("mod %d out of [0,%d)", m, b)
		}
	})
}
