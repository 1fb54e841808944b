package quantity_test

import (
	"math"
	"testing"

	"calendar/internal/core/domain/model/quantity"
	"calendar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewQuantity(t *testing.T) {
	tests := []struct {
		name    string
		n       int64
		wantErr bool
	}{
		{name: "zero", n: 0},
		{name: "positive", n: 42},
		{name: "max", n: math.MaxInt64},
		{name: "negative", n: -1, wantErr: true},
		{name: "min", n: math.MinInt64, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := quantity.NewDays(tt.n)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Zero(t, d)
				return
			}
			require.NoError(t, err)
			require.NoError(t, d.Validate())
			assert.Equal(t, tt.n, d.Value())
		})
	}
}

func TestParseQuantity(t *testing.T) {
	m, err := quantity.ParseMinutes("15")
	require.NoError(t, err)
	assert.Equal(t, int64(15), m.Value())
	assert.Equal(t, "15", m.String())
	assert.Equal(t, "minutes", m.Unit())

	_, err = quantity.ParseMinutes("-1")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = quantity.ParseMinutes("fifteen")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestQuantity_ZeroValue(t *testing.T) {
	var s quantity.Seconds
	assert.Equal(t, quantity.ErrQuantityIsNotConstructed, s.Validate())
}

func TestQuantity_Add(t *testing.T) {
	a := mustHours(t, 5)
	b := mustHours(t, 7)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, mustHours(t, 12), sum)

	_, err = mustHours(t, math.MaxInt64).Add(mustHours(t, 1))
	require.ErrorIs(t, err, errs.ErrArithmeticOverflow)
}

func TestQuantity_SubtractIsAbsoluteDifference(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{name: "larger minus smaller", a: 6, b: 3, want: 3},
		{name: "smaller minus larger", a: 3, b: 6, want: 3},
		{name: "equal", a: 9, b: 9, want: 0},
		{name: "extremes", a: 0, b: math.MaxInt64, want: math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustMinutes(t, tt.a).Subtract(mustMinutes(t, tt.b))
			assert.Equal(t, mustMinutes(t, tt.want), got)
			require.NoError(t, got.Validate())
		})
	}
}

func TestQuantity_Multiply(t *testing.T) {
	got, err := mustHours(t, 4).Multiply(3)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.Value())

	got, err = mustHours(t, 4).Multiply(0)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = mustHours(t, math.MaxInt64/2+1).Multiply(2)
	require.ErrorIs(t, err, errs.ErrArithmeticOverflow)

	_, err = mustHours(t, 1).Multiply(-1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestQuantity_DivideAndModulo(t *testing.T) {
	days, err := quantity.NewDays(17)
	require.NoError(t, err)

	q, err := days.Divide(5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), q.Value())

	r, err := days.Modulo(5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), r.Value())

	_, err = days.Divide(0)
	require.ErrorIs(t, err, errs.ErrDivisionByZero)

	_, err = days.Modulo(0)
	require.ErrorIs(t, err, errs.ErrDivisionByZero)

	_, err = days.Divide(-2)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestQuantity_Compare(t *testing.T) {
	assert.Equal(t, -1, mustHours(t, 1).Compare(mustHours(t, 2)))
	assert.Equal(t, 0, mustHours(t, 2).Compare(mustHours(t, 2)))
	assert.Equal(t, 1, mustHours(t, 3).Compare(mustHours(t, 2)))
}

func TestQuantity_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int64Range(0, math.MaxInt64/2).Draw(t, "a")
		b := rapid.Int64Range(0, math.MaxInt64/2).Draw(t, "b")
		k := rapid.Int64Range(1, 1_000_000).Draw(t, "k")

		qa, _ := quantity.NewSeconds(a)
		qb, _ := quantity.NewSeconds(b)

		sum, err := qa.Add(qb)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if sum.Subtract(qb) != qa {
			t.Fatalf("(a+b)-b != a for a=%d b=%d", a, b)
		}
		if qa.Subtract(qb) != qb.Subtract(qa) {
			t.Fatalf("subtract is not symmetric for a=%d b=%d", a, b)
		}

		q, _ := qa.Divide(k)
		r, _ := qa.Modulo(k)
		if q.Value()*k+r.Value() != a {
			t.Fatalf("div/mod identity broken for a=%d k=%d", a, k)
		}
	})
}

func mustHours(t *testing.T, n int64) quantity.Hours {
	t.Helper()
	h, err := quantity.NewHours(n)
	require.NoError(t, err)
	return h
}

func mustMinutes(t *testing.T, n int64) quantity.Minutes {
	t.Helper()
	m, err := quantity.NewMinutes(n)
	require.NoError(t, err)
	return m
}
