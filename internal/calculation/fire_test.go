package calculation

import (
	"errors"
	"testing"

	"github.com/napkincalc/napkin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIRENumber(t *testing.T) {
	got, err := FIRENumber(d(40000), d(4))
	require.NoError(t, err)
	assert.True(t, got.Equal(d(1000000)), "got %s", got)

	got, err = FIRENumber(d(60000), d(3.5))
	require.NoError(t, err)
	assert.Equal(t, "1714285.71", got.StringFixed(2))
}

func TestFIRENumber_Invalid(t *testing.T) {
	for _, rate := range []float64{0, -4} {
		_, err := FIRENumber(d(40000), d(rate))
		var ie *domain.InvalidInputError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, "withdrawal_rate", ie.Field)
	}
	_, err := FIRENumber(d(-1), d(4))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestBaristaFIRENumber(t *testing.T) {
	got, err := BaristaFIRENumber(d(40000), d(20000), d(4))
	require.NoError(t, err)
	assert.True(t, got.Equal(d(500000)), "got %s", got)

	got, err = BaristaFIRENumber(d(40000), d(50000), d(4))
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestCoastNumber(t *testing.T) {
	got, err := CoastNumber(d(1210000), d(0.1), 2)
	require.NoError(t, err)
	assert.True(t, got.Equal(d(1000000)), "got %s", got)

	got, err = CoastNumber(d(1000000), d(0.1), 0)
	require.NoError(t, err)
	assert.True(t, got.Equal(d(1000000)))

	_, err = CoastNumber(d(1000000), d(0.1), -1)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = CoastNumber(d(1000000), d(-1), 5)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
