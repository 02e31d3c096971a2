package kernel_test

import (
	"testing"

	"console/internal/core/domain/model/kernel"
	"console/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("should create valid order id", func(t *testing.T) {
		id, err := kernel.NewOrderID(42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Int64())
		assert.Equal(t, "42", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("should reject non-positive identifiers", func(t *testing.T) {
		for _, raw := range []int64{0, -1, -42} {
			_, err := kernel.NewOrderID(raw)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.OrderID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrOrderIDIsNotConstructed, err)
	})
}

func TestOrderID_IsEqual(t *testing.T) {
	a, err := kernel.NewOrderID(7)
	require.NoError(t, err)
	b, err := kernel.NewOrderID(7)
	require.NoError(t, err)
	c, err := kernel.NewOrderID(8)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
