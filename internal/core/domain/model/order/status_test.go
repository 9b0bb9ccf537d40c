package order_test

import (
	"fmt"
	"testing"

	"fabtrack/internal/core/domain/model/order"
	"fabtrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Active))
		assert.Equal(t, 2, int(order.Completed))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Active, order.Completed} {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(42), order.Status(-1)} {
			err := status.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "active", order.Active.String())
	assert.Equal(t, "completed", order.Completed.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatus_Complete(t *testing.T) {
	t.Run("active transitions to completed", func(t *testing.T) {
		newStatus, err := order.Active.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.Completed, newStatus)
	})

	t.Run("completing a completed order is a state conflict", func(t *testing.T) {
		_, err := order.Completed.Complete()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("unknown status cannot complete", func(t *testing.T) {
		_, err := order.Unknown.Complete()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
