//go:build unit

package money_test

import (
	"testing"

	"reservation-engine/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := money.New(-1)
		require.ErrorIs(t, err, money.ErrNegativeAmount)
	})

	t.Run("arithmetic", func(t *testing.T) {
		price, err := money.New(1500)
		require.NoError(t, err)

		assert.Equal(t, int64(4500), price.Times(3).Cents())
		assert.Equal(t, int64(3000), price.Add(price).Cents())
		assert.True(t, money.Zero().IsZero())
	})
}
