package bcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	b := NewWithCost(MinCost)

	hash, err := b.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, b.ComparePassword(hash, "s3cret-pass"))
	assert.ErrorIs(t, b.ComparePassword(hash, "wrong"), ErrMismatch)
	assert.Error(t, b.ComparePassword("not-a-hash", "s3cret-pass"))
}

func TestCostFromEnv(t *testing.T) {
	cases := map[string]int{
		"":    DefaultCost,
		"abc": DefaultCost,
		"1":   MinCost,
		"99":  MaxCost,
		"5":   5,
	}
	for raw, want := range cases {
		t.Run("cost="+raw, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", raw)
			assert.Equal(t, want, New().(*bcryptService).cost)
		})
	}
}
