package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPin_RoundTrip(t *testing.T) {
	hash, err := HashPin([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotContains(t, string(hash), "1234")
	assert.True(t, ComparePin(hash, []byte("1234")))
	assert.False(t, ComparePin(hash, []byte("1235")))
	assert.False(t, ComparePin(hash, []byte("1234 ")))
	assert.False(t, ComparePin(hash, nil))
}

func TestHashPin_Salted(t *testing.T) {
	a, err := HashPin([]byte("0000"), bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPin([]byte("0000"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHashPin_CostTooHigh(t *testing.T) {
	_, err := HashPin([]byte("1234"), bcrypt.MaxCost+1)
	assert.Error(t, err)
}

func TestComparePin_MalformedHash(t *testing.T) {
	assert.False(t, ComparePin([]byte("not-a-hash"), []byte("1234")))
	assert.False(t, ComparePin(nil, []byte("1234")))
}
