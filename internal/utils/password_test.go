package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pledgerhq/pledger_backend/internal/utils"
)

func TestOwnerPasswordRoundTrip(t *testing.T) {
	hash, err := utils.HashOwnerPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, utils.VerifyOwnerPassword("correct horse battery staple", hash))
	assert.False(t, utils.VerifyOwnerPassword("correct horse battery stable", hash))
	assert.False(t, utils.VerifyOwnerPassword("correct horse battery staple", "not-a-bcrypt-hash"))
}
