package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordFreshSaltPerCall(t *testing.T) {
	a, err := HashPassword("segredo123")
	require.NoError(t, err)
	b, err := HashPassword("segredo123")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, CheckPassword(a, "segredo123"))
	assert.True(t, CheckPassword(b, "segredo123"))
}

func TestCheckPasswordRejects(t *testing.T) {
	hash, err := HashPassword("segredo123")
	require.NoError(t, err)

	assert.False(t, CheckPassword(hash, "errada"))
	assert.False(t, CheckPassword(nil, "segredo123"))
	assert.False(t, CheckPassword([]byte("not a bcrypt hash"), "segredo123"))
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidUsername("maria"))
	assert.False(t, ValidUsername("ab"))
	assert.False(t, ValidUsername("maria silva"))

	assert.True(t, ValidEmail("maria@clinic.com"))
	assert.False(t, ValidEmail("maria"))

	assert.True(t, ValidPassword("segredo123"))
	assert.False(t, ValidPassword("curta"))
}
