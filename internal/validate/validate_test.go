package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
)

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)

	var valErr *model.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, field, valErr.Field)
}

func TestRequired(t *testing.T) {
	assert.NoError(t, Required("username", "tester1"))
	assertValidationError(t, Required("username", ""), "username")
	assertValidationError(t, Required("username", "   "), "username")
}

func TestMinLength(t *testing.T) {
	assert.NoError(t, MinLength("password", "secret1", 6))
	assert.NoError(t, MinLength("password", "", 6), "empty passes; pair with Required")
	assertValidationError(t, MinLength("password", "abc", 6), "password")
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("email", "tester@example.org"))
	assert.NoError(t, Email("email", ""))
	assertValidationError(t, Email("email", "not-an-email"), "email")
	assertValidationError(t, Email("email", "a b@example.org"), "email")
}

func TestUsername(t *testing.T) {
	assert.NoError(t, Username("username", "tester1"))
	assert.NoError(t, Username("username", "tester_1"))
	assertValidationError(t, Username("username", "ab"), "username")
	assertValidationError(t, Username("username", "this_name_is_way_too_long_here"), "username")
	assertValidationError(t, Username("username", "has space"), "username")
	assertValidationError(t, Username("username", "acentuaçã"), "username")
}

func TestPasswordMatch(t *testing.T) {
	assert.NoError(t, PasswordMatch("secret1", "secret1"))
	assertValidationError(t, PasswordMatch("secret1", "secret2"), "password_confirmation")
}

func TestCredentials(t *testing.T) {
	assert.NoError(t, Credentials("tester1", "teste123"))

	assertValidationError(t, Credentials("", "teste123"), "username")
	assertValidationError(t, Credentials("ab", "teste123"), "username")
	assertValidationError(t, Credentials("tester1", ""), "password")
	assertValidationError(t, Credentials("tester1", "abc"), "password")
}
