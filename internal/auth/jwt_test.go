package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJWTSecret_Missing(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Error(t, InitJWTSecret())
}

func TestGenerateAndVerify(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWTSecret())

	token, err := GenerateJWT("subject-42", "lifter@example.com")
	require.NoError(t, err)

	subject, err := VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "subject-42", subject)
}

func TestVerifyJWT_Malformed(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWTSecret())

	_, err := VerifyJWT("not.a.jwt")
	assert.Error(t, err)
}

func TestVerifyJWT_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "right-secret")
	require.NoError(t, InitJWTSecret())

	token, err := GenerateJWT("subject-42", "lifter@example.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "wrong-secret")
	require.NoError(t, InitJWTSecret())

	_, err = VerifyJWT(token)
	assert.Error(t, err)
}
