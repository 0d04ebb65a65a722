package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(hash), "argon2id$v=19$"))

	require.NoError(t, VerifyPassword(string(hash), "correct horse battery staple"))
	require.Error(t, VerifyPassword(string(hash), "wrong password"))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("same password")
	require.NoError(t, err)
	second, err := Hash("same password")
	require.NoError(t, err)

	require.NotEqual(t, string(first), string(second))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	for _, encoded := range []string{"", "nonsense", "argon2id$v=19$m=65536,t=1,p=4$!!!$!!!"} {
		require.Error(t, VerifyPassword(encoded, "whatever"))
	}
}

func TestSecretsEqual(t *testing.T) {
	require.True(t, SecretsEqual("shared", "shared"))
	require.False(t, SecretsEqual("shared", "other"))
	require.False(t, SecretsEqual("shared", ""))
	require.True(t, SecretsEqual("", ""))
}
