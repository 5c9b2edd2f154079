package cryptox_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aryamangoenka/User-Management-System/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Point the pepper at a throwaway file so tests never touch a real one.
	dir, err := os.MkdirTemp("", "cryptox-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := cryptox.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.Contains(t, hash, "$argon2id$v=19$")

	require.NoError(t, cryptox.VerifyPassword("correct horse battery staple", hash))
	require.Error(t, cryptox.VerifyPassword("wrong password", hash))
}

func TestHashIsSalted(t *testing.T) {
	a, err := cryptox.HashPassword("same input")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("same input")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	for _, bad := range []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=19456,t=2,p=1$salt$hash",
		"$argon2id$v=18$m=19456,t=2,p=1$salt$hash",
	} {
		require.Error(t, cryptox.VerifyPassword("pw", bad))
	}
}
