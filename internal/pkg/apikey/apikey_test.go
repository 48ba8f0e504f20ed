//go:build unit

package apikey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	plain, hash, err := Generate()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(plain, prefix))
	assert.NotEqual(t, plain, hash)
	assert.NoError(t, Compare(hash, plain))

	other, _, err := Generate()
	require.NoError(t, err)
	assert.NotEqual(t, plain, other)
}

func TestCompare(t *testing.T) {
	hash, err := Hash("fdy_secret")
	require.NoError(t, err)

	tests := []struct {
		name    string
		hash    string
		key     string
		wantErr error
	}{
		{name: "matching key", hash: hash, key: "fdy_secret"},
		{name: "wrong key", hash: hash, key: "fdy_other", wantErr: ErrMismatch},
		{name: "empty key", hash: hash, key: "", wantErr: ErrInvalidKey},
		{name: "empty hash", hash: "", key: "fdy_secret", wantErr: ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Compare(tt.hash, tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHash_Empty(t *testing.T) {
	_, err := Hash("")
	assert.ErrorIs(t, err, ErrInvalidKey)
}
