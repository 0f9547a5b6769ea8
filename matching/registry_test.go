package matching

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryConstructsKnownAlgorithms(t *testing.T) {
	for _, name := range RegisteredNames() {
		algo, ok := New(name)
		require.True(t, ok)
		require.NotNil(t, algo)
		require.NotEmpty(t, algo.Name())
	}
}

func TestRegistryRejectsUnknownName(t *testing.T) {
	_, ok := New("not-a-real-algorithm")
	require.False(t, ok)
}
