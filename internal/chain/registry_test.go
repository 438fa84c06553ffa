package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Registry lookups
// ---------------------------------------------------------------------------

func TestRegistryKnownMainnets(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, "Ethereum Mainnet", r.Name("1"))
	assert.Equal(t, "BSC Mainnet", r.Name("56"))
	assert.Equal(t, "Polygon Mainnet", r.Name("137"))
	assert.Equal(t, "Arbitrum One", r.Name("42161"))
}

func TestRegistryUnknownChainFallback(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, "Chain ID: 999999", r.Name("999999"))
}

func TestRegistryLookupTestnetFlag(t *testing.T) {
	r := NewRegistry()
	n, ok := r.Lookup("11155111")
	require.True(t, ok)
	assert.True(t, n.Testnet)
	assert.Equal(t, "Sepolia Testnet", n.DisplayName)
}

func TestRegistryLookupUnknown(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Lookup("31337")
	assert.False(t, ok)
}

func TestRegistryAllSorted(t *testing.T) {
	all := NewRegistry().All()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ChainID, all[i].ChainID)
	}
}

func TestNetworkNamePackageLevel(t *testing.T) {
	assert.Equal(t, "Ethereum Mainnet", NetworkName("1"))
	assert.Equal(t, "Chain ID: 42", NetworkName("42"))
}
