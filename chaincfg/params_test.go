package chaincfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestActivationHeightsStrictlyIncreasing(t *testing.T) {
	for _, params := range []*Params{&MainnetParams, &TestnetParams} {
		var prev uint64
		for i, activation := range params.ActivationHeights {
			if i > 0 {
				require.Greater(t, activation.Height, prev,
					"%s: %s does not activate after its predecessor",
					params.Name, activation.Upgrade)
			}
			prev = activation.Height
		}
	}
}

func TestUpgradeForHeight(t *testing.T) {
	tests := []struct {
		height   uint64
		expected NetworkUpgrade
	}{
		{0, Genesis},
		{1, BeforeOverwinter},
		{347_499, BeforeOverwinter},
		{347_500, Overwinter},
		{419_199, Overwinter},
		{419_200, Sapling},
		{653_599, Sapling},
		{653_600, Blossom},
		{902_999, Blossom},
		{903_000, Heartwood},
		{1_046_399, Heartwood},
		{1_046_400, Canopy},
		{1_687_103, Canopy},
		{1_687_104, NU5},
		{10_000_000, NU5},
	}

	for _, test := range tests {
		got := MainnetParams.UpgradeForHeight(test.height)
		require.Equalf(t, test.expected, got,
			"wrong upgrade at height %d", test.height)
	}
}

func TestIsUpgradeActive(t *testing.T) {
	canopy, ok := MainnetParams.ActivationHeight(Canopy)
	require.True(t, ok)

	require.False(t, MainnetParams.IsUpgradeActive(canopy-1, Canopy))
	require.True(t, MainnetParams.IsUpgradeActive(canopy, Canopy))
	require.True(t, MainnetParams.IsUpgradeActive(canopy+1, Canopy))

	// Every activation height activates exactly its own upgrade and
	// everything before it.
	for _, activation := range TestnetParams.ActivationHeights {
		require.True(t,
			TestnetParams.IsUpgradeActive(activation.Height, activation.Upgrade))
	}
}

func TestTargetSpacing(t *testing.T) {
	blossom, ok := MainnetParams.ActivationHeight(Blossom)
	require.True(t, ok)

	require.Equal(t, 150*time.Second, MainnetParams.TargetSpacing(0))
	require.Equal(t, 150*time.Second, MainnetParams.TargetSpacing(blossom-1))
	require.Equal(t, 75*time.Second, MainnetParams.TargetSpacing(blossom))
	require.Equal(t, uint64(2), BlossomPoWTargetSpacingRatio)
}

func TestFundingStreamTables(t *testing.T) {
	expectedLens := map[Network]int{Mainnet: 48, Testnet: 51}

	for _, params := range []*Params{&MainnetParams, &TestnetParams} {
		var total uint64
		for _, receiver := range FundingStreamReceivers {
			stream, ok := params.FundingStreams[receiver]
			require.Truef(t, ok, "%s: no %s stream", params.Name, receiver)
			require.Lenf(t, stream.Addresses, expectedLens[params.Net],
				"%s: wrong %s rotation list length", params.Name, receiver)
			total += stream.Numerator
		}

		// Streams pay out 20% of the block subsidy in total.
		require.Equal(t, uint64(20), total)
		require.Greater(t, params.FundingStreamEndHeight,
			params.FundingStreamStartHeight)
	}
}

func TestFoundersRewardAddressTables(t *testing.T) {
	require.Len(t, MainnetParams.FoundersRewardAddresses, 48)
	require.Len(t, TestnetParams.FoundersRewardAddresses, 48)

	// Rotation addresses encode with the network's transparent prefix.
	require.Equal(t, byte('t'),
		MainnetParams.FoundersRewardAddresses[0].EncodeAddress()[0])
	require.Equal(t, byte('t'),
		TestnetParams.FoundersRewardAddresses[0].EncodeAddress()[0])
}
