package consensus

import (
	"github.com/pkg/errors"

	"github.com/zecnet/zecd/chaincfg"
	"github.com/zecnet/zecd/util"
)

// FoundersRewardActive returns true when a block at the given height must
// pay the founders reward: throughout the first halving period, until
// Canopy replaces the reward with funding streams. The genesis block is
// exempt since it creates no subsidy.
func FoundersRewardActive(params *chaincfg.Params, height uint64) bool {
	return height > 0 && Halving(params, height) == 0 &&
		!params.IsUpgradeActive(height, chaincfg.Canopy)
}

// FoundersReward returns the founders reward a block at the given height
// must pay, one fifth of the block subsidy, or zero at heights where the
// reward is not active.
func FoundersReward(params *chaincfg.Params, height uint64) util.Amount {
	if !FoundersRewardActive(params, height) {
		return 0
	}
	return BlockSubsidy(params, height) / foundersFraction
}

// FoundersRewardAddress returns the address the founders reward must be
// paid to at the given height. The reward rotates through the network's
// address list on a fixed interval; heights past the end of the list keep
// paying the last address.
func FoundersRewardAddress(params *chaincfg.Params, height uint64) (util.Address, error) {
	if !FoundersRewardActive(params, height) {
		return nil, errors.Wrapf(ErrFoundersRewardAddressNotFound,
			"founders reward is not active at height %d", height)
	}

	index := height / FounderAddressChangeInterval
	if last := uint64(len(params.FoundersRewardAddresses) - 1); index > last {
		index = last
	}
	return params.FoundersRewardAddresses[index], nil
}
