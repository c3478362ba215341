package consensus

import (
	"github.com/zecnet/zecd/chaincfg"
	"github.com/zecnet/zecd/util"
)

const (
	// MaxBlockSubsidy is the block subsidy paid before the first halving,
	// after the slow start has ramped up: 12.5 ZEC in zatoshi.
	MaxBlockSubsidy = 25 * util.ZatoshiPerZEC / 2

	// SlowStartInterval is the number of blocks the subsidy ramps up
	// over. The missing value is made up by paying an extra block's worth
	// of subsidy over the second half of the ramp.
	SlowStartInterval = 20_000

	// slowStartShift is the height at which the ramp switches from paying
	// rate*height to rate*(height+1). Halving periods are measured from
	// here rather than from genesis.
	slowStartShift = SlowStartInterval / 2

	// slowStartRate is the subsidy increase per block during the slow
	// start, in zatoshi.
	slowStartRate = MaxBlockSubsidy / SlowStartInterval

	// PreBlossomHalvingInterval is the number of blocks between halvings
	// before Blossom activation.
	PreBlossomHalvingInterval = 840_000

	// PostBlossomHalvingInterval is the number of blocks between halvings
	// after Blossom activation. Blossom halves the target block spacing,
	// so the interval doubles to keep halvings on the original schedule.
	PostBlossomHalvingInterval = PreBlossomHalvingInterval *
		chaincfg.BlossomPoWTargetSpacingRatio

	// foundersFraction is the divisor producing the founders reward share
	// of the block subsidy.
	foundersFraction = 5

	// FounderAddressChangeInterval is the number of blocks between
	// founders reward address rotations: the founders reward period
	// divided evenly across the address list.
	FounderAddressChangeInterval = (slowStartShift + PreBlossomHalvingInterval) / 48

	// FundingStreamAddressChangeInterval is the number of blocks between
	// funding stream address rotations.
	FundingStreamAddressChangeInterval = PostBlossomHalvingInterval / 48
)

// Halving returns the number of halvings that have happened at the given
// height. Heights below the slow start shift are defined to be in halving
// period zero. Blossom doubles the block rate, so post-Blossom heights are
// scaled onto the pre-Blossom schedule before dividing.
func Halving(params *chaincfg.Params, height uint64) uint64 {
	if height < slowStartShift {
		return 0
	}

	blossomHeight, ok := params.ActivationHeight(chaincfg.Blossom)
	if !ok || height < blossomHeight {
		return (height - slowStartShift) / PreBlossomHalvingInterval
	}

	scaled := (blossomHeight-slowStartShift)*chaincfg.BlossomPoWTargetSpacingRatio +
		(height - blossomHeight)
	return scaled / PostBlossomHalvingInterval
}

// BlockSubsidy returns the total subsidy created by the block at the given
// height: the miner share plus whatever founders reward or funding stream
// shares the height mandates.
func BlockSubsidy(params *chaincfg.Params, height uint64) util.Amount {
	if height < slowStartShift {
		return util.Amount(slowStartRate * int64(height))
	}
	if height < SlowStartInterval {
		return util.Amount(slowStartRate * int64(height+1))
	}

	halvings := Halving(params, height)
	if halvings >= 64 {
		return 0
	}
	if params.IsUpgradeActive(height, chaincfg.Blossom) {
		// Blossom halved the block spacing without changing the
		// monetary curve, so each block carries half the pre-Blossom
		// subsidy for its halving period.
		scaledMax := int64(MaxBlockSubsidy / chaincfg.BlossomPoWTargetSpacingRatio)
		return util.Amount(scaledMax >> halvings)
	}
	return util.Amount(int64(MaxBlockSubsidy) >> halvings)
}

// MinerSubsidy returns the share of the block subsidy the miner may claim
// at the given height: the total subsidy minus the founders reward and all
// active funding streams.
func MinerSubsidy(params *chaincfg.Params, height uint64) (util.Amount, error) {
	subsidy := BlockSubsidy(params, height)

	miner, err := subsidy.Sub(FoundersReward(params, height))
	if err != nil {
		return 0, err
	}

	if !FundingStreamsActive(params, height) {
		return miner, nil
	}
	for _, receiver := range chaincfg.FundingStreamReceivers {
		amount, err := FundingStreamAmount(params, receiver, height)
		if err != nil {
			return 0, err
		}
		miner, err = miner.Sub(amount)
		if err != nil {
			return 0, err
		}
	}
	return miner, nil
}
