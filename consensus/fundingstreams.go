package consensus

import (
	"github.com/pkg/errors"

	"github.com/zecnet/zecd/chaincfg"
	"github.com/zecnet/zecd/util"
)

// FundingStreamsActive returns true when a block at the given height must
// pay the funding streams.
func FundingStreamsActive(params *chaincfg.Params, height uint64) bool {
	return height >= params.FundingStreamStartHeight &&
		height < params.FundingStreamEndHeight
}

// FundingStreamAmount returns the amount a block at the given height must
// pay to the given funding stream receiver: the receiver's fraction of the
// block subsidy, rounded down, or zero at heights where the funding streams
// are not active.
func FundingStreamAmount(params *chaincfg.Params,
	receiver chaincfg.FundingStreamReceiver, height uint64) (util.Amount, error) {

	if !FundingStreamsActive(params, height) {
		return 0, nil
	}
	stream, ok := params.FundingStreams[receiver]
	if !ok {
		return 0, errors.Wrapf(ErrFundingStreamAmountNotFound,
			"no %s funding stream on %s", receiver, params.Name)
	}

	return BlockSubsidy(params, height).MulFraction(
		stream.Numerator, chaincfg.FundingStreamDenominator)
}

// FundingStreamAddress returns the address the given funding stream must be
// paid to at the given height. The recipient rotates through the stream's
// address list on a fixed interval measured from the start of the funding
// period; heights past the end of the list keep paying the last address.
func FundingStreamAddress(params *chaincfg.Params,
	receiver chaincfg.FundingStreamReceiver, height uint64) (util.Address, error) {

	if !FundingStreamsActive(params, height) {
		return nil, errors.Wrapf(ErrFundingStreamAddressNotFound,
			"funding streams are not active at height %d", height)
	}
	stream, ok := params.FundingStreams[receiver]
	if !ok {
		return nil, errors.Wrapf(ErrFundingStreamAddressNotFound,
			"no %s funding stream on %s", receiver, params.Name)
	}

	index := (height - params.FundingStreamStartHeight) /
		uint64(FundingStreamAddressChangeInterval)
	if last := uint64(len(stream.Addresses) - 1); index > last {
		index = last
	}
	return stream.Addresses[index], nil
}
