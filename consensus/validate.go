package consensus

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/zecnet/zecd/chaincfg"
	"github.com/zecnet/zecd/infrastructure/logger"
	"github.com/zecnet/zecd/util"
	"github.com/zecnet/zecd/wire"
)

// ShieldedVerifier verifies the shielded components of a coinbase that is
// allowed to carry them: output description proofs, value commitments and
// the binding signature. Proof verification lives outside this package; a
// verifier is injected so subsidy validation can reject coinbases whose
// shielded outputs do not verify.
type ShieldedVerifier interface {
	// CheckShieldedCoinbase checks the shielded output descriptions of a
	// coinbase transaction.
	CheckShieldedCoinbase(coinbase *wire.MsgTx) error
}

// SubsidyValidator validates the coinbase of a block against the subsidy
// rules of its network: required founders reward or funding stream outputs,
// the miner value bound, and the coinbase shielded component restrictions.
type SubsidyValidator struct {
	params   *chaincfg.Params
	verifier ShieldedVerifier
}

// NewSubsidyValidator returns a validator for the given network. verifier
// may be nil, in which case shielded output descriptions are accepted
// without proof verification.
func NewSubsidyValidator(params *chaincfg.Params, verifier ShieldedVerifier) *SubsidyValidator {
	return &SubsidyValidator{params: params, verifier: verifier}
}

// CheckBlockSubsidy validates the coinbase of the given block, which the
// caller has determined to be at the given height. The non-coinbase
// transactions must carry input values populated from the caller's UTXO
// set, since the miner value bound depends on the fees they pay.
//
// The checks run in order and the first violated rule is returned as a
// RuleError.
func (v *SubsidyValidator) CheckBlockSubsidy(block *wire.MsgBlock, height uint64) error {
	onEnd := logger.LogAndMeasureExecutionTime(log, "CheckBlockSubsidy")
	defer onEnd()

	coinbase := block.CoinbaseTransaction()
	if coinbase == nil || !coinbase.IsCoinBase() {
		return errors.Wrapf(ErrNoCoinbase, "block at height %d does not "+
			"begin with a coinbase transaction", height)
	}
	for i, tx := range block.Transactions[1:] {
		if tx.HasCoinBaseInput() {
			return errors.Wrapf(ErrNoCoinbase, "block at height %d has a "+
				"coinbase input in transaction %d", height, i+1)
		}
	}

	err := v.checkRequiredOutputs(coinbase, height)
	if err != nil {
		return err
	}

	err = v.checkMinerValueBound(block, coinbase, height)
	if err != nil {
		return err
	}

	return v.checkCoinbaseShieldedComponents(coinbase, height)
}

// checkCoinbaseShieldedComponents enforces the coinbase restrictions on
// shielded transaction components. A coinbase never carries joinsplits or
// Sapling spends. Sapling outputs are forbidden before Heartwood; from
// Heartwood on they are allowed and their descriptions must verify.
func (v *SubsidyValidator) checkCoinbaseShieldedComponents(coinbase *wire.MsgTx,
	height uint64) error {

	if len(coinbase.JoinSplits) > 0 {
		return errors.Wrapf(ErrShieldedDescriptionsInvalid,
			"coinbase at height %d has %d joinsplit descriptions",
			height, len(coinbase.JoinSplits))
	}
	if len(coinbase.ShieldedSpends) > 0 {
		return errors.Wrapf(ErrShieldedDescriptionsInvalid,
			"coinbase at height %d has %d spend descriptions",
			height, len(coinbase.ShieldedSpends))
	}

	if len(coinbase.ShieldedOutputs) == 0 {
		return nil
	}
	if !v.params.IsUpgradeActive(height, chaincfg.Heartwood) {
		return errors.Wrapf(ErrShieldedDescriptionsInvalid,
			"coinbase at height %d has %d output descriptions before "+
				"Heartwood activation", height, len(coinbase.ShieldedOutputs))
	}
	if v.verifier == nil {
		return nil
	}
	err := v.verifier.CheckShieldedCoinbase(coinbase)
	if err != nil {
		return errors.Wrapf(ErrShieldedRuleBroken,
			"shielded coinbase at height %d does not verify: %s",
			height, err)
	}
	return nil
}

// checkRequiredOutputs checks that the coinbase pays every reward the
// height mandates: the founders reward during the first halving period and
// the funding streams from Canopy activation to the end of their funding
// period.
func (v *SubsidyValidator) checkRequiredOutputs(coinbase *wire.MsgTx, height uint64) error {
	if FoundersRewardActive(v.params, height) {
		reward := FoundersReward(v.params, height)
		address, err := FoundersRewardAddress(v.params, height)
		if err != nil {
			return err
		}

		matches := FindOutputsWithAmount(coinbase.TxOut, reward)
		if len(matches) == 0 {
			return errors.Wrapf(ErrFoundersRewardAmountNotFound,
				"no coinbase output pays the founders reward of %s at "+
					"height %d", reward, height)
		}
		if !anyOutputPaysAddress(matches, address) {
			return errors.Wrapf(ErrFoundersRewardAddressNotFound,
				"founders reward at height %d must be paid to %s",
				height, address.EncodeAddress())
		}
	}

	if !FundingStreamsActive(v.params, height) {
		return nil
	}
	for _, receiver := range chaincfg.FundingStreamReceivers {
		amount, err := FundingStreamAmount(v.params, receiver, height)
		if err != nil {
			return err
		}
		address, err := FundingStreamAddress(v.params, receiver, height)
		if err != nil {
			return err
		}

		matches := FindOutputsWithAmount(coinbase.TxOut, amount)
		if len(matches) == 0 {
			return errors.Wrapf(ErrFundingStreamAmountNotFound,
				"no coinbase output pays the %s funding stream amount "+
					"of %s at height %d", receiver, amount, height)
		}
		if !anyOutputPaysAddress(matches, address) {
			return errors.Wrapf(ErrFundingStreamAddressNotFound,
				"%s funding stream at height %d must be paid to %s",
				receiver, height, address.EncodeAddress())
		}
	}
	return nil
}

// checkMinerValueBound checks that the coinbase claims no more value than
// the block subsidy plus the fees of the block's transactions. Sapling
// outputs in the coinbase are funded from the same pool, so a negative
// value balance counts against the bound.
func (v *SubsidyValidator) checkMinerValueBound(block *wire.MsgBlock,
	coinbase *wire.MsgTx, height uint64) error {

	transparentOut, err := CoinbaseSumOutputs(coinbase)
	if err != nil {
		return errors.Wrapf(ErrMinerSubsidyRuleBroken, "%s", err)
	}
	if vb := coinbase.ValueBalance; vb < -util.MaxZatoshi || vb > util.MaxZatoshi {
		return errors.Wrapf(ErrMinerSubsidyRuleBroken,
			"coinbase value balance %d is out of range", vb)
	}
	fees, err := MinerFees(block.Transactions[1:])
	if err != nil {
		return err
	}

	claimed := int64(transparentOut) - coinbase.ValueBalance
	limit := int64(BlockSubsidy(v.params, height)) + int64(fees)
	if claimed > limit {
		return errors.Wrapf(ErrMinerSubsidyRuleBroken,
			"coinbase at height %d claims %d zatoshi, limit is %d",
			height, claimed, limit)
	}

	log.Tracef("coinbase at height %d claims %d of %d zatoshi", height,
		claimed, limit)
	return nil
}

// anyOutputPaysAddress reports whether any of the outputs pays the given
// address with the canonical script for its type.
func anyOutputPaysAddress(outputs []*wire.TxOut, address util.Address) bool {
	script, err := payToAddressScript(address)
	if err != nil {
		return false
	}
	for _, txOut := range outputs {
		if bytes.Equal(txOut.PkScript, script) {
			return true
		}
	}
	return false
}

// payToAddressScript returns the canonical locking script paying the given
// address. Reward addresses are transparent pay-to-script-hash addresses.
func payToAddressScript(address util.Address) ([]byte, error) {
	scriptHashAddress, ok := address.(*util.AddressScriptHash)
	if !ok {
		return nil, errors.Errorf("unsupported reward address type %T", address)
	}
	return scriptHashAddress.Script(), nil
}
