package consensus

import (
	"github.com/pkg/errors"

	"github.com/zecnet/zecd/util"
	"github.com/zecnet/zecd/wire"
)

// TransactionFee returns the fee a transaction pays: the value it removes
// from the transparent value pool, net of what its joinsplits and Sapling
// value balance put back in. The transaction's inputs must carry the values
// of the outputs they spend, as looked up by the caller in its UTXO set.
// Coinbase transactions pay no fee.
func TransactionFee(tx *wire.MsgTx) (util.Amount, error) {
	if tx.IsCoinBase() {
		return 0, nil
	}

	var poolIn, poolOut util.Amount

	for _, txIn := range tx.TxIn {
		value, err := util.NewAmount(txIn.Value)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid input value %d", txIn.Value)
		}
		poolIn, err = poolIn.Add(value)
		if err != nil {
			return 0, err
		}
	}
	for _, txOut := range tx.TxOut {
		value, err := util.NewAmount(txOut.Value)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid output value %d", txOut.Value)
		}
		poolOut, err = poolOut.Add(value)
		if err != nil {
			return 0, err
		}
	}

	// Joinsplits move value in both directions at once.
	for _, joinSplit := range tx.JoinSplits {
		vPubNew, err := util.NewAmount(joinSplit.VPubNew)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid vpub_new %d", joinSplit.VPubNew)
		}
		poolIn, err = poolIn.Add(vPubNew)
		if err != nil {
			return 0, err
		}

		vPubOld, err := util.NewAmount(joinSplit.VPubOld)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid vpub_old %d", joinSplit.VPubOld)
		}
		poolOut, err = poolOut.Add(vPubOld)
		if err != nil {
			return 0, err
		}
	}

	// A positive Sapling value balance moves value from the shielded pool
	// into the transparent pool, a negative one the other way.
	if vb := tx.ValueBalance; vb > 0 {
		value, err := util.NewAmount(vb)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid value balance %d", vb)
		}
		poolIn, err = poolIn.Add(value)
		if err != nil {
			return 0, err
		}
	} else if vb < 0 {
		value, err := util.NewAmount(-vb)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid value balance %d", vb)
		}
		poolOut, err = poolOut.Add(value)
		if err != nil {
			return 0, err
		}
	}

	fee, err := poolIn.Sub(poolOut)
	if err != nil {
		return 0, errors.Wrapf(err, "transaction removes %d zatoshi from "+
			"the transparent value pool but only adds %d",
			int64(poolOut), int64(poolIn))
	}
	return fee, nil
}

// MinerFees returns the total fee paid by the given transactions. The
// block's coinbase contributes nothing and may be included.
func MinerFees(txs []*wire.MsgTx) (util.Amount, error) {
	var total util.Amount
	for _, tx := range txs {
		fee, err := TransactionFee(tx)
		if err != nil {
			return 0, err
		}
		total, err = total.Add(fee)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

// CoinbaseSumOutputs returns the total transparent value the coinbase pays
// out.
func CoinbaseSumOutputs(coinbase *wire.MsgTx) (util.Amount, error) {
	var total util.Amount
	for _, txOut := range coinbase.TxOut {
		value, err := util.NewAmount(txOut.Value)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid coinbase output value %d",
				txOut.Value)
		}
		total, err = total.Add(value)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

// FindOutputsWithAmount returns the outputs paying exactly the given
// amount, preserving their order.
func FindOutputsWithAmount(outputs []*wire.TxOut, amount util.Amount) []*wire.TxOut {
	var matches []*wire.TxOut
	for _, txOut := range outputs {
		if txOut.Value == int64(amount) {
			matches = append(matches, txOut)
		}
	}
	return matches
}
