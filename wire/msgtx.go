package wire

import (
	"encoding/hex"
	"math"

	"github.com/pkg/errors"
)

const (
	// TxIDSize is the size of a transaction ID in bytes.
	TxIDSize = 32

	// MinTxInPayload is the minimum payload size for a transaction input.
	// PreviousOutPoint.TxID + PreviousOutPoint.Index 4 bytes +
	// Varint for SignatureScript length 1 byte + Sequence 4 bytes.
	MinTxInPayload = 9 + TxIDSize

	// MinTxOutPayload is the minimum payload size for a transaction
	// output. Value 8 bytes + Varint for PkScript length 1 byte.
	MinTxOutPayload = 9

	// minTxPayload is the minimum payload size for any transaction. Note
	// that any realistically usable transaction must have at least one
	// input or output, but that is a consensus rule rather than an
	// encoding constraint. Version 4 bytes + Varint number of inputs
	// 1 byte + Varint number of outputs 1 byte + LockTime 4 bytes + a
	// minimal single input.
	minTxPayload = 10 + MinTxInPayload
)

// TxID is the identifier of a transaction.
type TxID [TxIDSize]byte

// String returns the TxID in the reversed-byte hexadecimal form it is
// conventionally displayed in.
func (id TxID) String() string {
	for i := 0; i < TxIDSize/2; i++ {
		id[i], id[TxIDSize-1-i] = id[TxIDSize-1-i], id[i]
	}
	return hex.EncodeToString(id[:])
}

// OutPoint defines a transaction outpoint: a reference to an output of a
// previous transaction.
type OutPoint struct {
	TxID  TxID
	Index uint32
}

// TxIn defines a transaction input.
type TxIn struct {
	// PreviousOutPoint names the output this input spends.
	PreviousOutPoint OutPoint

	// SignatureScript satisfies the spending conditions of the referenced
	// output.
	SignatureScript []byte

	// Sequence number of the input.
	Sequence uint32

	// Value is the amount in zatoshi of the output this input spends. It
	// is not part of the serialized input. Callers that build transactions
	// for validation populate it from their view of the UTXO set.
	Value int64
}

// TxOut defines a transaction output.
type TxOut struct {
	// Value of the output in zatoshi.
	Value int64

	// PkScript is the script that must be satisfied to spend the output.
	PkScript []byte
}

// JoinSplit defines one Sprout joinsplit description. Only the value pool
// movements are modeled; the zero-knowledge proof material is opaque to
// subsidy validation.
type JoinSplit struct {
	// VPubOld is the value in zatoshi the joinsplit removes from the
	// transparent value pool.
	VPubOld int64

	// VPubNew is the value in zatoshi the joinsplit adds to the
	// transparent value pool.
	VPubNew int64
}

// SpendDescription defines one Sapling spend description. Its proof and
// nullifier material is opaque here; its presence alone is what coinbase
// rules care about.
type SpendDescription struct {
	// CV is the value commitment to the note being spent.
	CV [32]byte

	// Nullifier of the note being spent.
	Nullifier [32]byte
}

// OutputDescription defines one Sapling output description.
type OutputDescription struct {
	// CV is the value commitment to the new note.
	CV [32]byte

	// CMU is the u-coordinate of the new note commitment.
	CMU [32]byte
}

// MsgTx implements a Zcash transaction for the consensus rules this package
// serves. Shielded fields carry only what value-pool accounting and
// coinbase restrictions need.
type MsgTx struct {
	// Version of the transaction.
	Version int32

	// TxIn is the list of transaction inputs.
	TxIn []*TxIn

	// TxOut is the list of transparent transaction outputs.
	TxOut []*TxOut

	// LockTime is the earliest time or block height the transaction may
	// be included at.
	LockTime uint32

	// ExpiryHeight is the height after which the transaction expires,
	// zero for no expiry.
	ExpiryHeight uint32

	// ValueBalance is the net value in zatoshi the Sapling value pool
	// contributes to the transparent value pool. Positive values move
	// funds from shielded to transparent, negative the reverse.
	ValueBalance int64

	// ShieldedSpends is the list of Sapling spend descriptions.
	ShieldedSpends []*SpendDescription

	// ShieldedOutputs is the list of Sapling output descriptions.
	ShieldedOutputs []*OutputDescription

	// JoinSplits is the list of Sprout joinsplit descriptions.
	JoinSplits []*JoinSplit
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// IsCoinBase determines whether or not a transaction is a coinbase. A
// coinbase is a special transaction created by miners that has exactly one
// input whose previous outpoint is the zero TxID with the maximum index.
func (msg *MsgTx) IsCoinBase() bool {
	if len(msg.TxIn) != 1 {
		return false
	}

	prevOut := &msg.TxIn[0].PreviousOutPoint
	return prevOut.Index == math.MaxUint32 && prevOut.TxID == TxID{}
}

// HasCoinBaseInput determines whether any input of the transaction spends
// the null previous outpoint only coinbases may spend. Only the first
// transaction of a block is allowed to carry such an input.
func (msg *MsgTx) HasCoinBaseInput() bool {
	for _, txIn := range msg.TxIn {
		prevOut := &txIn.PreviousOutPoint
		if prevOut.Index == math.MaxUint32 && prevOut.TxID == (TxID{}) {
			return true
		}
	}
	return false
}

// ExtractCoinbaseHeight attempts to extract the height of the block the
// coinbase transaction is in from its signature script, which is required to
// start with a serialized script number holding the height.
func ExtractCoinbaseHeight(coinbaseTx *MsgTx) (uint64, error) {
	if len(coinbaseTx.TxIn) == 0 {
		return 0, errors.New("coinbase has no inputs")
	}
	sigScript := coinbaseTx.TxIn[0].SignatureScript
	if len(sigScript) < 1 {
		return 0, errors.New("coinbase signature script is empty, " +
			"it must start with the serialized block height")
	}

	// Small heights are pushed with the single-opcode small integers
	// OP_0 and OP_1 through OP_16.
	opcode := int(sigScript[0])
	if opcode == opZero {
		return 0, nil
	}
	if opcode >= opOne && opcode <= opSixteen {
		return uint64(opcode - (opOne - 1)), nil
	}

	// Otherwise the first opcode is a direct data push of the
	// little-endian serialized height.
	serializedLen := opcode
	if serializedLen > maxSerializedHeightLen {
		return 0, errors.Errorf("serialized block height is %d bytes, "+
			"maximum is %d", serializedLen, maxSerializedHeightLen)
	}
	if len(sigScript[1:]) < serializedLen {
		return 0, errors.Errorf("coinbase signature script is too short "+
			"to hold a %d-byte serialized block height", serializedLen)
	}

	var height uint64
	for i := 0; i < serializedLen; i++ {
		height |= uint64(sigScript[1+i]) << uint(8*i)
	}
	return height, nil
}

const (
	opZero    = 0x00
	opOne     = 0x51
	opSixteen = 0x60

	// maxSerializedHeightLen bounds the direct-push serialized height;
	// any block height fits in far fewer bytes.
	maxSerializedHeightLen = 8
)

// NewMsgTx returns a new tx message with the given version.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{Version: version}
}
