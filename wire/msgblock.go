package wire

import (
	"time"

	"github.com/pkg/errors"
)

const (
	// MaxBlockPayload is the maximum number of bytes a block message can
	// be in bytes.
	MaxBlockPayload = 2_000_000

	// maxTxPerBlock is the maximum number of transactions that could
	// possibly fit into a block.
	maxTxPerBlock = (MaxBlockPayload / minTxPayload) + 1
)

// BlockHeader defines information about a block. Only the fields coinbase
// and subsidy validation look at are modeled.
type BlockHeader struct {
	// Version of the block. This is not the same as the protocol
	// version.
	Version int32

	// Hash of the previous block in the chain.
	PrevBlock [32]byte

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot [32]byte

	// Time the block was created.
	Timestamp time.Time

	// Difficulty target for the block.
	Bits uint32
}

// MsgBlock implements a Zcash block message. It is composed of a header
// followed by the block's transactions, the first of which must be the
// coinbase.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
}

// AddTransaction adds a transaction to the message, rejecting additions
// past the hard limit a block could ever encode.
func (msg *MsgBlock) AddTransaction(tx *MsgTx) error {
	if len(msg.Transactions)+1 > maxTxPerBlock {
		return errors.Errorf("too many transactions in block [max %d]",
			maxTxPerBlock)
	}

	msg.Transactions = append(msg.Transactions, tx)
	return nil
}

// CoinbaseTransaction returns the block's coinbase: its first transaction.
// It returns nil when the block has no transactions.
func (msg *MsgBlock) CoinbaseTransaction() *MsgTx {
	if len(msg.Transactions) == 0 {
		return nil
	}
	return msg.Transactions[0]
}

// NewMsgBlock returns a new block message with the given header.
func NewMsgBlock(header *BlockHeader) *MsgBlock {
	return &MsgBlock{Header: *header}
}
