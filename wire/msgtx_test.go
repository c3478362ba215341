package wire

import (
	"math"
	"strings"
	"testing"
	"time"
)

// TestIsCoinBase checks the coinbase shape rules: exactly one input whose
// previous outpoint is the zero TxID with the maximum index.
func TestIsCoinBase(t *testing.T) {
	coinbaseIn := &TxIn{
		PreviousOutPoint: OutPoint{Index: math.MaxUint32},
		SignatureScript:  []byte{0x04, 0x31, 0x32, 0x33, 0x34},
	}

	tests := []struct {
		name     string
		txIn     []*TxIn
		expected bool
	}{
		{"coinbase", []*TxIn{coinbaseIn}, true},
		{"no inputs", nil, false},
		{
			"two inputs",
			[]*TxIn{coinbaseIn, coinbaseIn},
			false,
		},
		{
			"non-zero txid",
			[]*TxIn{{
				PreviousOutPoint: OutPoint{
					TxID:  TxID{0x01},
					Index: math.MaxUint32,
				},
			}},
			false,
		},
		{
			"non-max index",
			[]*TxIn{{PreviousOutPoint: OutPoint{Index: 0}}},
			false,
		},
	}

	for _, test := range tests {
		tx := NewMsgTx(4)
		tx.TxIn = test.txIn
		if got := tx.IsCoinBase(); got != test.expected {
			t.Errorf("IsCoinBase: %s: got %v, want %v", test.name,
				got, test.expected)
		}
	}
}

// TestHasCoinBaseInput checks detection of null previous outpoints at any
// input position.
func TestHasCoinBaseInput(t *testing.T) {
	regularIn := &TxIn{PreviousOutPoint: OutPoint{TxID: TxID{0x01}, Index: 2}}
	coinbaseIn := &TxIn{PreviousOutPoint: OutPoint{Index: math.MaxUint32}}

	tests := []struct {
		name     string
		txIn     []*TxIn
		expected bool
	}{
		{"no inputs", nil, false},
		{"regular input", []*TxIn{regularIn}, false},
		{"coinbase input", []*TxIn{coinbaseIn}, true},
		{"coinbase input after regular", []*TxIn{regularIn, coinbaseIn}, true},
	}

	for _, test := range tests {
		tx := NewMsgTx(4)
		tx.TxIn = test.txIn
		if got := tx.HasCoinBaseInput(); got != test.expected {
			t.Errorf("HasCoinBaseInput: %s: got %v, want %v", test.name,
				got, test.expected)
		}
	}
}

// TestTxIDString checks that transaction IDs display byte-reversed.
func TestTxIDString(t *testing.T) {
	var id TxID
	id[0] = 0xab

	str := id.String()
	if !strings.HasSuffix(str, "ab") {
		t.Errorf("TxID.String: leading byte not displayed last: %s", str)
	}
	if len(str) != TxIDSize*2 {
		t.Errorf("TxID.String: wrong length %d", len(str))
	}
}

// TestExtractCoinbaseHeight checks decoding of the serialized block height
// leading the coinbase signature script.
func TestExtractCoinbaseHeight(t *testing.T) {
	tests := []struct {
		name      string
		sigScript []byte
		expected  uint64
		valid     bool
	}{
		{"OP_0", []byte{0x00}, 0, true},
		{"OP_1", []byte{0x51}, 1, true},
		{"OP_16", []byte{0x60}, 16, true},
		{"one byte push", []byte{0x01, 0x11}, 17, true},
		{"height 500000", []byte{0x03, 0x20, 0xa1, 0x07}, 500_000, true},
		{"trailing data ignored", []byte{0x03, 0x20, 0xa1, 0x07, 0xff}, 500_000, true},
		{"empty script", []byte{}, 0, false},
		{"truncated push", []byte{0x03, 0x20, 0xa1}, 0, false},
		{"push too long", []byte{0x09, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 0, false},
	}

	for _, test := range tests {
		tx := NewMsgTx(4)
		tx.AddTxIn(&TxIn{
			PreviousOutPoint: OutPoint{Index: math.MaxUint32},
			SignatureScript:  test.sigScript,
		})

		height, err := ExtractCoinbaseHeight(tx)
		if test.valid && err != nil {
			t.Errorf("ExtractCoinbaseHeight: %s: unexpected error: %v",
				test.name, err)
			continue
		}
		if !test.valid {
			if err == nil {
				t.Errorf("ExtractCoinbaseHeight: %s: expected error", test.name)
			}
			continue
		}
		if height != test.expected {
			t.Errorf("ExtractCoinbaseHeight: %s: got %d, want %d",
				test.name, height, test.expected)
		}
	}
}

// TestAddTransactionLimit checks the block transaction count bound.
func TestAddTransactionLimit(t *testing.T) {
	block := NewMsgBlock(&BlockHeader{
		Version:   4,
		Timestamp: time.Unix(0x5bcf3ea4, 0),
		Bits:      0x1d00ffff,
	})
	block.Transactions = make([]*MsgTx, maxTxPerBlock)

	if err := block.AddTransaction(NewMsgTx(4)); err == nil {
		t.Fatal("AddTransaction: expected error past block capacity")
	}
}
