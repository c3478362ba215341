package util

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/btcsuite/btcutil/bech32"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"
)

// SaplingPayloadSize is the size of the raw payload of a Sapling shielded
// address: an 11-byte diversifier followed by a 32-byte transmission key.
const SaplingPayloadSize = 43

const (
	opHash160 = 0xa9
	opData20  = 0x14
	opEqual   = 0x87

	// payToScriptHashScriptLen is the length of the canonical
	// pay-to-script-hash lock script: OP_HASH160 <20-byte hash> OP_EQUAL.
	payToScriptHashScriptLen = 23
)

// Address is an interface type for any supported reward recipient address.
type Address interface {
	// EncodeAddress returns the string encoding of the address for its
	// network.
	EncodeAddress() string

	// String returns the same string as EncodeAddress.
	String() string
}

// AddressScriptHash is a pay-to-script-hash (P2SH) transparent address.
type AddressScriptHash struct {
	hash   [ripemd160.Size]byte
	prefix [2]byte
}

// NewAddressScriptHash returns a new AddressScriptHash for the given script
// hash and two-byte base58check address prefix. scriptHash must be exactly
// 20 bytes.
func NewAddressScriptHash(scriptHash []byte, prefix [2]byte) (*AddressScriptHash, error) {
	if len(scriptHash) != ripemd160.Size {
		return nil, errors.Errorf("script hash must be %d bytes, got %d",
			ripemd160.Size, len(scriptHash))
	}
	addr := &AddressScriptHash{prefix: prefix}
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// NewAddressScriptHashFromScript returns the address of the passed redeem
// script, hashing it with Hash160.
func NewAddressScriptHashFromScript(redeemScript []byte, prefix [2]byte) *AddressScriptHash {
	addr := &AddressScriptHash{prefix: prefix}
	copy(addr.hash[:], Hash160(redeemScript))
	return addr
}

// Hash returns the 20-byte script hash the address commits to.
func (a *AddressScriptHash) Hash() [ripemd160.Size]byte {
	return a.hash
}

// Prefix returns the two-byte address prefix identifying the network.
func (a *AddressScriptHash) Prefix() [2]byte {
	return a.prefix
}

// EncodeAddress returns the base58check encoding of the address.
func (a *AddressScriptHash) EncodeAddress() string {
	body := make([]byte, 0, 1+ripemd160.Size)
	body = append(body, a.prefix[1])
	body = append(body, a.hash[:]...)
	return base58.CheckEncode(body, a.prefix[0])
}

// String returns the encoded form of the address.
func (a *AddressScriptHash) String() string {
	return a.EncodeAddress()
}

// Script returns the canonical pay-to-script-hash lock script paying to the
// address: OP_HASH160 <20-byte hash> OP_EQUAL.
func (a *AddressScriptHash) Script() []byte {
	script := make([]byte, 0, payToScriptHashScriptLen)
	script = append(script, opHash160, opData20)
	script = append(script, a.hash[:]...)
	return append(script, opEqual)
}

// ExtractScriptHashAddress parses a transparent output's lock script. It
// returns the script-hash address the script pays to and true when the
// script has the canonical pay-to-script-hash form, or nil and false for
// any other script.
func ExtractScriptHashAddress(pkScript []byte, prefix [2]byte) (*AddressScriptHash, bool) {
	if len(pkScript) != payToScriptHashScriptLen ||
		pkScript[0] != opHash160 ||
		pkScript[1] != opData20 ||
		pkScript[payToScriptHashScriptLen-1] != opEqual {

		return nil, false
	}
	addr := &AddressScriptHash{prefix: prefix}
	copy(addr.hash[:], pkScript[2:2+ripemd160.Size])
	return addr, true
}

// AddressSapling is a Sapling shielded payment address.
type AddressSapling struct {
	payload [SaplingPayloadSize]byte
	hrp     string
}

// NewAddressSapling returns a new AddressSapling for the given raw payload
// and bech32 human-readable prefix. payload must be exactly 43 bytes.
func NewAddressSapling(payload []byte, hrp string) (*AddressSapling, error) {
	if len(payload) != SaplingPayloadSize {
		return nil, errors.Errorf("sapling address payload must be %d bytes, got %d",
			SaplingPayloadSize, len(payload))
	}
	addr := &AddressSapling{hrp: hrp}
	copy(addr.payload[:], payload)
	return addr, nil
}

// Payload returns the raw 43-byte address payload.
func (a *AddressSapling) Payload() [SaplingPayloadSize]byte {
	return a.payload
}

// EncodeAddress returns the bech32 encoding of the address.
func (a *AddressSapling) EncodeAddress() string {
	converted, err := bech32.ConvertBits(a.payload[:], 8, 5, true)
	if err != nil {
		// Conversion to 5-bit groups with padding cannot fail for a
		// fixed-size payload.
		panic(errors.Wrap(err, "converting sapling address payload"))
	}
	encoded, err := bech32.Encode(a.hrp, converted)
	if err != nil {
		panic(errors.Wrap(err, "bech32-encoding sapling address"))
	}
	return encoded
}

// String returns the encoded form of the address.
func (a *AddressSapling) String() string {
	return a.EncodeAddress()
}

// DecodeAddress decodes addr into an AddressScriptHash or AddressSapling.
// scriptHashPrefix and saplingHRP identify the network the address must
// belong to.
func DecodeAddress(addr string, scriptHashPrefix [2]byte, saplingHRP string) (Address, error) {
	if hrp, converted, err := bech32.Decode(addr); err == nil {
		if hrp != saplingHRP {
			return nil, errors.Errorf("address %q is for the wrong "+
				"network: want prefix %q, got %q", addr, saplingHRP, hrp)
		}
		payload, err := bech32.ConvertBits(converted, 5, 8, false)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding sapling address %q", addr)
		}
		return NewAddressSapling(payload, hrp)
	}

	decoded, version, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding address %q", addr)
	}
	if version != scriptHashPrefix[0] || len(decoded) != 1+ripemd160.Size ||
		decoded[0] != scriptHashPrefix[1] {

		return nil, errors.Errorf("address %q is not a script-hash "+
			"address for this network", addr)
	}
	return NewAddressScriptHash(decoded[1:], scriptHashPrefix)
}
