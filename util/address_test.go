package util_test

import (
	"bytes"
	"testing"

	. "github.com/zecnet/zecd/util"
)

var (
	testScriptHashPrefix = [2]byte{0x1c, 0xbd}
	testSaplingHRP       = "zs"
)

func TestAddressScriptHashRoundTrip(t *testing.T) {
	hash := bytes.Repeat([]byte{0xab}, 20)
	addr, err := NewAddressScriptHash(hash, testScriptHashPrefix)
	if err != nil {
		t.Fatalf("NewAddressScriptHash: %v", err)
	}

	decoded, err := DecodeAddress(addr.EncodeAddress(), testScriptHashPrefix, testSaplingHRP)
	if err != nil {
		t.Fatalf("DecodeAddress(%q): %v", addr.EncodeAddress(), err)
	}
	decodedScriptHash, ok := decoded.(*AddressScriptHash)
	if !ok {
		t.Fatalf("DecodeAddress returned %T, want *AddressScriptHash", decoded)
	}
	if decodedScriptHash.Hash() != addr.Hash() {
		t.Errorf("round trip changed the script hash: got %x, want %x",
			decodedScriptHash.Hash(), addr.Hash())
	}
}

func TestAddressScriptHashWrongNetwork(t *testing.T) {
	hash := bytes.Repeat([]byte{0x01}, 20)
	addr, err := NewAddressScriptHash(hash, [2]byte{0x1c, 0xba})
	if err != nil {
		t.Fatalf("NewAddressScriptHash: %v", err)
	}
	_, err = DecodeAddress(addr.EncodeAddress(), testScriptHashPrefix, testSaplingHRP)
	if err == nil {
		t.Error("expected decoding a testnet address with mainnet prefixes to fail")
	}
}

func TestAddressScriptHashBadLength(t *testing.T) {
	_, err := NewAddressScriptHash(make([]byte, 19), testScriptHashPrefix)
	if err == nil {
		t.Error("expected a 19-byte script hash to be rejected")
	}
}

func TestScriptExtraction(t *testing.T) {
	hash := bytes.Repeat([]byte{0x42}, 20)
	addr, err := NewAddressScriptHash(hash, testScriptHashPrefix)
	if err != nil {
		t.Fatalf("NewAddressScriptHash: %v", err)
	}

	extracted, ok := ExtractScriptHashAddress(addr.Script(), testScriptHashPrefix)
	if !ok {
		t.Fatal("ExtractScriptHashAddress rejected a canonical P2SH script")
	}
	if extracted.Hash() != addr.Hash() {
		t.Errorf("extracted hash %x, want %x", extracted.Hash(), addr.Hash())
	}

	tests := []struct {
		name   string
		script []byte
	}{
		{"empty script", nil},
		{"truncated script", addr.Script()[:22]},
		{"wrong leading opcode", append([]byte{0x76}, addr.Script()[1:]...)},
		{"wrong trailing opcode", append(addr.Script()[:22], 0xac)},
	}
	for _, test := range tests {
		if _, ok := ExtractScriptHashAddress(test.script, testScriptHashPrefix); ok {
			t.Errorf("%v: expected extraction to fail", test.name)
		}
	}
}

func TestNewAddressScriptHashFromScript(t *testing.T) {
	redeemScript := []byte{0x51} // OP_TRUE
	addr := NewAddressScriptHashFromScript(redeemScript, testScriptHashPrefix)
	hash := addr.Hash()
	if !bytes.Equal(hash[:], Hash160(redeemScript)) {
		t.Errorf("address hash %x does not match Hash160 of the redeem script", hash)
	}
}

func TestAddressSaplingRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0x5a}, SaplingPayloadSize)
	addr, err := NewAddressSapling(payload, testSaplingHRP)
	if err != nil {
		t.Fatalf("NewAddressSapling: %v", err)
	}

	decoded, err := DecodeAddress(addr.EncodeAddress(), testScriptHashPrefix, testSaplingHRP)
	if err != nil {
		t.Fatalf("DecodeAddress(%q): %v", addr.EncodeAddress(), err)
	}
	decodedSapling, ok := decoded.(*AddressSapling)
	if !ok {
		t.Fatalf("DecodeAddress returned %T, want *AddressSapling", decoded)
	}
	if decodedSapling.Payload() != addr.Payload() {
		t.Error("round trip changed the sapling payload")
	}
}

func TestAddressSaplingBadLength(t *testing.T) {
	_, err := NewAddressSapling(make([]byte, SaplingPayloadSize-1), testSaplingHRP)
	if err == nil {
		t.Error("expected a short sapling payload to be rejected")
	}
}
