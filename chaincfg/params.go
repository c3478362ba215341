package chaincfg

import (
	"time"

	"github.com/zecnet/zecd/util"
)

// Network identifies one of the supported Zcash networks.
type Network uint8

// The supported networks.
const (
	// Mainnet is the main Zcash network.
	Mainnet Network = iota

	// Testnet is the test Zcash network.
	Testnet
)

// String returns the human-readable name of the network.
func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	default:
		return "unknown"
	}
}

// UpgradeActivation pairs a network upgrade with the height it activates at.
type UpgradeActivation struct {
	Upgrade NetworkUpgrade
	Height  uint64
}

// FundingStreamReceiver enumerates the protocol-mandated funding stream
// recipients that share in the block subsidy from Canopy activation on.
type FundingStreamReceiver uint8

// The funding stream receivers, in their canonical order.
const (
	ElectricCoinCompany FundingStreamReceiver = iota
	ZcashFoundation
	MajorGrants
)

// FundingStreamReceivers lists all funding stream receivers in their
// canonical order.
var FundingStreamReceivers = []FundingStreamReceiver{
	ElectricCoinCompany,
	ZcashFoundation,
	MajorGrants,
}

// String returns the human-readable name of the receiver.
func (r FundingStreamReceiver) String() string {
	switch r {
	case ElectricCoinCompany:
		return "ElectricCoinCompany"
	case ZcashFoundation:
		return "ZcashFoundation"
	case MajorGrants:
		return "MajorGrants"
	default:
		return "unknown"
	}
}

// FundingStreamDenominator is the shared denominator of every funding
// stream reward fraction.
const FundingStreamDenominator = 100

// FundingStream describes one receiver's share of the block subsidy: its
// reward fraction numerator and the ordered address rotation list for the
// network.
type FundingStream struct {
	// Numerator of the receiver's reward fraction. The denominator is
	// FundingStreamDenominator for all receivers.
	Numerator uint64

	// Addresses is the ordered list the recipient address rotates
	// through, one address per address-change period.
	Addresses []util.Address
}

// Params defines a Zcash network by its parameters. All fields are constant
// tables initialized at startup and never mutated, so Params values may be
// shared freely between goroutines.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net identifies the network.
	Net Network

	// ScriptHashAddrPrefix is the two-byte base58check prefix of
	// pay-to-script-hash transparent addresses.
	ScriptHashAddrPrefix [2]byte

	// SaplingHRP is the bech32 human-readable prefix of Sapling shielded
	// addresses.
	SaplingHRP string

	// ActivationHeights lists every network upgrade with its activation
	// height, ordered by strictly increasing height.
	ActivationHeights []UpgradeActivation

	// FundingStreamStartHeight is the first height at which funding
	// streams are paid.
	FundingStreamStartHeight uint64

	// FundingStreamEndHeight is the first height at which funding streams
	// are no longer paid.
	FundingStreamEndHeight uint64

	// FundingStreams maps each receiver to its reward fraction and
	// address rotation list.
	FundingStreams map[FundingStreamReceiver]FundingStream

	// FoundersRewardAddresses is the ordered rotation list of founders
	// reward addresses.
	FoundersRewardAddresses []util.Address
}

// ActivationHeight returns the height the given network upgrade activates
// at on this network, and false if the upgrade has no scheduled activation.
func (p *Params) ActivationHeight(nu NetworkUpgrade) (uint64, bool) {
	for _, activation := range p.ActivationHeights {
		if activation.Upgrade == nu {
			return activation.Height, true
		}
	}
	return 0, false
}

// UpgradeForHeight returns the network upgrade active at the given height:
// the last upgrade whose activation height is less than or equal to it.
func (p *Params) UpgradeForHeight(height uint64) NetworkUpgrade {
	current := Genesis
	for _, activation := range p.ActivationHeights {
		if activation.Height > height {
			break
		}
		current = activation.Upgrade
	}
	return current
}

// IsUpgradeActive returns true when the given network upgrade is active at
// the given height.
func (p *Params) IsUpgradeActive(height uint64, nu NetworkUpgrade) bool {
	activation, ok := p.ActivationHeight(nu)
	return ok && height >= activation
}

// TargetSpacing returns the target block spacing at the given height.
func (p *Params) TargetSpacing(height uint64) time.Duration {
	return p.UpgradeForHeight(height).TargetSpacing()
}

// MainnetParams defines the network parameters for the main Zcash network.
var MainnetParams = Params{
	Name: "mainnet",
	Net:  Mainnet,

	// Address encoding magics
	ScriptHashAddrPrefix: mainnetP2SHPrefix,
	SaplingHRP:           "zs",

	ActivationHeights: []UpgradeActivation{
		{Genesis, 0},
		{BeforeOverwinter, 1},
		{Overwinter, 347_500},
		{Sapling, 419_200},
		{Blossom, 653_600},
		{Heartwood, 903_000},
		{Canopy, 1_046_400},
		{NU5, 1_687_104},
	},

	FundingStreamStartHeight: 1_046_400,
	FundingStreamEndHeight:   2_726_400,
	FundingStreams: map[FundingStreamReceiver]FundingStream{
		ElectricCoinCompany: {
			Numerator: 7,
			Addresses: eccFundingAddressesMainnet,
		},
		ZcashFoundation: {
			Numerator: 5,
			Addresses: zfFundingAddressesMainnet,
		},
		MajorGrants: {
			Numerator: 8,
			Addresses: mgFundingAddressesMainnet,
		},
	},

	FoundersRewardAddresses: foundersRewardAddressesMainnet,
}

// TestnetParams defines the network parameters for the test Zcash network.
var TestnetParams = Params{
	Name: "testnet",
	Net:  Testnet,

	// Address encoding magics
	ScriptHashAddrPrefix: testnetP2SHPrefix,
	SaplingHRP:           "ztestsapling",

	ActivationHeights: []UpgradeActivation{
		{Genesis, 0},
		{BeforeOverwinter, 1},
		{Overwinter, 207_500},
		{Sapling, 280_000},
		{Blossom, 584_000},
		{Heartwood, 903_800},
		{Canopy, 1_028_500},
		{NU5, 1_842_420},
	},

	FundingStreamStartHeight: 1_028_500,
	FundingStreamEndHeight:   2_796_000,
	FundingStreams: map[FundingStreamReceiver]FundingStream{
		ElectricCoinCompany: {
			Numerator: 7,
			Addresses: eccFundingAddressesTestnet,
		},
		ZcashFoundation: {
			Numerator: 5,
			Addresses: zfFundingAddressesTestnet,
		},
		MajorGrants: {
			Numerator: 8,
			Addresses: mgFundingAddressesTestnet,
		},
	},

	FoundersRewardAddresses: foundersRewardAddressesTestnet,
}
