package chaincfg

import "time"

// NetworkUpgrade identifies a named protocol upgrade. Upgrades are ordered:
// a later constant never activates before an earlier one.
type NetworkUpgrade int

// The network upgrades, in activation order.
const (
	// Genesis is the protocol as of the genesis block.
	Genesis NetworkUpgrade = iota

	// BeforeOverwinter is the protocol after genesis and before the first
	// named upgrade, covering the slow-start mining period.
	BeforeOverwinter

	// Overwinter introduced transaction versioning and replay protection.
	Overwinter

	// Sapling introduced the Sapling shielded pool.
	Sapling

	// Blossom halved the target block spacing from 150 to 75 seconds.
	Blossom

	// Heartwood allowed shielded coinbase outputs.
	Heartwood

	// Canopy replaced the founders reward with funding streams at the
	// first halving.
	Canopy

	// NU5 introduced the Orchard shielded pool.
	NU5
)

const (
	// PreBlossomTargetSpacing is the target block spacing before the
	// Blossom upgrade.
	PreBlossomTargetSpacing = 150 * time.Second

	// PostBlossomTargetSpacing is the target block spacing from Blossom
	// activation on.
	PostBlossomTargetSpacing = 75 * time.Second

	// BlossomPoWTargetSpacingRatio is the ratio between the pre- and
	// post-Blossom target spacings. Halving intervals measured in blocks
	// are scaled by this ratio across the Blossom boundary so that
	// halvings keep their original wall-clock schedule.
	BlossomPoWTargetSpacingRatio = uint64(PreBlossomTargetSpacing / PostBlossomTargetSpacing)
)

var networkUpgradeNames = [...]string{
	Genesis:          "Genesis",
	BeforeOverwinter: "BeforeOverwinter",
	Overwinter:       "Overwinter",
	Sapling:          "Sapling",
	Blossom:          "Blossom",
	Heartwood:        "Heartwood",
	Canopy:           "Canopy",
	NU5:              "NU5",
}

// String returns the human-readable name of the network upgrade.
func (nu NetworkUpgrade) String() string {
	if nu < 0 || int(nu) >= len(networkUpgradeNames) {
		return "Unknown"
	}
	return networkUpgradeNames[nu]
}

// TargetSpacing returns the target block spacing while nu is the active
// upgrade. It is used only to derive halving intervals in block counts.
func (nu NetworkUpgrade) TargetSpacing() time.Duration {
	if nu >= Blossom {
		return PostBlossomTargetSpacing
	}
	return PreBlossomTargetSpacing
}
