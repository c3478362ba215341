// zecsubsidy prints the block subsidy breakdown of a height range: the
// total subsidy, the miner share, and every founders reward or funding
// stream payment the consensus rules require at each height.
package main

import (
	"fmt"
	"os"

	"github.com/zecnet/zecd/chaincfg"
	"github.com/zecnet/zecd/consensus"
	"github.com/zecnet/zecd/infrastructure/logger"
	"github.com/zecnet/zecd/version"
)

func main() {
	defer logger.Close()

	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	log.Infof("Version %s", version.Version())
	log.Infof("Reporting %s heights %d to %d", cfg.ActiveParams().Name,
		cfg.StartHeight, cfg.EndHeight)

	for height := cfg.StartHeight; height <= cfg.EndHeight; height++ {
		err = printBreakdown(cfg.ActiveParams(), height)
		if err != nil {
			log.Criticalfe("Error computing subsidy at height %d: %s",
				height, err)
		}
	}
}

func printBreakdown(params *chaincfg.Params, height uint64) error {
	subsidy := consensus.BlockSubsidy(params, height)
	miner, err := consensus.MinerSubsidy(params, height)
	if err != nil {
		return err
	}

	fmt.Printf("height %d (%s, halving %d): subsidy %s, miner %s\n",
		height, params.UpgradeForHeight(height),
		consensus.Halving(params, height), subsidy, miner)

	if consensus.FoundersRewardActive(params, height) {
		address, err := consensus.FoundersRewardAddress(params, height)
		if err != nil {
			return err
		}
		fmt.Printf("  founders reward %s to %s\n",
			consensus.FoundersReward(params, height), address.EncodeAddress())
	}

	if !consensus.FundingStreamsActive(params, height) {
		return nil
	}
	for _, receiver := range chaincfg.FundingStreamReceivers {
		amount, err := consensus.FundingStreamAmount(params, receiver, height)
		if err != nil {
			return err
		}
		address, err := consensus.FundingStreamAddress(params, receiver, height)
		if err != nil {
			return err
		}
		fmt.Printf("  %s stream %s to %s\n", receiver, amount,
			address.EncodeAddress())
	}
	return nil
}
