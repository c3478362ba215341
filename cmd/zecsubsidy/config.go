package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/zecnet/zecd/chaincfg"
	"github.com/zecnet/zecd/infrastructure/logger"
	"github.com/zecnet/zecd/version"
)

const defaultLogFilename = "zecsubsidy.log"

var defaultLogFile = filepath.Join(appDataDir("zecsubsidy"), defaultLogFilename)

type configFlags struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	Testnet     bool   `long:"testnet" description:"Use the test network"`
	StartHeight uint64 `short:"f" long:"from" description:"First height to report"`
	EndHeight   uint64 `short:"t" long:"to" description:"Last height to report. If omitted, only the start height is reported."`
	LogLevel    string `short:"d" long:"loglevel" default:"info" description:"Logging level {trace, debug, info, warn, error, critical}"`

	params *chaincfg.Params
}

// ActiveParams returns the network parameters selected on the command line.
func (cfg *configFlags) ActiveParams() *chaincfg.Params {
	return cfg.params
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	if err != nil {
		return nil, err
	}

	cfg.params = &chaincfg.MainnetParams
	if cfg.Testnet {
		cfg.params = &chaincfg.TestnetParams
	}

	if cfg.EndHeight == 0 {
		cfg.EndHeight = cfg.StartHeight
	}
	if cfg.EndHeight < cfg.StartHeight {
		return nil, errors.Errorf("--to (%d) must not be below --from (%d)",
			cfg.EndHeight, cfg.StartHeight)
	}

	level, ok := logger.LevelFromString(cfg.LogLevel)
	if !ok {
		return nil, errors.Errorf("invalid log level %q, supported levels "+
			"are %s", cfg.LogLevel, strings.Join(logger.SupportedLevels(), ", "))
	}
	err = logger.InitLog(defaultLogFile, level)
	if err != nil {
		return nil, err
	}
	logger.SetLogLevels(level)

	return cfg, nil
}

// appDataDir returns an application data directory under the user home
// directory, falling back to the working directory when the home directory
// cannot be determined.
func appDataDir(appName string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, "."+appName)
}
