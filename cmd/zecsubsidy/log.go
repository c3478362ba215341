package main

import (
	"github.com/zecnet/zecd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("ZSUB")
