package consensus

import (
	"github.com/zecnet/zecd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("SBSD")
