// Command tidydate prints dates and date ranges the way the API renders them
package main

import (
	"os"
	_ "time/tzdata"

	"github.com/simonljus/tidy-date/internal/platform/logger"
)

func main() {
	logger.Init(logger.FromEnv())
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
