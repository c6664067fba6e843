package main

import (
	"os"

	"github.com/skimtext/skim/cmd"
	"github.com/skimtext/skim/pkg/utils"
)

func main() {
	logger := utils.GetLogger()
	defer func() {
		if err := logger.Close(); err != nil {
			os.Stderr.WriteString("Error closing logger: " + err.Error() + "\n")
		}
	}()

	if err := cmd.Execute(); err != nil {
		logger.LogError(err)
		os.Exit(1)
	}
}
