// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(EXIT_USAGE)
	}
}
