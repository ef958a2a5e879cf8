package main

import (
	"os"

	"github.com/harlequix/hammify/cmd"
	log "github.com/harlequix/hammify/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.NewLogger("hammify").WithError(err).Error("failed")
		os.Exit(1)
	}
}
