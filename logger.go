package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func initLogger(cfg config) {
	log.SetOutput(os.Stderr)
	if cfg.logJSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	if cfg.debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
