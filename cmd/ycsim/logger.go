// Package main provides debug logging utilities for the ycsim CLI.
//
// This file implements a debug logger that writes log messages to
// ~/.ycsim/debug.log for troubleshooting wizard operations.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var debugLogger *log.Logger

func initLogger() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	logDir := filepath.Join(home, ".ycsim")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logFile := filepath.Join(logDir, "debug.log")
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	debugLogger = log.New(file, "", log.LstdFlags|log.Lshortfile)
	debugLogger.Printf("=== ycsim started ===")
	return nil
}

func logDebug(format string, args ...interface{}) {
	if debugLogger != nil {
		debugLogger.Output(2, fmt.Sprintf(format, args...))
	}
}
