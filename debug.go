package main

import (
	"log"
	"os"
)

// debugLogPath is empty unless debug logging was asked for.
var debugLogPath string

// logDebug writes formatted text to the debug log, if enabled
func logDebug(format string, v ...interface{}) {
	if debugLogPath == "" {
		return
	}
	f, err := os.OpenFile(debugLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	logger := log.New(f, "DEBUG: ", log.LstdFlags)
	logger.Printf(format, v...)
}
