// Package loggertest provides an in-memory logger for assertions on log output.
package loggertest

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"legalcopilot/internal/logger"
)

// New returns a debug-level logger and the entries it records.
func New() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return logger.NewWithCore(core), logs
}
