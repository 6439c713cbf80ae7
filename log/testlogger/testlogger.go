// Package testlogger builds loggers bound to a test's output.
package testlogger

import (
	"os"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"

	"github.com/momentics/splitvec/log"
)

// Level returns DebugLevel when SPLITVEC_TEST_LOGS=DEBUG, InfoLevel otherwise.
func Level(t testing.TB) int {
	if v, ok := os.LookupEnv("SPLITVEC_TEST_LOGS"); ok && v == "DEBUG" {
		t.Log("Enabling DebugLevel logs")
		return log.DebugLevel
	}
	return log.InfoLevel
}

// New returns a logger writing through t.Log.
func New(t testing.TB) log.Logger {
	l := zaptest.NewLogger(t, zaptest.Level(zapcore.Level(Level(t))))
	return log.FromZap(l).With("testName", t.Name())
}
