package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// debugLogFile receives structured logs when DEBUG is set. The TUI owns
// stdout, so nothing is logged there.
const debugLogFile = "messages.log"

// newLogger returns a JSON logger writing to messages.log when DEBUG is set
// and discarding everything otherwise. The returned func closes the file.
func newLogger() (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.InfoLevel)

	if _, ok := os.LookupEnv(EnvDebug); !ok {
		return log, func() {}, nil
	}

	dump, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	log.SetOutput(dump)
	log.SetLevel(logrus.DebugLevel)

	return log, func() { _ = dump.Close() }, nil
}

// discardLogger is used where no debug log was requested.
func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
