// Package logging sets up the structured logger this core's commands and
// behaviors log through. It replaces the teacher's stdlib log.Printf calls
// with logrus (orbas1-Synnergy/synnergy-network/cmd/cli/gateway_node.go's
// godotenv.Load + logrus.ParseLevel pattern), while keeping the teacher's
// one-line startup/shutdown message style.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New configures a logrus.Logger at the given level (parsed with
// logrus.ParseLevel; an empty or invalid level falls back to Info) writing
// to stderr, matching how a headless server command reports its own state.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lv, err := logrus.ParseLevel(level)
	if err != nil {
		lv = logrus.InfoLevel
	}
	log.SetLevel(lv)
	return log
}

// Fields is a shorthand alias so callers don't need to import logrus
// directly just to attach structured fields to a log line.
type Fields = logrus.Fields
