package util

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/eopatcher/eopatcher/formatter"
)

// ConsoleLog makes InitLog write to stderr instead of a rotating file
const ConsoleLog = "console"

// InitLog parses and sets log-level input. logFormat is formatter.TextFormat or formatter.JSONFormat.
func InitLog(logLevel string, logPath string, logFormat string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Errorf("Failed parsing log-level %s: %s", logLevel, err)
		return err
	}

	if logPath != "" && logPath != ConsoleLog {
		lumberjackLogger := &lumberjack.Logger{
			// Log file absolute path, os agnostic
			Filename:   filepath.ToSlash(logPath),
			MaxSize:    5, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		}
		log.SetOutput(io.Writer(lumberjackLogger))
	} else {
		log.SetOutput(os.Stderr)
	}

	if err := formatter.Set(log.StandardLogger(), logFormat); err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}
