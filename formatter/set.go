package formatter

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
)

const (
	TextFormat = "text"
	JSONFormat = "json"
)

// Set installs the formatter named by format and the SourceHook on logger
func Set(logger *logrus.Logger, format string) error {
	switch format {
	case TextFormat, "":
		logger.SetFormatter(&TextFormatter{})
	case JSONFormat:
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			// the location is carried by SourceField
			CallerPrettyfier: func(*runtime.Frame) (string, string) { return "", "" },
		})
	default:
		return fmt.Errorf("unknown log format %q, expected %s or %s", format, TextFormat, JSONFormat)
	}

	logger.SetReportCaller(true)
	logger.ReplaceHooks(make(logrus.LevelHooks))
	logger.AddHook(NewSourceHook())
	return nil
}
