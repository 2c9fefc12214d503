package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormLogger "gorm.io/gorm/logger"
)

// zerologWriter routes gorm's log lines into the global zerolog logger so SQL
// output follows the console/JSON setup of internal/logger. Plain SQL traces are
// logged at debug level.
type zerologWriter struct{}

func (zerologWriter) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.WithLevel(gormLineLevel(format, msg, args)).Str("component", "gorm").Msg(msg)
}

func gormLineLevel(format, msg string, args []interface{}) zerolog.Level {
	switch {
	case strings.Contains(format, "[error]"):
		return zerolog.ErrorLevel
	case strings.Contains(format, "[warn]"), strings.Contains(msg, "SLOW SQL"):
		return zerolog.WarnLevel
	case strings.Contains(format, "[info]"):
		return zerolog.InfoLevel
	}
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			return zerolog.ErrorLevel
		}
	}
	return zerolog.DebugLevel
}

func newGormLogger(level gormLogger.LogLevel) gormLogger.Interface {
	return gormLogger.New(zerologWriter{}, gormLogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
