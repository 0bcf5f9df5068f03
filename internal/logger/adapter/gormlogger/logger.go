// Package gormlogger adapts the zerolog global logger to gorm's SQL logger.
package gormlogger

import (
	"time"

	"github.com/rs/zerolog/log"
	gormlog "gorm.io/gorm/logger"
)

const slowThreshold = 200 * time.Millisecond

// writer forwards gorm's log lines to zerolog.
type writer struct{}

// Printf implements gormlog.Writer.
func (writer) Printf(format string, args ...interface{}) {
	log.Debug().Msgf(format, args...)
}

// New returns a gorm logger writing through the zerolog global logger.
// In dev mode every statement is traced, otherwise only slow queries and
// errors show up.
func New(devMode bool) gormlog.Interface {
	level := gormlog.Warn
	if devMode {
		level = gormlog.Info
	}

	return gormlog.New(writer{}, gormlog.Config{
		SlowThreshold:             slowThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
