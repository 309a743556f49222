package app

import (
	"github.com/fpawel/shopsql/internal/data"
	"github.com/powerman/structlog"
	"os"
	"path/filepath"
)

// InitLog configures structlog.DefaultLogger and recreates the unit loggers
// so they pick up the settings.
func InitLog(level string) {
	structlog.DefaultLogger.
		SetLogLevel(level).
		SetPrefixKeys(
			structlog.KeyApp, structlog.KeyPID, structlog.KeyLevel, structlog.KeyUnit, structlog.KeyTime,
		).
		SetDefaultKeyvals(
			structlog.KeyApp, filepath.Base(os.Args[0]),
			structlog.KeySource, structlog.Auto,
		).
		SetSuffixKeys(
			structlog.KeyStack,
		).
		SetSuffixKeys(structlog.KeySource).
		SetKeysFormat(map[string]string{
			structlog.KeyTime:   " %[2]s",
			structlog.KeySource: " %6[2]s",
			structlog.KeyUnit:   " %6[2]s",
		}).SetTimeFormat("15:04:05")

	log = structlog.New(structlog.KeyUnit, "app")
	data.SetLog(structlog.New(structlog.KeyUnit, "data"))
}
