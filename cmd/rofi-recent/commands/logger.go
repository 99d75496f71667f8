package commands

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/strrl/rofi-recent/internal/config"
)

func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}
