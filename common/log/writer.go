package log

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ss58-project/ss58gen/common/errors"
)

// WriterConfig configures the rotated log file. Zero values fall back to
// small defaults suited to a short-lived CLI.
type WriterConfig struct {
	Filename   string `json:"filename"`
	MaxSize    int    `json:"maxsize"`
	MaxAge     int    `json:"maxage"`
	MaxBackups int    `json:"maxbackups"`
	LocalTime  bool   `json:"localtime"`
	Compress   bool   `json:"compress"`
}

const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 2
)

// NewWriter returns a size-rotated file writer for the log filter's file
// sink.
func NewWriter(cfg *WriterConfig) (io.Writer, error) {
	if cfg.Filename == "" {
		return nil, errors.IllegalArgumentError.New("log filename is empty")
	}
	maxSize := cfg.MaxSize
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := cfg.MaxBackups
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}
	return &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    maxSize,
		MaxAge:     cfg.MaxAge,
		MaxBackups: maxBackups,
		LocalTime:  cfg.LocalTime,
		Compress:   cfg.Compress,
	}, nil
}
