// Package logging sets up the debug log shared by both commands
//
// Logging is off unless --debug is given: the terminal belongs to the
// renderer, so nothing may be written to stdout or stderr while it runs.
package logging

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultDir       = "logs"
	DefaultMaxSizeMB = 10
)

// Options selects where debug logs go
type Options struct {
	Enabled    bool
	Dir        string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// Setup builds the logger described by opts
// The returned close function flushes and releases the log file and
// restores the standard library logger; it is never nil
func Setup(opts Options) (*zap.Logger, func() error, error) {
	if !opts.Enabled {
		return zap.NewNop(), func() error { return nil }, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if opts.File == "" {
		return nil, nil, errors.New("log file name is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, errors.Wrapf(err, "create log dir %s", dir)
	}

	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = DefaultMaxSizeMB
	}

	sink := &lumberjack.Logger{
		Filename:   filepath.Join(dir, opts.File),
		MaxSize:    maxSize,
		MaxBackups: opts.MaxBackups,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(sink), zapcore.DebugLevel)
	logger := zap.New(core, zap.AddCaller())

	restore := zap.RedirectStdLog(logger)
	closeFn := func() error {
		restore()
		_ = logger.Sync()
		return sink.Close()
	}
	return logger, closeFn, nil
}
