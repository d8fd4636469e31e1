package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileName = "ixservice.log"

type LogOption struct {
	Format   string // console | json
	LogDir   string // empty means stderr
	Level    string // debug | info | warn | error
	Compress bool
}

// New builds a zap logger. With LogDir set, output goes to a rotated file.
func New(opt LogOption) (*zap.Logger, error) {
	level, err := parseLevel(opt.Level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch strings.ToLower(opt.Format) {
	case "", "console":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unsupported log format %q", opt.Format)
	}

	var sink zapcore.WriteSyncer
	if opt.LogDir == "" {
		sink = zapcore.Lock(os.Stderr)
	} else {
		if err := os.MkdirAll(opt.LogDir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(opt.LogDir, logFileName),
			MaxSize:    100, // MB
			MaxBackups: 10,
			MaxAge:     30, // days
			Compress:   opt.Compress,
		})
	}

	return zap.New(zapcore.NewCore(encoder, sink, level), zap.AddCaller()), nil
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return level, fmt.Errorf("unsupported log level %q", s)
	}
	return level, nil
}
