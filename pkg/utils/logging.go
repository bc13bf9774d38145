package utils

import (
    "os"
    "path/filepath"
    "sync"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

var (
    logger     *zap.Logger
    loggerOnce sync.Once
)

// Logger builds the process logger on first use. LOG_LEVEL picks the level
// (default info) and LOG_FILE, when set, tees the JSON stream into that file.
func Logger() *zap.Logger {
    loggerOnce.Do(func() { logger = newLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FILE")) })
    return logger
}

func newLogger(level, logFile string) *zap.Logger {
    lvl := zapcore.InfoLevel
    if level != "" {
        if err := lvl.UnmarshalText([]byte(level)); err != nil { lvl = zapcore.InfoLevel }
    }
    enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
    cores := []zapcore.Core{zapcore.NewCore(enc, zapcore.Lock(os.Stdout), lvl)}
    if logFile != "" {
        _ = os.MkdirAll(filepath.Dir(logFile), 0o755)
        f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
        if err == nil { cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(f), lvl)) }
    }
    return zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}
