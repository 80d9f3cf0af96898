package logger

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/harrison/repoqa/internal/filelock"
	"github.com/harrison/repoqa/internal/models"
)

// LogFileName is the JSON log file created inside the log directory
const LogFileName = "repoqa.log"

// FileLogger appends JSON records to <logDir>/repoqa.log.
// Every record is written under the file's lock, so several repoqa processes
// can share one log directory.
type FileLogger struct {
	zap    *zap.Logger
	writer *filelock.LockedWriter
	path   string
}

// NewFileLogger creates a FileLogger in logDir, creating the directory if
// needed. Valid levels match ConsoleLogger; trace is recorded as debug.
func NewFileLogger(logDir string, logLevel string) (*FileLogger, error) {
	path := filepath.Join(logDir, LogFileName)

	writer, err := filelock.OpenLockedWriter(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(writer),
		zapLevel(normalizeLogLevel(logLevel)),
	)

	return &FileLogger{
		zap:    zap.New(core),
		writer: writer,
		path:   path,
	}, nil
}

// zapLevel maps a normalized level name to zap's levels
func zapLevel(level string) zapcore.Level {
	switch level {
	case "trace", "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Path returns the log file path
func (fl *FileLogger) Path() string {
	return fl.path
}

// LogTrace logs a trace-level message at zap's debug level.
func (fl *FileLogger) LogTrace(message string) {
	fl.zap.Debug(message, zap.Bool("trace", true))
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.zap.Debug(message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.zap.Info(message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.zap.Warn(message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.zap.Error(message)
}

// LogAnswer writes one structured record per answer. Failed answers are
// warnings; the rest are debug.
func (fl *FileLogger) LogAnswer(answer models.Answer) {
	fields := []zap.Field{
		zap.String("request_id", answer.RequestID),
		zap.String("intent", string(answer.Intent)),
		zap.String("status", answer.Status),
		zap.Duration("duration", answer.Duration),
	}
	if answer.Argument != "" {
		fields = append(fields, zap.String("argument", answer.Argument))
	}

	if answer.Failed() {
		fields = append(fields,
			zap.String("error_kind", string(answer.Err.Kind)),
			zap.String("error", answer.Err.Message),
		)
		fl.zap.Warn("answer", fields...)
		return
	}
	fl.zap.Debug("answer", fields...)
}

// Close flushes buffered records and closes the log file
func (fl *FileLogger) Close() error {
	// Sync on a plain file never fails for a reason worth surfacing at shutdown
	_ = fl.zap.Sync()
	return fl.writer.Close()
}
