package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Logger defines an interface for application logger.
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Sync() error
}

type loggerImpl struct {
	zapLogger *zap.Logger
}

var _ Logger = (*loggerImpl)(nil)

// NewLogger creates a new logger.
// If fileName is non-empty, it pipes logs to file with rotation.
// Otherwise, it pipes logs to stdout.
func NewLogger(isProduction bool, fileName, logLevel string) (Logger, error) {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	var config zap.Config
	if isProduction {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(level)

	if fileName == "" {
		zapLogger, err := config.Build()
		if err != nil {
			return nil, err
		}
		return &loggerImpl{zapLogger: zapLogger}, nil
	}

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    100, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
	})

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(config.EncoderConfig),
		fileWriter,
		level,
	)

	return &loggerImpl{zapLogger: zap.New(core)}, nil
}

// NewNopLogger returns a no-op logger. Used in tests.
func NewNopLogger() Logger {
	return &loggerImpl{zapLogger: zap.NewNop()}
}

func (l *loggerImpl) Info(msg string, fields ...zap.Field) {
	l.zapLogger.Info(msg, fields...)
}

func (l *loggerImpl) Warn(msg string, fields ...zap.Field) {
	l.zapLogger.Warn(msg, fields...)
}

func (l *loggerImpl) Error(msg string, fields ...zap.Field) {
	l.zapLogger.Error(msg, fields...)
}

func (l *loggerImpl) Debug(msg string, fields ...zap.Field) {
	l.zapLogger.Debug(msg, fields...)
}

func (l *loggerImpl) Sync() error {
	return l.zapLogger.Sync()
}
