package logger

import "go.uber.org/zap"

// NewLogger builds the application logger: console encoding to stdout plus a
// file sink so submissions can be diagnosed after the fact.
func NewLogger() *zap.Logger {
	dualConfig := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		OutputPaths:      []string{"stdout", "./logs/app.log"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	dualLogger, err := dualConfig.Build()
	if err != nil {
		panic(err)
	}

	return dualLogger
}

// NewTestLogger is a no-op logger for unit tests.
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}
