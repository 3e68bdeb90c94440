package log

import (
	"go.uber.org/zap/zapcore"
)

// fileCore writes all levels to the log file.
func fileCore(logFile *File) zapcore.Core {
	fileLevels := zapcore.DebugLevel

	// Log time, level, msg
	encoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:     "time",
		LevelKey:    "level",
		MessageKey:  "message",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
		EncodeTime:  zapcore.ISO8601TimeEncoder,
	})

	return zapcore.NewCore(encoder, logFile.File(), fileLevels)
}
