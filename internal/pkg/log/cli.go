package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewCliLogger creates a logger for the command line:
// info messages go to stdout, warnings and errors to stderr,
// in the verbose mode also debug messages go to stdout with a level prefix,
// all levels go to the log file if it is set.
func NewCliLogger(stdout io.Writer, stderr io.Writer, logFile *File, verbose bool) Logger {
	var cores []zapcore.Core

	if logFile != nil {
		cores = append(cores, fileCore(logFile))
	}

	cores = append(cores, stdoutCore(stdout, verbose))
	cores = append(cores, stderrCore(stderr, verbose))

	return loggerFromZap(zap.New(zapcore.NewTee(cores...)))
}

// stdoutCore logs debug (verbose only) and info levels.
func stdoutCore(stdout io.Writer, verbose bool) zapcore.Core {
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		if verbose {
			return l <= InfoLevel
		}
		return l == InfoLevel
	})
	return zapcore.NewCore(consoleEncoder(verbose), zapcore.AddSync(writerWrapper{stdout}), levels)
}

// stderrCore logs warn and error levels.
func stderrCore(stderr io.Writer, verbose bool) zapcore.Core {
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= WarnLevel
	})
	return zapcore.NewCore(consoleEncoder(verbose), zapcore.AddSync(writerWrapper{stderr}), levels)
}

// consoleEncoder writes the plain message, in the verbose mode with a level prefix.
func consoleEncoder(verbose bool) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		MessageKey:       "message",
		ConsoleSeparator: "\t",
	}
	if verbose {
		cfg.LevelKey = "level"
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return zapcore.NewConsoleEncoder(cfg)
}

// writerWrapper hides other interfaces of the target writer,
// so the writer is not closed by the zap internals.
type writerWrapper struct {
	io.Writer
}
