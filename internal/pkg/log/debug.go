package log

import (
	"bytes"
	"fmt"

	"go.uber.org/zap/zapcore"
)

// NewDebugLogger returns logs as string in tests.
func NewDebugLogger() DebugLogger {
	return &debugLogger{}
}

type debugLogger struct {
	all   bytes.Buffer
	debug bytes.Buffer
	info  bytes.Buffer
	warn  bytes.Buffer
	err   bytes.Buffer
}

func (l *debugLogger) log(level zapcore.Level, msg string) {
	line := fmt.Sprintf("%s  %s\n", level.CapitalString(), msg)
	l.all.WriteString(line)
	switch level {
	case DebugLevel:
		l.debug.WriteString(line)
	case InfoLevel:
		l.info.WriteString(line)
	case WarnLevel:
		l.warn.WriteString(line)
	case ErrorLevel:
		l.err.WriteString(line)
	default:
		l.info.WriteString(line)
	}
}

func (l *debugLogger) Debug(args ...any) { l.log(DebugLevel, fmt.Sprint(args...)) }
func (l *debugLogger) Info(args ...any)  { l.log(InfoLevel, fmt.Sprint(args...)) }
func (l *debugLogger) Warn(args ...any)  { l.log(WarnLevel, fmt.Sprint(args...)) }
func (l *debugLogger) Error(args ...any) { l.log(ErrorLevel, fmt.Sprint(args...)) }

func (l *debugLogger) Debugf(template string, args ...any) {
	l.log(DebugLevel, fmt.Sprintf(template, args...))
}

func (l *debugLogger) Infof(template string, args ...any) {
	l.log(InfoLevel, fmt.Sprintf(template, args...))
}

func (l *debugLogger) Warnf(template string, args ...any) {
	l.log(WarnLevel, fmt.Sprintf(template, args...))
}

func (l *debugLogger) Errorf(template string, args ...any) {
	l.log(ErrorLevel, fmt.Sprintf(template, args...))
}

func (l *debugLogger) Sync() error {
	return nil
}

func (l *debugLogger) Truncate() {
	l.all.Reset()
	l.debug.Reset()
	l.info.Reset()
	l.warn.Reset()
	l.err.Reset()
}

// AllMessages returns and truncates all messages.
func (l *debugLogger) AllMessages() string {
	out := l.all.String()
	l.all.Reset()
	return out
}

func (l *debugLogger) DebugMessages() string {
	out := l.debug.String()
	l.debug.Reset()
	return out
}

func (l *debugLogger) InfoMessages() string {
	out := l.info.String()
	l.info.Reset()
	return out
}

func (l *debugLogger) WarnMessages() string {
	out := l.warn.String()
	l.warn.Reset()
	return out
}

func (l *debugLogger) ErrorMessages() string {
	out := l.err.String()
	l.err.Reset()
	return out
}

func (l *debugLogger) WarnAndErrorMessages() string {
	out := l.warn.String() + l.err.String()
	l.warn.Reset()
	l.err.Reset()
	return out
}

func (l *debugLogger) DebugWriter() *LevelWriter {
	return &LevelWriter{logger: l, level: DebugLevel}
}

func (l *debugLogger) InfoWriter() *LevelWriter {
	return &LevelWriter{logger: l, level: InfoLevel}
}

func (l *debugLogger) WarnWriter() *LevelWriter {
	return &LevelWriter{logger: l, level: WarnLevel}
}

func (l *debugLogger) ErrorWriter() *LevelWriter {
	return &LevelWriter{logger: l, level: ErrorLevel}
}
