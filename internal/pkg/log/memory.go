package log

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// MemoryLogger stores messages in the memory.
// It is used as a temporary logger before the flags are parsed
// and the real logger can be created, then the messages are replayed.
type MemoryLogger struct {
	entries []memoryEntry
}

type memoryEntry struct {
	level   zapcore.Level
	message string
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

// CopyLogsTo the target logger.
func (l *MemoryLogger) CopyLogsTo(target Logger) {
	for _, e := range l.entries {
		switch e.level {
		case DebugLevel:
			target.Debug(e.message)
		case InfoLevel:
			target.Info(e.message)
		case WarnLevel:
			target.Warn(e.message)
		case ErrorLevel:
			target.Error(e.message)
		default:
			target.Info(e.message)
		}
	}
}

func (l *MemoryLogger) log(level zapcore.Level, args ...any) {
	l.entries = append(l.entries, memoryEntry{level: level, message: fmt.Sprint(args...)})
}

func (l *MemoryLogger) logf(level zapcore.Level, template string, args ...any) {
	l.entries = append(l.entries, memoryEntry{level: level, message: fmt.Sprintf(template, args...)})
}

func (l *MemoryLogger) Debug(args ...any) { l.log(DebugLevel, args...) }
func (l *MemoryLogger) Info(args ...any)  { l.log(InfoLevel, args...) }
func (l *MemoryLogger) Warn(args ...any)  { l.log(WarnLevel, args...) }
func (l *MemoryLogger) Error(args ...any) { l.log(ErrorLevel, args...) }

func (l *MemoryLogger) Debugf(template string, args ...any) { l.logf(DebugLevel, template, args...) }
func (l *MemoryLogger) Infof(template string, args ...any)  { l.logf(InfoLevel, template, args...) }
func (l *MemoryLogger) Warnf(template string, args ...any)  { l.logf(WarnLevel, template, args...) }
func (l *MemoryLogger) Errorf(template string, args ...any) { l.logf(ErrorLevel, template, args...) }

func (l *MemoryLogger) Sync() error {
	return nil
}

func (l *MemoryLogger) DebugWriter() *LevelWriter {
	return &LevelWriter{logger: l, level: DebugLevel}
}

func (l *MemoryLogger) InfoWriter() *LevelWriter {
	return &LevelWriter{logger: l, level: InfoLevel}
}

func (l *MemoryLogger) WarnWriter() *LevelWriter {
	return &LevelWriter{logger: l, level: WarnLevel}
}

func (l *MemoryLogger) ErrorWriter() *LevelWriter {
	return &LevelWriter{logger: l, level: ErrorLevel}
}
