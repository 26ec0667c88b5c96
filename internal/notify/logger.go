package notify

import "go.uber.org/zap"

// Logger routes notifications into a zap logger, for headless runs where no
// terminal is attached.
type Logger struct {
	lg *zap.Logger
}

// NewLogger creates a Logger sink.
func NewLogger(lg *zap.Logger) *Logger {
	return &Logger{lg: lg}
}

func (l *Logger) Notify(n Notification) {
	fields := []zap.Field{zap.String("description", n.Description)}
	if n.Variant == Destructive {
		l.lg.Warn(n.Title, fields...)
		return
	}
	l.lg.Info(n.Title, fields...)
}
