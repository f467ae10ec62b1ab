package audit

import (
	"context"
	"time"

	"github.com/FurowKick/phone-directory/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Log is a single security-relevant event: logins, account creation,
// admin seeding, server lifecycle.
type Log struct {
	Action  string
	Message string
	Meta    map[string]any
}

type Logger interface {
	Log(ctx context.Context, entry Log)
}

// StdoutLogger writes audit events through the global zap logger. A real
// deployment can swap in a sink that ships them elsewhere.
type StdoutLogger struct{}

func NewStdoutLogger() *StdoutLogger {
	return &StdoutLogger{}
}

func (l *StdoutLogger) Log(ctx context.Context, entry Log) {
	fields := []zap.Field{
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	}
	// Correlate with the request that caused the event when there is one.
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	if uid := contextutil.GetUserID(ctx); uid != "" {
		fields = append(fields, zap.String("user_id", uid))
	}
	zap.L().Named("audit").Info("audit event", fields...)
}
