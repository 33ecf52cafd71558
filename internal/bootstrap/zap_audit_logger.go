package bootstrap

import (
	"context"
	"time"

	"go-geoattend/internal/shared/contextutil"

	"go.uber.org/zap"
)

// ZapAuditLogger writes audit entries as structured log lines on a
// dedicated "audit" logger.
type ZapAuditLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewZapAuditLogger(logger *zap.Logger) *ZapAuditLogger {
	if logger == nil {
		logger = zap.L()
	}
	return &ZapAuditLogger{logger: logger.Named("audit"), now: time.Now}
}

func (l *ZapAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("action", entry.Action),
		zap.Time("at", l.now().UTC()),
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	for k, v := range entry.Meta {
		fields = append(fields, zap.Any(k, v))
	}
	l.logger.Info(entry.Message, fields...)
}
