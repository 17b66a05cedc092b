package notification

import (
	"context"
	"sort"

	"go.uber.org/zap"
)

// LogSender writes messages to the structured log instead of delivering
// them. It stands in for the mail provider until one is configured.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, m Message) error {
	keys := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := make([]zap.Field, 0, len(keys)+5)
	fields = append(fields,
		zap.String("kind", string(m.Kind)),
		zap.String("audience", string(m.Audience)),
		zap.String("to", m.To),
		zap.String("subject", m.Subject),
		zap.String("quote_id", m.QuoteID),
	)
	for _, k := range keys {
		fields = append(fields, zap.String("field."+k, m.Fields[k]))
	}
	s.logger.Info("[notification][log] message", fields...)
	return nil
}
