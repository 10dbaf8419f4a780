package observability

import (
	"sort"

	"go.uber.org/zap"
)

// ZapObserver logs every analysis stage at debug level. It satisfies the
// analyzer's Observer interface.
type ZapObserver struct {
	logger *zap.Logger
}

// NewZapObserver wraps logger; a nil logger logs nothing
func NewZapObserver(logger *zap.Logger) *ZapObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapObserver{logger: logger.Named("analysis")}
}

// OnStage logs the stage name with its fields, in key order so output is stable
func (o *ZapObserver) OnStage(stage string, fields map[string]any) {
	if ce := o.logger.Check(zap.DebugLevel, stage); ce != nil {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		zf := make([]zap.Field, 0, len(keys))
		for _, k := range keys {
			zf = append(zf, zap.Any(k, fields[k]))
		}
		ce.Write(zf...)
	}
}
