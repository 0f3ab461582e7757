// Package observe adapts structured loggers to matrix.Observer so the
// engine itself stays logger-agnostic.
package observe

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/destinymatrix/matrix"
	"github.com/katalvlaran/destinymatrix/node"
)

// Message is the log message written for every evaluation.
const Message = "matrix evaluated"

// zapObserver writes one debug entry per Report.
type zapObserver struct {
	logger *zap.Logger
}

// Logger returns an Observer that logs each evaluation at debug level.
// A nil logger yields a no-op observer.
func Logger(logger *zap.Logger) matrix.Observer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &zapObserver{logger: logger.Named("matrix")}
}

// Observe implements matrix.Observer.
func (z *zapObserver) Observe(r matrix.Report) {
	if ce := z.logger.Check(zap.DebugLevel, Message); ce != nil {
		ce.Write(
			zap.Stringer("variant", r.Variant),
			zap.Stringer("date", r.Date),
			zap.Int("d", r.Base.D),
			zap.Int("m", r.Base.M),
			zap.Int("y", r.Base.Y),
			zap.Int("core", r.Nodes.Value(node.XY0)),
			zap.Int("nodes", r.Nodes.Len()),
			zap.Bool("cached", r.Cached),
		)
	}
}
