package plangen

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/mindflow/internal/planner"
)

// WithFallback chains a primary generator with a backup. When the primary
// fails for any reason, the failure is logged and the backup's plan is
// returned with its Fallback flag set so callers can tell the difference.
type WithFallback struct {
	primary Generator
	backup  Generator
	log     *zap.Logger
}

// NewWithFallback builds the chain. Both generators are required; a nil
// logger discards the failure log.
func NewWithFallback(primary, backup Generator, log *zap.Logger) *WithFallback {
	if log == nil {
		log = zap.NewNop()
	}
	return &WithFallback{primary: primary, backup: backup, log: log}
}

func (f *WithFallback) Generate(ctx context.Context, req planner.BuildRequest) (*Plan, error) {
	p, err := f.primary.Generate(ctx, req)
	if err == nil {
		return p, nil
	}
	f.log.Warn("primary plan generator failed, using offline planner",
		zap.String("subject", req.Subject),
		zap.Error(err))

	p, err = f.backup.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	p.Fallback = true
	p.Adaptations = append(p.Adaptations, "Built with the offline planner while the AI assistant was unavailable")
	return p, nil
}
