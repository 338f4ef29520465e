package httpapi

import (
	"context"
	"database/sql"
	"sync/atomic"

	"jobtools-engine/internal/config"
	"jobtools-engine/internal/events"
	"jobtools-engine/internal/pipeline"
)

type Deps struct {
	DB *sql.DB

	Hub   *events.Hub
	Coord *pipeline.Coordinator

	// CfgVal stores config.Config; swapped atomically on save so an
	// in-flight recompute keeps its own immutable snapshot.
	CfgVal *atomic.Value

	UserCfgPath string
	DataDir     string
	LoadCfg     func() (config.Config, error)

	// Resubmit rebuilds the dataset snapshot from the archive under the
	// current config and submits a fresh pipeline request.
	Resubmit func(ctx context.Context) (uint64, error)
}
