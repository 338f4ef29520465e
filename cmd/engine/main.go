package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"jobtools-engine/internal/config"
	"jobtools-engine/internal/events"
	"jobtools-engine/internal/httpapi"
	"jobtools-engine/internal/pipeline"
	"jobtools-engine/internal/scheduler"
	"jobtools-engine/internal/store"
)

func main() {
	// Engine data dir: use env if provided (the UI shell can pass one).
	dataDir := os.Getenv("JOBTOOLS_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	var cfgVal atomic.Value // stores config.Config, always the normalized form
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		normalized, _ := config.NormalizeAndValidate(cfg)
		return normalized, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if _, vr := config.NormalizeAndValidate(cfg); !vr.OK() {
		log.Fatalf("config invalid (%s): %v", userCfgPath, vr.Errors)
	}
	cfgVal.Store(cfg)

	dbPath := filepath.Join(dataDir, "jobtools.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	hub := events.NewHub()

	coord := pipeline.New(cfg.Pipeline.ChunkSize, cfg.Pipeline.Workers)
	defer coord.Close()
	coord.OnResult(func(res pipeline.Result) {
		hub.Publish(events.ResultReady(res.Seq, len(res.Records)))
	})

	resubmit := func(ctx context.Context) (uint64, error) {
		cur := cfgVal.Load().(config.Config)
		records, err := store.ListRecords(ctx, db.Pool, store.ListOpts{
			WindowDays: cur.Dataset.WindowDays,
			Favorites:  cur.Dataset.Favorites,
		})
		if err != nil {
			return 0, err
		}
		fcfg, err := config.CompileFilter(cur.Filter)
		if err != nil {
			return 0, err
		}
		scfg, err := config.CompileSort(cur.Sort)
		if err != nil {
			return 0, err
		}
		return coord.Submit(records, fcfg, scfg), nil
	}

	if seq, err := resubmit(context.Background()); err != nil {
		log.Printf("level=warn msg=\"initial recompute failed\" err=%v", err)
	} else {
		log.Printf("level=info msg=\"initial recompute submitted\" seq=%d", seq)
	}

	// Refresh lane: re-list the active window when the archive changes
	// (an external collector writes rows into the same sqlite file).
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		var mu sync.Mutex
		var last store.Stats
		interval := time.Duration(cfg.Dataset.RefreshSeconds) * time.Second
		scheduler.Every(ctx, interval, "refresh", func(ctx context.Context) error {
			st, err := store.ArchiveStats(ctx, db.Pool)
			if err != nil {
				return err
			}
			mu.Lock()
			changed := st != last
			last = st
			mu.Unlock()
			if !changed {
				return nil
			}
			hub.Publish(events.MakeEvent("", events.TypeDatasetUpdated, 1, map[string]any{"count": st.Count}))
			_, err = resubmit(ctx)
			return err
		})
	}()

	mux := httpapi.NewMux(httpapi.Deps{
		DB:          db.Pool,
		Hub:         hub,
		Coord:       coord,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		DataDir:     dataDir,
		LoadCfg:     loadCfg,
		Resubmit:    resubmit,
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.AccessLog,
		httpapi.Recover,
		httpapi.Cors,
		httpapi.MutationRateLimit(20, 40),
	)

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (db=%s)", addr, dbPath)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}
