package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/addressdata/internal/config"
	"github.com/sells-group/addressdata/internal/fetcher"
	"github.com/sells-group/addressdata/internal/regiondata"
	"github.com/sells-group/addressdata/internal/storage"
	"github.com/sells-group/addressdata/internal/supply"
)

// supplierEnv bundles the supplier with its closable storage.
type supplierEnv struct {
	Supplier *supply.Supplier
	store    storage.Storage
}

func (e *supplierEnv) Close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			zap.L().Warn("close storage", zap.Error(err))
		}
	}
}

// initSupplier builds the fetch stack from config: the embedded dataset in
// offline mode, otherwise the HTTP fetcher layered over the configured
// blob store.
func initSupplier(ctx context.Context, cfg *config.Config, offline bool) (*supplierEnv, error) {
	if offline {
		return &supplierEnv{
			Supplier: supply.NewSupplier(fetcher.NewStaticFetcher(regiondata.Map())),
		}, nil
	}

	var f fetcher.Fetcher = fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		BaseURL:    cfg.Source.BaseURL,
		UserAgent:  cfg.Source.UserAgent,
		Timeout:    cfg.Source.Timeout(),
		MaxRetries: cfg.Source.MaxRetries,
		RateLimit:  rateLimit(cfg.Source.RateLimit),
		Burst:      cfg.Source.Burst,
	})

	store, err := initStorage(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	if store != nil {
		f = fetcher.NewCachingFetcher(f, store)
	}

	return &supplierEnv{Supplier: supply.NewSupplier(f), store: store}, nil
}

func rateLimit(v float64) rate.Limit {
	if v <= 0 {
		return rate.Inf
	}
	return rate.Limit(v)
}

func initStorage(ctx context.Context, cfg config.StorageConfig) (storage.Storage, error) {
	switch cfg.Driver {
	case "none", "":
		return nil, nil
	case "sqlite":
		st, err := storage.NewSQLite(cfg.Path)
		if err != nil {
			return nil, err
		}
		if err := st.Migrate(ctx); err != nil {
			st.Close()
			return nil, err
		}
		return st, nil
	case "postgres":
		st, err := storage.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := st.Migrate(ctx); err != nil {
			st.Close()
			return nil, err
		}
		return st, nil
	default:
		return nil, eris.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
