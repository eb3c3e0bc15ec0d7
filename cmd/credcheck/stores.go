package main

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/credcheck/internal/adapter/driven/postgres"
	sqliteadapter "github.com/ericfisherdev/credcheck/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/credcheck/internal/adapter/driven/static"
	"github.com/ericfisherdev/credcheck/internal/application"
	"github.com/ericfisherdev/credcheck/internal/config"
	"github.com/ericfisherdev/credcheck/internal/domain/model"
	"github.com/ericfisherdev/credcheck/internal/domain/port/driven"
	"github.com/ericfisherdev/credcheck/internal/metrics"
)

// newCredentialStore builds the configured CredentialStore, instrumented with
// lookup metrics. Real backends hold only configuration; nothing is opened here.
func newCredentialStore(cfg *config.Config) (driven.CredentialStore, error) {
	var store driven.CredentialStore
	switch cfg.Backend {
	case model.BackendSQLite:
		store = sqliteadapter.NewCredentialRepo(cfg.DBPath)
	case model.BackendPostgres:
		store = postgres.NewCredentialRepo(cfg.PostgresDSN)
	case model.BackendStatic:
		users, err := static.Parse(cfg.StaticUsers)
		if err != nil {
			return nil, fmt.Errorf("CREDCHECK_STATIC_USERS: %w", err)
		}
		store = users
	default:
		return nil, fmt.Errorf("unsupported backend %q", cfg.Backend)
	}
	return metrics.NewInstrumentedStore(store, cfg.Backend), nil
}

// newVerifier wires a CredentialVerifier to the configured store.
func (a *app) newVerifier() (*application.CredentialVerifier, error) {
	store, err := newCredentialStore(a.cfg)
	if err != nil {
		return nil, err
	}
	return application.NewCredentialVerifier(store, a.logger), nil
}

// openUserStore opens an administrative UserStore for the configured backend
// with its schema applied. The returned close func releases the connections.
func (a *app) openUserStore(ctx context.Context) (driven.UserStore, func(), error) {
	switch a.cfg.Backend {
	case model.BackendSQLite:
		db, err := sqliteadapter.NewDB(ctx, a.cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		closeFn := func() {
			if err := db.Close(); err != nil {
				a.logger.Error("error closing database", "error", err)
			}
		}
		return sqliteadapter.NewUserRepo(db), closeFn, nil

	case model.BackendPostgres:
		pool, err := postgres.NewPool(ctx, a.cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewUserRepo(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("backend %q is read-only; users are set with CREDCHECK_STATIC_USERS", a.cfg.Backend)
	}
}
