// Package seed loads CSV fixtures into the analytics tables.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/shoppulse/internal/logger"
	"github.com/guttosm/shoppulse/internal/storage"
)

const (
	ProductsFile   = "products.csv"
	SalesFile      = "sales.csv"
	ActivitiesFile = "user_activities.csv"

	defaultBatchSize = 5000
)

// Repositories are the write targets of the loader.
type Repositories struct {
	Products   storage.ProductRepository
	Sales      storage.SaleRepository
	Activities storage.ActivityRepository
	Log        storage.SeedLogRepository
}

// repoCtor is an indirection for creating the repositories; tests override it.
var repoCtor = func(db *sql.DB) Repositories {
	return Repositories{
		Products:   storage.NewProductRepository(db),
		Sales:      storage.NewSaleRepository(db),
		Activities: storage.NewActivityRepository(db),
		Log:        storage.NewSeedLogRepository(db),
	}
}

// Options control a LoadDirectory run.
type Options struct {
	Parallel  int  // files loaded at once after products; clamped to 1..2
	Force     bool // truncate every table and reload all files
	BatchSize int  // rows per COPY; 0 uses 5000
}

type fixture struct {
	name string
	load func(ctx context.Context, path string, repos Repositories, batch int) (int, error)
}

func log() *zerolog.Logger { return logger.Component("seed") }

var (
	productsFixture = fixture{name: ProductsFile, load: func(ctx context.Context, path string, repos Repositories, batch int) (int, error) {
		return loadFile(ctx, path, productHeaders, parseProduct, batch, repos.Products.InsertProductsBatch)
	}}
	// Sales and activities reference products, so they load after it.
	dependentFixtures = []fixture{
		{name: SalesFile, load: func(ctx context.Context, path string, repos Repositories, batch int) (int, error) {
			return loadFile(ctx, path, saleHeaders, parseSale, batch, repos.Sales.InsertSalesBatch)
		}},
		{name: ActivitiesFile, load: func(ctx context.Context, path string, repos Repositories, batch int) (int, error) {
			return loadFile(ctx, path, activityHeaders, parseActivity, batch, repos.Activities.InsertActivitiesBatch)
		}},
	}
)

// LoadDirectory loads products.csv, sales.csv and user_activities.csv from dir.
//
// Behavior:
//   - All three files must exist before anything is written.
//   - opts.Force truncates every table and the seed log first.
//   - products.csv loads first; the other two files then load concurrently,
//     at most opts.Parallel at a time.
//   - Files already recorded in the seed log are skipped.
//   - Rows are flushed in batches of opts.BatchSize (5000 when unset).
//
// Parameters:
//   - ctx: cancels in-flight loads.
//   - dir: directory holding the fixtures.
//   - db: target database.
//   - opts: concurrency, force and batch size.
//
// Returns the first error; sibling loads are cancelled.
//
// Example:
//
//	err := seed.LoadDirectory(ctx, "./data/seed", db, seed.Options{Parallel: 2})
func LoadDirectory(ctx context.Context, dir string, db *sql.DB, opts Options) error {
	repos := repoCtor(db)

	batch := opts.BatchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}

	var missing []string
	for _, name := range []string{ProductsFile, SalesFile, ActivitiesFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, name)
				continue
			}
			return fmt.Errorf("stat failed for %s: %w", name, err)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required files: %s", strings.Join(missing, ", "))
	}

	if opts.Force {
		if err := repos.Log.Truncate(ctx); err != nil {
			return fmt.Errorf("truncate tables: %w", err)
		}
		log().Warn().Msg("seed: tables truncated (force)")
	}

	log().Info().Str("dir", dir).Bool("force", opts.Force).Msg("seed start")

	if err := loadOne(ctx, dir, repos, productsFixture, batch); err != nil {
		return err
	}

	maxParallel := opts.Parallel
	if maxParallel < 1 {
		maxParallel = 1
	}
	if maxParallel > len(dependentFixtures) {
		maxParallel = len(dependentFixtures)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for _, fx := range dependentFixtures {
		g.Go(func() error { return loadOne(gctx, dir, repos, fx, batch) })
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log().Info().Str("dir", dir).Msg("seed done")
	return nil
}

func loadOne(ctx context.Context, dir string, repos Repositories, fx fixture, batch int) error {
	start := time.Now()
	path := filepath.Join(dir, fx.name)

	done, err := repos.Log.HasSeed(ctx, fx.name)
	if err != nil {
		return fmt.Errorf("file %s: check seed log: %w", fx.name, err)
	}
	if done {
		log().Info().Str("file", fx.name).Bool("skipped", true).Msg("already seeded")
		return nil
	}

	rows, err := fx.load(ctx, path, repos, batch)
	if err != nil {
		log().Error().Str("file", fx.name).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
		return fmt.Errorf("file %s: %w", fx.name, err)
	}
	if err := repos.Log.UpsertSeedLog(ctx, fx.name, rows); err != nil {
		return fmt.Errorf("file %s: upsert seed log: %w", fx.name, err)
	}

	log().Info().Str("file", fx.name).Int("rows", rows).Dur("elapsed", time.Since(start)).Msg("file done")
	return nil
}
