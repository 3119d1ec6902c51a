package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Ayoub94x/Cestini-esa-configurator/observability"
)

// notifyChannel is the Postgres channel the admin editor pings after any
// write to products or product_options.
const notifyChannel = "catalog_changed"

// PGSource loads catalog snapshots from Postgres and keeps a Store fresh.
// The tables mirror the admin editor's schema: products holds one row per
// model × size, product_options one row per add-on.
type PGSource struct {
	db  *sql.DB
	dsn string
	log observability.Logger
}

// NewPGSource opens a connection pool against the given DSN.
func NewPGSource(dsn string, log observability.Logger) (*PGSource, error) {
	if log == nil {
		log = observability.NopLogger{}
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}
	return &PGSource{db: db, dsn: dsn, log: log}, nil
}

// Close releases the underlying pool.
func (s *PGSource) Close() error { return s.db.Close() }

// Load reads the full catalog and returns it as a fresh snapshot.
func (s *PGSource) Load(ctx context.Context) (*Snapshot, error) {
	bins, models, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	options, err := s.loadOptions(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Models: models, Bins: bins, Options: options}, nil
}

func (s *PGSource) loadProducts(ctx context.Context) ([]Bin, []BinModel, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT model_id, size, name, base_price, prod_days, base_image, max_per_truck
		FROM products
		WHERE is_active = TRUE
		ORDER BY model_id, size`)
	if err != nil {
		return nil, nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var bins []Bin
	var models []BinModel
	seen := map[string]bool{}
	for rows.Next() {
		var b Bin
		var size string
		if err := rows.Scan(&b.ModelID, &size, &b.Name, &b.BasePrice, &b.ProdDays, &b.BaseImage, &b.MaxPerTruck); err != nil {
			return nil, nil, fmt.Errorf("scan product row: %w", err)
		}
		b.Size = Size(size)
		bins = append(bins, b)
		if !seen[b.ModelID] {
			seen[b.ModelID] = true
			models = append(models, BinModel{ID: b.ModelID, Name: b.Name, Image: b.BaseImage})
		}
	}
	return bins, models, rows.Err()
}

func (s *PGSource) loadOptions(ctx context.Context) ([]Option, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT code, label, price, is_percentage,
		       COALESCE(array_to_string(available_for, ','), '')
		FROM product_options
		ORDER BY sort_order, code`)
	if err != nil {
		return nil, fmt.Errorf("query product options: %w", err)
	}
	defer rows.Close()

	var options []Option
	for rows.Next() {
		var o Option
		var availableCSV string
		if err := rows.Scan(&o.Code, &o.Label, &o.Price, &o.Percentage, &availableCSV); err != nil {
			return nil, fmt.Errorf("scan option row: %w", err)
		}
		if availableCSV != "" {
			for _, s := range strings.Split(availableCSV, ",") {
				o.AvailableFor = append(o.AvailableFor, Size(s))
			}
		}
		options = append(options, o)
	}
	return options, rows.Err()
}

// Watch loads the catalog into the store, then blocks listening for change
// notifications and reloads after each one. It returns when ctx is done or
// the listening connection fails. Reload failures keep the previous
// snapshot live: a broken publish must not blank the catalog.
func (s *PGSource) Watch(ctx context.Context, store *Store) error {
	snap, err := s.Load(ctx)
	if err != nil {
		return err
	}
	store.Replace(snap)
	s.log.Info("catalog loaded",
		observability.Int("bins", len(snap.Bins)),
		observability.Int("options", len(snap.Options)))

	conn, err := pgx.Connect(ctx, s.dsn)
	if err != nil {
		return fmt.Errorf("connect for catalog notifications: %w", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		return fmt.Errorf("listen on %s: %w", notifyChannel, err)
	}

	reloads := 0
	for {
		if _, err := conn.WaitForNotification(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("wait for catalog notification: %w", err)
		}
		snap, err := s.Load(ctx)
		if err != nil {
			s.log.Warn("catalog reload failed", observability.Error("err", err))
			continue
		}
		store.Replace(snap)
		reloads++
		s.log.Info("catalog reloaded",
			observability.Int("bins", len(snap.Bins)),
			observability.Int("options", len(snap.Options)),
			observability.Int(observability.MetricCatalogReload, reloads))
	}
}
