// Package store provides the Postgres-backed district source, used by
// deployments that keep the ward dataset in a database instead of a
// GeoJSON file. The loaded snapshot is handed to ward.FeatureStore
// wholesale, same as the file source.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/floodhub/wardwatch/internal/ward"
)

type PostgresSource struct {
	pool *pgxpool.Pool
}

func NewPostgresSource(ctx context.Context, databaseURL string) (*PostgresSource, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresSource{pool: pool}, nil
}

func (s *PostgresSource) Close() error {
	s.pool.Close()
	return nil
}

// Load reads the full ward table. NULL numeric columns coalesce to 0 in SQL
// so the snapshot carries the same never-null guarantee as the file source.
func (s *PostgresSource) Load(ctx context.Context) ([]ward.DistrictRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT ward_id, ward_name, ward_no, assembly,
			COALESCE(population, 0), COALESCE(drain_score, 0),
			COALESCE(drain_density, 0), COALESCE(composite_risk, 0),
			COALESCE(avg_rainfall, 0),
			geometry,
			COALESCE(min_lat, 0), COALESCE(min_lng, 0),
			COALESCE(max_lat, 0), COALESCE(max_lng, 0)
		FROM wards
		ORDER BY ward_id`)
	if err != nil {
		return nil, fmt.Errorf("query wards: %w", err)
	}
	defer rows.Close()

	var records []ward.DistrictRecord
	for rows.Next() {
		var r ward.DistrictRecord
		err := rows.Scan(
			&r.ID, &r.Name, &r.WardNo, &r.Assembly,
			&r.Population, &r.DrainScore, &r.DrainDensity, &r.CompositeRisk, &r.AvgRainfall,
			&r.Geometry,
			&r.Bounds.MinLat, &r.Bounds.MinLng, &r.Bounds.MaxLat, &r.Bounds.MaxLng,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ward row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read ward rows: %w", err)
	}
	return records, nil
}
