package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"smartpos/src/settings/domain/entity"
	"smartpos/src/settings/domain/port"
)

// ErrBusinessNotConfigured todavía no se guardó ningún perfil
var ErrBusinessNotConfigured = errors.New("business details not configured")

// BusinessPostgresRepository implementa BusinessRepository usando PostgreSQL
type BusinessPostgresRepository struct {
	db *sql.DB
}

// NewBusinessPostgresRepository crea una nueva instancia del repositorio
func NewBusinessPostgresRepository(db *sql.DB) port.BusinessRepository {
	return &BusinessPostgresRepository{db: db}
}

// Get retorna el perfil del negocio (un solo registro)
func (r *BusinessPostgresRepository) Get(ctx context.Context) (*entity.BusinessDetails, error) {
	query := `SELECT id, business_name FROM business_details LIMIT 1`

	details := &entity.BusinessDetails{}
	err := r.db.QueryRowContext(ctx, query).Scan(&details.ID, &details.BusinessName)
	if err == sql.ErrNoRows {
		return nil, ErrBusinessNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("error querying business_details: %w", err)
	}
	return details, nil
}

// Upsert crea o reemplaza el perfil del negocio
func (r *BusinessPostgresRepository) Upsert(ctx context.Context, details *entity.BusinessDetails) error {
	query := `
		INSERT INTO business_details (id, business_name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET business_name = EXCLUDED.business_name
	`

	if _, err := r.db.ExecContext(ctx, query, details.ID, details.BusinessName); err != nil {
		return fmt.Errorf("error upserting business_details: %w", err)
	}
	return nil
}
