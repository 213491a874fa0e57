package port

import (
	"context"

	"smartpos/src/settings/domain/entity"
)

// BusinessRepository define los métodos para el perfil del negocio
// Upsert: un solo registro por negocio, se crea o reemplaza
type BusinessRepository interface {
	Get(ctx context.Context) (*entity.BusinessDetails, error)
	Upsert(ctx context.Context, details *entity.BusinessDetails) error
}
