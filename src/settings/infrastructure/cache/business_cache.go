package cache

import (
	"context"
	"log"
	"sync"

	"smartpos/src/settings/domain/entity"
	"smartpos/src/settings/domain/port"
)

// BusinessCache cache en memoria del perfil del negocio
// Lo consume el armado del recibo en cada checkout; se refresca al guardar
// la configuración, no por TTL
type BusinessCache struct {
	name string
	mu   sync.RWMutex
}

// NewBusinessCache crea el cache con el nombre por defecto
func NewBusinessCache() *BusinessCache {
	return &BusinessCache{name: entity.DefaultBusinessName}
}

// LoadFromRepo carga el perfil persistido al arrancar
func (c *BusinessCache) LoadFromRepo(ctx context.Context, repo port.BusinessRepository) error {
	log.Println("🔄 Loading business details into cache...")

	details, err := repo.Get(ctx)
	if err != nil {
		log.Printf("⚠️  Warning: Could not load business details: %v", err)
		log.Println("⚠️  Continuing with default business name")
		return err
	}

	c.Set(details.BusinessName)
	log.Printf("✅ Business cache loaded: %s", details.BusinessName)
	return nil
}

// Set actualiza el nombre cacheado
func (c *BusinessCache) Set(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if name != "" {
		c.name = name
	}
}

// BusinessName retorna el nombre vigente ("Smart POS" si nunca se configuró)
func (c *BusinessCache) BusinessName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}
