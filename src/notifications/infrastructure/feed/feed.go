package feed

import (
	"sync"

	"smartpos/src/notifications/domain/entity"
)

// Feed lista acotada de notificaciones en memoria
// Ring buffer con expulsión explícita del más viejo: una sesión larga no puede
// acumular entradas sin límite
type Feed struct {
	entries  []entity.Notification
	capacity int
	unread   int
	mu       sync.RWMutex
}

// NewFeed crea un feed con la capacidad dada (mínimo 1)
func NewFeed(capacity int) *Feed {
	if capacity < 1 {
		capacity = 1
	}
	return &Feed{capacity: capacity}
}

// Push agrega una notificación al frente, expulsando la más vieja si el feed está lleno
func (f *Feed) Push(n entity.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = append([]entity.Notification{n}, f.entries...)
	if len(f.entries) > f.capacity {
		f.entries = f.entries[:f.capacity]
	}
	if f.unread < f.capacity {
		f.unread++
	}
}

// List retorna las notificaciones, más recientes primero
func (f *Feed) List() []entity.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]entity.Notification, len(f.entries))
	copy(out, f.entries)
	return out
}

// UnreadCount retorna cuántas entradas no fueron vistas
func (f *Feed) UnreadCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.unread
}

// MarkAllRead resetea el contador de no leídas
func (f *Feed) MarkAllRead() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unread = 0
}
