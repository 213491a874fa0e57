package listener

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"smartpos/src/notifications/domain/entity"
	"smartpos/src/notifications/infrastructure/feed"

	"github.com/lib/pq"
)

// inventoryEvent payload JSON emitido por los triggers de la tabla products
// en el canal inventory_events
type inventoryEvent struct {
	Event         string `json:"event"` // INSERT | UPDATE
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	StockQuantity int    `json:"stock_quantity"`
}

// InventoryListener consume eventos de inventario vía LISTEN/NOTIFY y los
// convierte en notificaciones del panel
// La reconexión la maneja pq.Listener; el goroutine termina al cancelar el ctx
type InventoryListener struct {
	listener          *pq.Listener
	feed              *feed.Feed
	lowStockThreshold int
}

// NewInventoryListener crea el listener sobre el canal inventory_events
func NewInventoryListener(connStr string, notifFeed *feed.Feed, lowStockThreshold int) *InventoryListener {
	pqListener := pq.NewListener(connStr, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.Printf("⚠️  Inventory listener event %d: %v", ev, err)
		}
	})

	return &InventoryListener{
		listener:          pqListener,
		feed:              notifFeed,
		lowStockThreshold: lowStockThreshold,
	}
}

// Start suscribe al canal y procesa eventos hasta que el contexto se cancele
func (l *InventoryListener) Start(ctx context.Context) error {
	if err := l.listener.Listen("inventory_events"); err != nil {
		return fmt.Errorf("error listening on inventory_events: %w", err)
	}

	log.Println("✅ Inventory listener subscribed to channel inventory_events")

	go func() {
		defer l.listener.Close()
		for {
			select {
			case <-ctx.Done():
				log.Println("🔄 Inventory listener stopped")
				return
			case notification := <-l.listener.Notify:
				if notification == nil {
					// Reconexión de pq.Listener; se pueden haber perdido eventos
					continue
				}
				l.handle(notification.Extra)
			case <-time.After(90 * time.Second):
				// Ping periódico para detectar conexiones muertas
				if err := l.listener.Ping(); err != nil {
					log.Printf("⚠️  Inventory listener ping failed: %v", err)
				}
			}
		}
	}()

	return nil
}

// handle parsea el payload y publica la notificación que corresponda
func (l *InventoryListener) handle(payload string) {
	var event inventoryEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		log.Printf("⚠️  Invalid inventory event payload: %v", err)
		return
	}

	switch {
	case event.Event == "INSERT":
		l.feed.Push(entity.NewNotification(
			"New Product Added",
			fmt.Sprintf("%s has been added to inventory.", event.Name),
			entity.TypeNewProduct,
		))
	case event.Event == "UPDATE" && event.StockQuantity <= l.lowStockThreshold:
		l.feed.Push(entity.NewNotification(
			"Low Stock Alert!",
			fmt.Sprintf("%s is running low (%d left)", event.Name, event.StockQuantity),
			entity.TypeLowStock,
		))
	}
}
