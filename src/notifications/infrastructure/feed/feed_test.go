package feed

import (
	"fmt"
	"testing"

	"smartpos/src/notifications/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_NewestFirst(t *testing.T) {
	f := NewFeed(10)

	f.Push(entity.NewNotification("Primera", "m1", entity.TypeNewProduct))
	f.Push(entity.NewNotification("Segunda", "m2", entity.TypeLowStock))

	list := f.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Segunda", list[0].Title)
	assert.Equal(t, "Primera", list[1].Title)
}

func TestFeed_EvictsOldestAtCapacity(t *testing.T) {
	f := NewFeed(3)

	for i := 1; i <= 5; i++ {
		f.Push(entity.NewNotification(fmt.Sprintf("N%d", i), "m", entity.TypeLowStock))
	}

	list := f.List()
	require.Len(t, list, 3, "el feed nunca supera su capacidad")
	assert.Equal(t, "N5", list[0].Title)
	assert.Equal(t, "N4", list[1].Title)
	assert.Equal(t, "N3", list[2].Title)
}

func TestFeed_UnreadCappedAtCapacity(t *testing.T) {
	f := NewFeed(3)

	for i := 0; i < 5; i++ {
		f.Push(entity.NewNotification("N", "m", entity.TypeLowStock))
	}

	assert.Equal(t, 3, f.UnreadCount(), "no puede haber más no leídas que entradas")
}

func TestFeed_MarkAllRead(t *testing.T) {
	f := NewFeed(10)
	f.Push(entity.NewNotification("N", "m", entity.TypeNewProduct))
	require.Equal(t, 1, f.UnreadCount())

	f.MarkAllRead()

	assert.Equal(t, 0, f.UnreadCount())
	assert.Len(t, f.List(), 1, "marcar leídas no borra las entradas")
}

func TestFeed_ListReturnsCopy(t *testing.T) {
	f := NewFeed(10)
	f.Push(entity.NewNotification("Original", "m", entity.TypeNewProduct))

	list := f.List()
	list[0].Title = "Mutado"

	assert.Equal(t, "Original", f.List()[0].Title)
}

func TestFeed_MinimumCapacityIsOne(t *testing.T) {
	f := NewFeed(0)

	f.Push(entity.NewNotification("A", "m", entity.TypeNewProduct))
	f.Push(entity.NewNotification("B", "m", entity.TypeNewProduct))

	list := f.List()
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0].Title)
}
