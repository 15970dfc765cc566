package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkimani/safarihub/internal/models"
)

func bookingList(ids ...int64) *List[models.Booking] {
	l := NewList(func(b models.Booking) int64 { return b.ID })
	items := make([]models.Booking, len(ids))
	for i, id := range ids {
		items[i] = models.Booking{ID: id}
	}
	l.Reset(items)
	return l
}

func TestRemove_OptimisticDeleteWithoutRefetch(t *testing.T) {
	l := bookingList(1, 2, 3)

	l.Remove(2)

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(3), items[1].ID)
	assert.Equal(t, 2, l.Len())
}

func TestRemove_UnknownIDIsNoop(t *testing.T) {
	l := bookingList(1, 2)
	l.Remove(99)
	assert.Equal(t, 2, l.Len())
}

func TestReset_ReconcilesOverlay(t *testing.T) {
	l := bookingList(1, 2, 3)
	l.Remove(2)

	// Next authoritative refetch: the backend still knows booking 2
	// (say the delete was raced by another client re-creating it).
	// The snapshot wins; the overlay is gone.
	l.Reset([]models.Booking{{ID: 2}, {ID: 4}})

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, int64(4), items[1].ID)
}

func TestItems_EmptyList(t *testing.T) {
	l := NewList(func(b models.Booking) int64 { return b.ID })
	assert.Empty(t, l.Items())
	assert.Zero(t, l.Len())
}
