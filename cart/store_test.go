package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMergesExistingLine(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	store.Add(1, "HP Pavilion 15", 52999, "/img/pavilion.jpg", 1)
	store.Add(1, "HP Pavilion 15", 52999, "/img/pavilion.jpg", 2)

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 3, store.Count())
}

func TestAddClampsQuantityAndFillsPlaceholder(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	store.Add(2, "Logitech MX Keys", 8495, "", 0)

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, "/placeholder.png", lines[0].ImageURL)
}

func TestUpdateQuantityRemovesAtZeroOrBelow(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	store.Add(1, "HP Pavilion 15", 52999, "/img/pavilion.jpg", 2)
	store.Add(2, "Logitech MX Keys", 8495, "/img/mxkeys.jpg", 1)

	store.UpdateQuantity(1, -99)

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].ProductID)

	store.UpdateQuantity(2, -1)
	assert.Empty(t, store.Lines())
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	store.Add(1, "HP Pavilion 15", 52999, "/img/pavilion.jpg", 1)

	store.UpdateQuantity(42, 5)

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestRemoveDropsWholeLine(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	store.Add(1, "HP Pavilion 15", 52999, "/img/pavilion.jpg", 4)

	store.Remove(1)

	assert.Empty(t, store.Lines())
	assert.Zero(t, store.Count())
}

func TestTotalUsesCachedPrices(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	store.Add(1, "HP Pavilion 15", 52999, "/img/pavilion.jpg", 1)
	store.Add(2, "Logitech MX Keys", 8495, "/img/mxkeys.jpg", 2)

	assert.InDelta(t, 69989, store.Total(), 0.001)
}

func TestLoadSurvivesRestart(t *testing.T) {
	storage := NewMemoryStorage()

	first := NewStore(storage)
	first.Add(1, "HP Pavilion 15", 52999, "/img/pavilion.jpg", 2)

	second := NewStore(storage)
	lines := second.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "HP Pavilion 15", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestLoadCorruptStateStartsEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Write("bnc_cart", []byte("{not json")))

	store := NewStore(storage)

	assert.Empty(t, store.Lines())

	// A fresh add must still persist cleanly over the bad state.
	store.Add(1, "HP Pavilion 15", 52999, "/img/pavilion.jpg", 1)
	assert.Equal(t, 1, NewStore(storage).Count())
}

func TestCartIDStableUntilReset(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage)

	first := store.CartID()
	require.NotEmpty(t, first)
	assert.Equal(t, first, store.CartID())
	assert.Equal(t, first, NewStore(storage).CartID())

	store.ResetCartID()
	assert.NotEqual(t, first, store.CartID())
}

func TestSubscribeNotifiesOnMutations(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	var events []Event
	unsubscribe := store.Subscribe(func(e Event) {
		events = append(events, e)
	})

	store.Add(1, "HP Pavilion 15", 52999, "/img/pavilion.jpg", 2)
	store.UpdateQuantity(1, 1)
	store.Clear()

	require.Len(t, events, 3)
	assert.Equal(t, 2, events[0].Count)
	assert.Equal(t, 3, events[1].Count)
	assert.Zero(t, events[2].Count)
	assert.Empty(t, events[2].Lines)

	unsubscribe()
	store.Add(2, "Logitech MX Keys", 8495, "/img/mxkeys.jpg", 1)
	assert.Len(t, events, 3)
}

func TestFileStorageRoundTrip(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	_, ok, err := storage.Read("bnc_cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, storage.Write("bnc_cart", []byte(`[]`)))
	data, ok, err := storage.Read("bnc_cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(data))

	require.NoError(t, storage.Delete("bnc_cart"))
	require.NoError(t, storage.Delete("bnc_cart"))
	_, ok, err = storage.Read("bnc_cart")
	require.NoError(t, err)
	assert.False(t, ok)
}
