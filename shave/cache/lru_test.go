package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shavecost/shavecost/shave"
)

func TestCache_ZeroSizeIsPassThrough(t *testing.T) {
	c := New(0)
	wl := shave.SHAVEWorkload{Name: "sigmoid"}
	c.Add(wl, shave.CyclesInterfaceType(10))
	_, ok := c.Get(wl)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_AddThenGetHits(t *testing.T) {
	c := New(4)
	wl := shave.SHAVEWorkload{Name: "sigmoid"}
	c.Add(wl, shave.CyclesInterfaceType(10))
	got, ok := c.Get(wl)
	assert.True(t, ok)
	assert.Equal(t, shave.CyclesInterfaceType(10), got)
	assert.Equal(t, 1, c.Len())
}

func TestCache_AddNeverOverwritesExistingEntry(t *testing.T) {
	c := New(4)
	wl := shave.SHAVEWorkload{Name: "sigmoid"}
	c.Add(wl, shave.CyclesInterfaceType(10))
	c.Add(wl, shave.CyclesInterfaceType(999))
	got, _ := c.Get(wl)
	assert.Equal(t, shave.CyclesInterfaceType(10), got)
}

func TestCache_PurgeEmptiesAllEntries(t *testing.T) {
	c := New(4)
	c.Add(shave.SHAVEWorkload{Name: "sigmoid"}, shave.CyclesInterfaceType(1))
	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c := New(4)
	_, ok := c.Get(shave.SHAVEWorkload{Name: "unknown"})
	assert.False(t, ok)
}

func TestCache_EvictsLeastRecentlyUsedAtCapacityPlusOne(t *testing.T) {
	c := New(2)
	first := shave.SHAVEWorkload{Name: "sigmoid"}
	second := shave.SHAVEWorkload{Name: "tanh"}
	third := shave.SHAVEWorkload{Name: "relu"}

	c.Add(first, shave.CyclesInterfaceType(1))
	c.Add(second, shave.CyclesInterfaceType(2))
	c.Add(third, shave.CyclesInterfaceType(3)) // capacity+1 distinct insert

	_, ok := c.Get(first)
	assert.False(t, ok, "first inserted key must be evicted once capacity is exceeded")
	assert.Equal(t, 2, c.Len())
}

func TestCache_GetPromotesEntryToMostRecentlyUsed(t *testing.T) {
	c := New(2)
	first := shave.SHAVEWorkload{Name: "sigmoid"}
	second := shave.SHAVEWorkload{Name: "tanh"}
	third := shave.SHAVEWorkload{Name: "relu"}

	c.Add(first, shave.CyclesInterfaceType(1))
	c.Add(second, shave.CyclesInterfaceType(2))
	c.Get(first) // touches first, leaving second as the least recently used
	c.Add(third, shave.CyclesInterfaceType(3))

	_, ok := c.Get(second)
	assert.False(t, ok, "second must be evicted since first was promoted by Get")
	_, ok = c.Get(first)
	assert.True(t, ok)
}

func TestCache_AddOnExistingKeyPromotesItToMostRecentlyUsed(t *testing.T) {
	c := New(2)
	first := shave.SHAVEWorkload{Name: "sigmoid"}
	second := shave.SHAVEWorkload{Name: "tanh"}
	third := shave.SHAVEWorkload{Name: "relu"}

	c.Add(first, shave.CyclesInterfaceType(1))
	c.Add(second, shave.CyclesInterfaceType(2))
	c.Add(first, shave.CyclesInterfaceType(999)) // duplicate add must still promote, not just no-op
	c.Add(third, shave.CyclesInterfaceType(3))

	_, ok := c.Get(second)
	assert.False(t, ok, "second must be evicted since first was promoted by the duplicate Add")
	got, ok := c.Get(first)
	assert.True(t, ok)
	assert.Equal(t, shave.CyclesInterfaceType(1), got)
}
