package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute_WindowsAndDiffs(t *testing.T) {
	now := int64(100 * Day)

	orders := []OrderStat{
		{Status: "delivered", Total: 100, PlacedAt: now - 1*Day},  // this week
		{Status: "delivered", Total: 200, PlacedAt: now - 8*Day},  // previous week
		{Status: "delivered", Total: 300, PlacedAt: now - 20*Day}, // older
	}

	stats := Compute(orders, now)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 600.0, stats.TotalRevenue)
	assert.Equal(t, 1, stats.This7Orders)
	assert.Equal(t, 100.0, stats.This7Revenue)
	assert.Equal(t, 1, stats.Prev7Orders)
	assert.Equal(t, 200.0, stats.Prev7Revenue)
	assert.Equal(t, 0, stats.OrdersDiff)
	assert.Equal(t, -100.0, stats.RevenueDiff)
}

func TestCompute_OnlyDeliveredCounts(t *testing.T) {
	now := int64(100 * Day)

	orders := []OrderStat{
		{Status: "delivered", Total: 100, PlacedAt: now - 1*Day},
		{Status: "cancel", Total: 999, PlacedAt: now - 1*Day},
		{Status: "placed", Total: 50, PlacedAt: now - 2*Day},
		{Status: "preparing", Total: 75, PlacedAt: now - 3*Day},
	}

	stats := Compute(orders, now)

	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, 100.0, stats.TotalRevenue)
	assert.Equal(t, 1, stats.This7Orders)
}

func TestCompute_WindowBoundaries(t *testing.T) {
	now := int64(100 * Day)

	orders := []OrderStat{
		{Status: "delivered", Total: 10, PlacedAt: now - 7*Day},      // first ms of this window
		{Status: "delivered", Total: 20, PlacedAt: now - 7*Day - 1},  // last ms of prev window
		{Status: "delivered", Total: 30, PlacedAt: now - 14*Day},     // first ms of prev window
		{Status: "delivered", Total: 40, PlacedAt: now - 14*Day - 1}, // older than both windows
		{Status: "delivered", Total: 50, PlacedAt: now},              // now itself is excluded
	}

	stats := Compute(orders, now)

	assert.Equal(t, 5, stats.TotalOrders)
	assert.Equal(t, 1, stats.This7Orders)
	assert.Equal(t, 10.0, stats.This7Revenue)
	assert.Equal(t, 2, stats.Prev7Orders)
	assert.Equal(t, 50.0, stats.Prev7Revenue)
}

func TestCompute_Empty(t *testing.T) {
	stats := Compute(nil, 100*Day)
	assert.Equal(t, Stats{}, stats)
}
