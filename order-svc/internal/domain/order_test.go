package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcTotals(t *testing.T) {
	tests := []struct {
		name     string
		items    []LineItem
		expected Totals
	}{
		{
			name:     "empty_cart_has_no_delivery_fee",
			items:    nil,
			expected: Totals{Subtotal: 0, VAT: 0, Delivery: 0, Total: 0},
		},
		{
			name: "single_item",
			items: []LineItem{
				{ProductID: "p1", Name: "Burger", Price: 100, Quantity: 2},
			},
			expected: Totals{Subtotal: 200, VAT: 30, Delivery: 60, Total: 290},
		},
		{
			name: "multiple_items",
			items: []LineItem{
				{ProductID: "p1", Name: "Burger", Price: 100, Quantity: 2},
				{ProductID: "p2", Name: "Fries", Price: 50, Quantity: 1},
			},
			expected: Totals{Subtotal: 250, VAT: 37.5, Delivery: 60, Total: 347.5},
		},
		{
			name: "negative_price_coerced_to_zero",
			items: []LineItem{
				{ProductID: "p1", Price: -5, Quantity: 3},
				{ProductID: "p2", Price: 40, Quantity: 1},
			},
			expected: Totals{Subtotal: 40, VAT: 6, Delivery: 60, Total: 106},
		},
		{
			name: "nan_price_coerced_to_zero",
			items: []LineItem{
				{ProductID: "p1", Price: math.NaN(), Quantity: 1},
			},
			expected: Totals{Subtotal: 0, VAT: 0, Delivery: 60, Total: 60},
		},
		{
			name: "negative_quantity_coerced_to_zero",
			items: []LineItem{
				{ProductID: "p1", Price: 100, Quantity: -2},
			},
			expected: Totals{Subtotal: 0, VAT: 0, Delivery: 60, Total: 60},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			totals := CalcTotals(testCase.items)
			assert.InDelta(t, testCase.expected.Subtotal, totals.Subtotal, 1e-9)
			assert.InDelta(t, testCase.expected.VAT, totals.VAT, 1e-9)
			assert.InDelta(t, testCase.expected.Delivery, totals.Delivery, 1e-9)
			assert.InDelta(t, testCase.expected.Total, totals.Total, 1e-9)
		})
	}
}

func TestCalcTotals_Identity(t *testing.T) {
	items := []LineItem{
		{Price: 123.45, Quantity: 2},
		{Price: 9.99, Quantity: 7},
	}
	totals := CalcTotals(items)
	assert.InDelta(t, totals.Subtotal+totals.Subtotal*VATRate+DeliveryFee, totals.Total, 1e-9)
}

func TestStatus_ForwardChain(t *testing.T) {
	chain := []Status{StatusPlaced, StatusAccepted, StatusPreparing, StatusReady, StatusDelivered}

	current := StatusPlaced
	for i := 1; i < len(chain); i++ {
		next, ok := current.Next()
		assert.True(t, ok)
		assert.Equal(t, chain[i], next)
		assert.True(t, CanTransition(current, next))
		current = next
	}

	_, ok := StatusDelivered.Next()
	assert.False(t, ok)
	_, ok = StatusCancelled.Next()
	assert.False(t, ok)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPlaced, StatusAccepted, true},
		{StatusPlaced, StatusCancelled, true},
		{StatusAccepted, StatusCancelled, true},
		{StatusPreparing, StatusCancelled, true},
		{StatusReady, StatusCancelled, true},
		{StatusPlaced, StatusDelivered, false},
		{StatusPlaced, StatusPreparing, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusDelivered, StatusAccepted, false},
		{StatusCancelled, StatusPlaced, false},
		{StatusCancelled, StatusCancelled, false},
		{StatusPlaced, Status("bogus"), false},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.allowed, CanTransition(testCase.from, testCase.to),
			"%s -> %s", testCase.from, testCase.to)
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	for _, s := range LiveStatuses() {
		assert.False(t, s.Terminal())
	}
}
