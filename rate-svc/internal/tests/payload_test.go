package tests

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealdrop/rate-svc/internal/domain"
)

func TestReviewJSONFieldNames(t *testing.T) {
	review := domain.Review{
		OrderID:      "ord-1",
		RestaurantID: "rest-1",
		CustomerID:   "cust-1",
		Rating:       5,
		Comment:      "great",
		CreatedAt:    1700000700000,
	}

	payload, err := json.Marshal(review)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &decoded))

	for _, field := range []string{"orderId", "restaurantId", "customerId", "rating", "comment", "createdAt"} {
		assert.Contains(t, decoded, field)
	}
}

func TestAggregateJSONFieldNames(t *testing.T) {
	aggregate := domain.Aggregate{RestaurantID: "rest-1", Rating: 4.33, TotalReviews: 3}

	payload, err := json.Marshal(aggregate)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, "rest-1", decoded["restaurantId"])
	assert.Equal(t, 4.33, decoded["rating"])
	assert.Equal(t, float64(3), decoded["totalReviews"])
}

func TestReviewEventFieldNames(t *testing.T) {
	event := domain.ReviewEvent{
		Type:         domain.EventNewReview,
		OrderID:      "ord-1",
		RestaurantID: "rest-1",
		Rating:       5,
	}

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, "new_review", decoded["type"])
	assert.Equal(t, "rest-1", decoded["restaurant_id"])
	assert.Equal(t, "ord-1", decoded["order_id"])
}
