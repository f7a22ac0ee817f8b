package domain

// Day in milliseconds; all order timestamps are unix millis.
const Day int64 = 86_400_000

// OrderStat is the slice of an order that reporting needs.
type OrderStat struct {
	Status   string  `json:"status"`
	Total    float64 `json:"total"`
	PlacedAt int64   `json:"placedAt"`
}

// Stats summarizes a restaurant's delivered orders: lifetime totals plus
// the trailing seven days against the seven days before them.
type Stats struct {
	TotalOrders  int     `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
	This7Orders  int     `json:"this7Orders"`
	This7Revenue float64 `json:"this7Revenue"`
	Prev7Orders  int     `json:"prev7Orders"`
	Prev7Revenue float64 `json:"prev7Revenue"`
	OrdersDiff   int     `json:"ordersDiff"`
	RevenueDiff  float64 `json:"revenueDiff"`
}

// Compute folds a full order snapshot into Stats. Only delivered orders
// count; cancelled and in-flight orders contribute nothing. The windows
// are [now-7d, now) and [now-14d, now-7d).
func Compute(orders []OrderStat, now int64) Stats {
	weekAgo := now - 7*Day
	twoWeeksAgo := now - 14*Day

	var stats Stats
	for _, order := range orders {
		if order.Status != "delivered" {
			continue
		}
		stats.TotalOrders++
		stats.TotalRevenue += order.Total

		switch {
		case order.PlacedAt >= weekAgo && order.PlacedAt < now:
			stats.This7Orders++
			stats.This7Revenue += order.Total
		case order.PlacedAt >= twoWeeksAgo && order.PlacedAt < weekAgo:
			stats.Prev7Orders++
			stats.Prev7Revenue += order.Total
		}
	}

	stats.OrdersDiff = stats.This7Orders - stats.Prev7Orders
	stats.RevenueDiff = stats.This7Revenue - stats.Prev7Revenue
	return stats
}
