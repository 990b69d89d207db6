package models

// TypeBreakdown is the per-order-type slice of a daily report.
type TypeBreakdown struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// ReportItem tallies one product across every completed order of the day.
type ReportItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// DailyReport is a computed view over CompletedOrder for one tenant and one
// day. It is never persisted; the same day can be regenerated at any time.
type DailyReport struct {
	BusinessID   string                   `json:"businessId"`
	Date         string                   `json:"date"`
	TotalOrders  int                      `json:"totalOrders"`
	TotalSales   float64                  `json:"totalSales"`
	OrdersByType map[string]TypeBreakdown `json:"ordersByType"`
	TopItems     []ReportItem             `json:"topItems"`
}
