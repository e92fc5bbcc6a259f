package request

// DashboardStatsQuery selects the analytics window. A zero month means the
// whole year; a zero year falls back to the current UTC year.
type DashboardStatsQuery struct {
	Month int `form:"month"`
	Year  int `form:"year"`
}
