package entities

// Dashboard aggregates. These are computed read models, never persisted.
//
// The KPI cards and the by-industry / by-service-line series honor the
// requested month/year window; AnnualTrends always spans the full year
// (Jan..Dec) regardless of the month filter, with every known service line
// present in every month (zero-filled).

// KPICards are the headline numbers: engagement counts by activity plus the
// summed contract value of every order in the window.
type KPICards struct {
	ActiveEngagements   int     `json:"active_engagements"`
	TotalContractValue  float64 `json:"total_contract_value"`
	InactiveEngagements int     `json:"inactive_engagements"`
}

// RevenuePoint is one slice of a revenue breakdown (summed money).
type RevenuePoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// SharePoint is one slice of a volume breakdown (counted rows).
type SharePoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// MonthlyTrend is one month of service-line revenue for the annual trend chart.
// Month is the English three-letter abbreviation ("Jan".."Dec").
type MonthlyTrend struct {
	Month         string
	ByServiceLine map[string]float64
}

// DashboardStats is the full analytics payload for the dashboard endpoint.
type DashboardStats struct {
	KPICards             KPICards
	RevenueByIndustry    []RevenuePoint
	ShareByIndustry      []SharePoint
	RevenueByServiceLine []RevenuePoint
	ShareByServiceLine   []SharePoint
	AnnualTrends         []MonthlyTrend
}
