package response

import (
	"encoding/json"

	"salesdesk/internal/domain/entities"
)

type KPICardsResponse struct {
	ActiveEngagements   int     `json:"active_engagements"`
	TotalContractValue  float64 `json:"total_contract_value"`
	InactiveEngagements int     `json:"inactive_engagements"`
}

type RevenuePointResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type SharePointResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// MonthlyTrendResponse serializes one trend row flat, the way the dashboard
// chart consumes it: {"month":"Jan","Audit":150,"Tax":0,...}.
type MonthlyTrendResponse struct {
	Month         string
	ByServiceLine map[string]float64
}

func (m MonthlyTrendResponse) MarshalJSON() ([]byte, error) {
	row := make(map[string]interface{}, len(m.ByServiceLine)+1)
	row["month"] = m.Month
	for line, value := range m.ByServiceLine {
		row[line] = value
	}
	return json.Marshal(row)
}

type DashboardStatsResponse struct {
	KPICards             KPICardsResponse       `json:"kpi_cards"`
	RevenueByIndustry    []RevenuePointResponse `json:"revenue_by_industry"`
	ShareByIndustry      []SharePointResponse   `json:"share_by_industry"`
	RevenueByServiceLine []RevenuePointResponse `json:"revenue_by_service_line"`
	ShareByServiceLine   []SharePointResponse   `json:"share_by_service_line"`
	AnnualTrends         []MonthlyTrendResponse `json:"annual_trends"`
}

func FromDashboardStats(s entities.DashboardStats) DashboardStatsResponse {
	trends := make([]MonthlyTrendResponse, 0, len(s.AnnualTrends))
	for _, t := range s.AnnualTrends {
		trends = append(trends, MonthlyTrendResponse{Month: t.Month, ByServiceLine: t.ByServiceLine})
	}
	return DashboardStatsResponse{
		KPICards: KPICardsResponse{
			ActiveEngagements:   s.KPICards.ActiveEngagements,
			TotalContractValue:  s.KPICards.TotalContractValue,
			InactiveEngagements: s.KPICards.InactiveEngagements,
		},
		RevenueByIndustry:    fromRevenuePoints(s.RevenueByIndustry),
		ShareByIndustry:      fromSharePoints(s.ShareByIndustry),
		RevenueByServiceLine: fromRevenuePoints(s.RevenueByServiceLine),
		ShareByServiceLine:   fromSharePoints(s.ShareByServiceLine),
		AnnualTrends:         trends,
	}
}

func fromRevenuePoints(points []entities.RevenuePoint) []RevenuePointResponse {
	out := make([]RevenuePointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, RevenuePointResponse{Name: p.Name, Value: p.Value})
	}
	return out
}

func fromSharePoints(points []entities.SharePoint) []SharePointResponse {
	out := make([]SharePointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, SharePointResponse{Name: p.Name, Value: p.Value})
	}
	return out
}
