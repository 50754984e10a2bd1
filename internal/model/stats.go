package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	TotalOrders  int64
	TodayOrders  int64
	TotalRevenue decimal.Decimal
	TodayRevenue decimal.Decimal
}

type dashboardStatsJSON struct {
	TotalOrders  json.Number `json:"totalOrders"`
	TodayOrders  json.Number `json:"todayOrders"`
	TotalRevenue json.Number `json:"totalRevenue"`
	TodayRevenue json.Number `json:"todayRevenue"`
}

// MarshalJSON writes every stat as a plain JSON number.
func (s DashboardStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(dashboardStatsJSON{
		TotalOrders:  json.Number(decimal.NewFromInt(s.TotalOrders).String()),
		TodayOrders:  json.Number(decimal.NewFromInt(s.TodayOrders).String()),
		TotalRevenue: json.Number(s.TotalRevenue.String()),
		TodayRevenue: json.Number(s.TodayRevenue.String()),
	})
}

// UnmarshalJSON reads numbers or numeric strings; anything else is zero.
func (s *DashboardStats) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = StatsFromFields(raw)
	return nil
}

// StatsFromFields picks the four stat fields out of a decoded object,
// defaulting every missing or malformed one to zero.
func StatsFromFields(raw map[string]json.RawMessage) DashboardStats {
	return DashboardStats{
		TotalOrders:  ParsePriceLenient(raw["totalOrders"]).Amount().IntPart(),
		TodayOrders:  ParsePriceLenient(raw["todayOrders"]).Amount().IntPart(),
		TotalRevenue: ParsePriceLenient(raw["totalRevenue"]).Amount(),
		TodayRevenue: ParsePriceLenient(raw["todayRevenue"]).Amount(),
	}
}
