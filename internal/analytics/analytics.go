// Package analytics reduces a full order list into the chart series shown on
// the analytics page. Everything happens in memory: the list is fetched once
// and folded here.
package analytics

import (
	"sort"

	"github.com/ibeloyar/printbee/internal/model"
	"github.com/shopspring/decimal"
)

const UnknownBucket = "Unknown"

type CountBucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type RevenueBucket struct {
	Key     string          `json:"key"`
	Revenue decimal.Decimal `json:"revenue"`
}

type Summary struct {
	OrdersByMonth  []CountBucket   `json:"ordersByMonth"`
	RevenueByMonth []RevenueBucket `json:"revenueByMonth"`
	ByPayment      []CountBucket   `json:"byPayment"`
}

// MonthKey is the year-month prefix of a store timestamp.
func MonthKey(timestamp string) string {
	if len(timestamp) < 7 {
		if timestamp == "" {
			return UnknownBucket
		}
		return timestamp
	}
	return timestamp[:7]
}

func Aggregate(orders []model.Order) Summary {
	countByMonth := map[string]int{}
	revenueByMonth := map[string]decimal.Decimal{}
	countByPayment := map[string]int{}

	for _, o := range orders {
		month := MonthKey(o.Timestamp)
		countByMonth[month]++
		revenueByMonth[month] = revenueByMonth[month].Add(o.Price.Amount())

		method := string(o.PaymentMethod)
		if method == "" {
			method = UnknownBucket
		}
		countByPayment[method]++
	}

	months := make([]string, 0, len(countByMonth))
	for month := range countByMonth {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i] == UnknownBucket || months[j] == UnknownBucket {
			return months[j] == UnknownBucket && months[i] != UnknownBucket
		}
		return months[i] < months[j]
	})

	summary := Summary{
		OrdersByMonth:  make([]CountBucket, 0, len(months)),
		RevenueByMonth: make([]RevenueBucket, 0, len(months)),
		ByPayment:      make([]CountBucket, 0, len(countByPayment)),
	}
	for _, month := range months {
		summary.OrdersByMonth = append(summary.OrdersByMonth, CountBucket{Key: month, Count: countByMonth[month]})
		summary.RevenueByMonth = append(summary.RevenueByMonth, RevenueBucket{Key: month, Revenue: revenueByMonth[month]})
	}

	for method, count := range countByPayment {
		summary.ByPayment = append(summary.ByPayment, CountBucket{Key: method, Count: count})
	}
	sort.Slice(summary.ByPayment, func(i, j int) bool {
		a, b := summary.ByPayment[i], summary.ByPayment[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Key < b.Key
	})

	return summary
}

// Labels and values split a series for the chart script.
func Labels[T CountBucket | RevenueBucket](buckets []T) []string {
	labels := make([]string, 0, len(buckets))
	for _, b := range buckets {
		switch v := any(b).(type) {
		case CountBucket:
			labels = append(labels, v.Key)
		case RevenueBucket:
			labels = append(labels, v.Key)
		}
	}
	return labels
}

func Counts(buckets []CountBucket) []int {
	values := make([]int, 0, len(buckets))
	for _, b := range buckets {
		values = append(values, b.Count)
	}
	return values
}

func Revenues(buckets []RevenueBucket) []float64 {
	values := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		values = append(values, b.Revenue.InexactFloat64())
	}
	return values
}
