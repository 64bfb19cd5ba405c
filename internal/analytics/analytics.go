package analytics

import (
	"sort"
	"time"

	"soletrack/internal/model"

	"github.com/shopspring/decimal"
)

// Pure computations over already-loaded rows. Nothing in this package
// touches the database, so it is safe to call from concurrent requests.

// Profit returns sale price minus purchase price, fees and shipping cost.
func Profit(sale model.Sale, sneaker model.Sneaker) decimal.Decimal {
	return sale.SalePrice.
		Sub(sneaker.PurchasePrice).
		Sub(sale.Fees).
		Sub(sale.ShippingCost)
}

// ROI returns profit divided by purchase price. The second return value is
// false when the purchase price is zero: the ratio is undefined and callers
// should report N/A rather than a number.
func ROI(sale model.Sale, sneaker model.Sneaker) (decimal.Decimal, bool) {
	if sneaker.PurchasePrice.IsZero() {
		return decimal.Zero, false
	}
	return Profit(sale, sneaker).Div(sneaker.PurchasePrice), true
}

// DaysToSale returns whole calendar days between purchase and sale. A sale
// dated before the purchase yields a negative count; that is a data-entry
// error the caller should surface, not clamp.
func DaysToSale(sale model.Sale, sneaker model.Sneaker) int {
	p := dateOnly(sneaker.PurchaseDate)
	s := dateOnly(sale.SaleDate)
	return int(s.Sub(p).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BrandPerformance aggregates sales for a single brand.
type BrandPerformance struct {
	Brand     string          `json:"brand"`
	Units     int             `json:"units"`
	Revenue   decimal.Decimal `json:"revenue"`
	Profit    decimal.Decimal `json:"profit"`
	AvgProfit decimal.Decimal `json:"avg_profit"`
}

// BrandRanking groups sales by the sneaker's brand, summing profit and
// counting units. Result is sorted by total profit descending, then unit
// count descending, then brand name ascending. Sales must be loaded with
// their Sneaker association. An empty input returns an empty slice.
func BrandRanking(sales []model.Sale) []BrandPerformance {
	byBrand := make(map[string]*BrandPerformance)
	for _, sale := range sales {
		perf, ok := byBrand[sale.Sneaker.Brand]
		if !ok {
			perf = &BrandPerformance{Brand: sale.Sneaker.Brand}
			byBrand[sale.Sneaker.Brand] = perf
		}
		perf.Units++
		perf.Revenue = perf.Revenue.Add(sale.SalePrice)
		perf.Profit = perf.Profit.Add(Profit(sale, sale.Sneaker))
	}

	ranking := make([]BrandPerformance, 0, len(byBrand))
	for _, perf := range byBrand {
		perf.AvgProfit = perf.Profit.Div(decimal.NewFromInt(int64(perf.Units)))
		ranking = append(ranking, *perf)
	}
	sortRanking(ranking)
	return ranking
}

func sortRanking(ranking []BrandPerformance) {
	sort.Slice(ranking, func(i, j int) bool {
		if cmp := ranking[i].Profit.Cmp(ranking[j].Profit); cmp != 0 {
			return cmp > 0
		}
		if ranking[i].Units != ranking[j].Units {
			return ranking[i].Units > ranking[j].Units
		}
		return ranking[i].Brand < ranking[j].Brand
	})
}

// ModelPerformance aggregates sales for a brand+model pair.
type ModelPerformance struct {
	Brand  string          `json:"brand"`
	Model  string          `json:"model"`
	Units  int             `json:"units"`
	Profit decimal.Decimal `json:"profit"`
}

// ModelRanking groups sales by brand then model, with the same ordering
// rules as BrandRanking (name tie-break compares brand then model).
func ModelRanking(sales []model.Sale) []ModelPerformance {
	type key struct{ brand, model string }
	byModel := make(map[key]*ModelPerformance)
	for _, sale := range sales {
		k := key{sale.Sneaker.Brand, sale.Sneaker.Model}
		perf, ok := byModel[k]
		if !ok {
			perf = &ModelPerformance{Brand: k.brand, Model: k.model}
			byModel[k] = perf
		}
		perf.Units++
		perf.Profit = perf.Profit.Add(Profit(sale, sale.Sneaker))
	}

	ranking := make([]ModelPerformance, 0, len(byModel))
	for _, perf := range byModel {
		ranking = append(ranking, *perf)
	}
	sort.Slice(ranking, func(i, j int) bool {
		if cmp := ranking[i].Profit.Cmp(ranking[j].Profit); cmp != 0 {
			return cmp > 0
		}
		if ranking[i].Units != ranking[j].Units {
			return ranking[i].Units > ranking[j].Units
		}
		if ranking[i].Brand != ranking[j].Brand {
			return ranking[i].Brand < ranking[j].Brand
		}
		return ranking[i].Model < ranking[j].Model
	})
	return ranking
}

// MonthlyProfit is one month's summed profit, keyed YYYY-MM.
type MonthlyProfit struct {
	Month  string          `json:"month"`
	Profit decimal.Decimal `json:"profit"`
}

// MonthlyProfits sums profit per sale month, sorted chronologically.
func MonthlyProfits(sales []model.Sale) []MonthlyProfit {
	byMonth := make(map[string]decimal.Decimal)
	for _, sale := range sales {
		month := sale.SaleDate.Format("2006-01")
		byMonth[month] = byMonth[month].Add(Profit(sale, sale.Sneaker))
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	series := make([]MonthlyProfit, 0, len(months))
	for _, month := range months {
		series = append(series, MonthlyProfit{Month: month, Profit: byMonth[month]})
	}
	return series
}

// Summary is the full dashboard aggregate.
type Summary struct {
	TotalSneakers      int             `json:"total_sneakers"`
	TotalSales         int             `json:"total_sales"`
	AvailableInventory int             `json:"available_inventory"`
	TotalInvested      decimal.Decimal `json:"total_invested"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TotalFees          decimal.Decimal `json:"total_fees"`
	TotalProfit        decimal.Decimal `json:"total_profit"`
	AvgProfitPerSale   decimal.Decimal `json:"avg_profit_per_sale"`
	AvgDaysToSale      float64         `json:"avg_days_to_sale"`
	// NegativeDaysCount flags sales dated before their purchase date.
	NegativeDaysCount int                `json:"negative_days_count"`
	MonthlyProfits    []MonthlyProfit    `json:"monthly_profits"`
	BrandPerformance  []BrandPerformance `json:"brand_performance"`
	ModelPerformance  []ModelPerformance `json:"model_performance"`
}

// Summarize computes the dashboard aggregate. Empty inputs yield a
// zero-valued summary, never an error.
func Summarize(sneakers []model.Sneaker, sales []model.Sale) Summary {
	summary := Summary{
		TotalSneakers:      len(sneakers),
		TotalSales:         len(sales),
		AvailableInventory: len(sneakers) - len(sales),
		MonthlyProfits:     MonthlyProfits(sales),
		BrandPerformance:   BrandRanking(sales),
		ModelPerformance:   ModelRanking(sales),
	}

	for _, sneaker := range sneakers {
		summary.TotalInvested = summary.TotalInvested.Add(sneaker.PurchasePrice)
	}

	if len(sales) == 0 {
		return summary
	}

	totalDays := 0
	for _, sale := range sales {
		summary.TotalRevenue = summary.TotalRevenue.Add(sale.SalePrice)
		summary.TotalFees = summary.TotalFees.Add(sale.Fees).Add(sale.ShippingCost)
		summary.TotalProfit = summary.TotalProfit.Add(Profit(sale, sale.Sneaker))

		days := DaysToSale(sale, sale.Sneaker)
		if days < 0 {
			summary.NegativeDaysCount++
		}
		totalDays += days
	}

	count := decimal.NewFromInt(int64(len(sales)))
	summary.AvgProfitPerSale = summary.TotalProfit.Div(count)
	summary.AvgDaysToSale = float64(totalDays) / float64(len(sales))
	return summary
}
