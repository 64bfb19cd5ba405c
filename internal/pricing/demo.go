package pricing

import (
	"hash/fnv"
	"math"
	"strings"
)

// Demo quotes are synthesized when live data is unavailable. The derivation
// is fully deterministic: identical descriptors always produce identical
// quotes, which keeps the UI stable across repeated lookups.

// DemoConfidence is the fixed score for synthetic quotes. liveFloor is the
// minimum any live quote can score, so live >= demo always holds.
const (
	DemoConfidence = 0.30
	liveFloor      = 0.35
	liveCeiling    = 0.95
)

// Base retail prices by brand tier.
var brandRetail = map[string]float64{
	"nike":        140,
	"jordan":      170,
	"adidas":      130,
	"yeezy":       220,
	"new balance": 130,
	"asics":       120,
	"puma":        110,
	"vans":        70,
	"converse":    70,
	"reebok":      100,
}

// Multipliers for popular or limited silhouettes.
var modelMultipliers = map[string]float64{
	"air jordan 1":  1.2,
	"air jordan 4":  1.3,
	"air jordan 11": 1.4,
	"dunk":          1.1,
	"air force 1":   0.9,
	"air max":       1.0,
	"blazer":        1.0,
	"lebron":        1.1,
	"yeezy 350":     2.0,
	"yeezy 700":     2.2,
	"ultraboost":    1.0,
	"stan smith":    0.8,
	"nmd":           0.9,
	"chuck taylor":  0.7,
	"old skool":     0.8,
	"990":           1.5,
	"550":           1.3,
}

// Multipliers for hype colorways.
var colorwayMultipliers = map[string]float64{
	"bred":         1.3,
	"chicago":      1.4,
	"royal":        1.2,
	"off white":    2.5,
	"travis scott": 3.0,
	"fragment":     2.0,
	"union":        1.8,
	"dior":         5.0,
	"black toe":    1.2,
	"shadow":       1.1,
	"mocha":        1.5,
	"obsidian":     1.3,
}

func demoQuote(d Descriptor) Quote {
	retail, market := syntheticPricing(d.Brand, d.Model, d.Colorway)

	return Quote{
		Brand:       d.Brand,
		Model:       d.Model,
		Colorway:    d.Colorway,
		SKU:         d.SKU,
		Size:        d.Size,
		RetailPrice: retail,
		LowestAsk:   market,
		HighestBid:  round2(market * 0.90),
		LastSale:    round2(market * 0.95),
		AnnualHigh:  round2(market * 1.15),
		AnnualLow:   math.Max(retail, round2(market*0.85)),
		Confidence:  DemoConfidence,
		Source:      SourceDemo,
	}
}

// syntheticPricing derives plausible retail and market prices from the
// descriptor strings: a brand base price, silhouette and colorway
// multipliers, and a hash-based jitter so distinct sneakers do not all
// land on identical round numbers.
func syntheticPricing(brand, model, colorway string) (retail, market float64) {
	brandLower := strings.ToLower(brand)
	modelLower := strings.ToLower(model)
	colorwayLower := strings.ToLower(colorway)

	retail = 140
	if price, ok := longestMatch(brandLower, brandRetail); ok {
		retail = price
	}

	modelMult := 1.0
	if mult, ok := longestMatch(modelLower, modelMultipliers); ok {
		modelMult = mult
	}

	colorwayMult := 1.0
	if mult, ok := longestMatch(colorwayLower, colorwayMultipliers); ok {
		colorwayMult = mult
	}

	retail = math.Round(retail * modelMult)

	// Resale typically runs ~1.5x retail before hype premiums.
	market = math.Round(retail * 1.5 * colorwayMult)
	market += jitter(brand, model, colorway)
	market = math.Max(market, retail)
	return retail, market
}

// longestMatch finds the most specific table key contained in s. Longest
// wins so "air jordan 11" beats "air jordan 1"; ties break alphabetically
// to keep the lookup deterministic.
func longestMatch(s string, table map[string]float64) (float64, bool) {
	best := ""
	for key := range table {
		if !strings.Contains(s, key) {
			continue
		}
		if len(key) > len(best) || (len(key) == len(best) && key < best) {
			best = key
		}
	}
	if best == "" {
		return 0, false
	}
	return table[best], true
}

// jitter returns a stable offset in [-20, 20] derived from the descriptor.
func jitter(brand, model, colorway string) float64 {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(brand + "|" + model + "|" + colorway)))
	return float64(int(h.Sum32()%41) - 20)
}

// liveConfidence scores a live quote in [liveFloor, liveCeiling]. More
// corroborating data points raise the score; wider dispersion between the
// observed prices lowers it. Both directions are monotonic.
func liveConfidence(points int, prices ...float64) float64 {
	if points < 1 {
		points = 1
	}

	present := prices[:0]
	for _, p := range prices {
		if p > 0 {
			present = append(present, p)
		}
	}

	spread := 0.0
	if len(present) >= 2 {
		low, high := present[0], present[0]
		mean := 0.0
		for _, p := range present {
			low = math.Min(low, p)
			high = math.Max(high, p)
			mean += p
		}
		mean /= float64(len(present))
		if mean > 0 {
			spread = (high - low) / mean
		}
	}

	score := liveFloor + (liveCeiling-liveFloor)*(float64(points)/(float64(points)+4))/(1+2*spread)
	return math.Min(liveCeiling, math.Max(liveFloor, score))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
