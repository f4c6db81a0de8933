package pricing

import "math"

// Tariffs in GNF. Express ships within 24h, standard within 2-3 business days.
const (
	StandardBase      = 50000.0
	StandardRatePerKg = 8000.0
	ExpressBase       = 100000.0
	ExpressRatePerKg  = 15000.0

	// Dimensional weight divisor used by the carrier (cm³ per kg).
	VolumetricDivisor = 5000.0

	// Collection surcharge applied to cash-on-delivery amounts.
	CODRate = 0.02
)

// Quote holds the inputs of a price calculation. Zero values are valid:
// missing dimensions simply contribute no volumetric weight.
type Quote struct {
	WeightKg   float64
	LengthCm   float64
	WidthCm    float64
	HeightCm   float64
	Service    string // standard, express
	CODEnabled bool
	CODAmount  float64
}

// VolumetricWeight returns L×W×H/5000, or 0 unless all three dimensions
// are present and positive.
func VolumetricWeight(lengthCm, widthCm, heightCm float64) float64 {
	l, w, h := sanitize(lengthCm), sanitize(widthCm), sanitize(heightCm)
	if l == 0 || w == 0 || h == 0 {
		return 0
	}
	return l * w * h / VolumetricDivisor
}

// BillableWeight is the greater of the actual and the volumetric weight.
func BillableWeight(weightKg, lengthCm, widthCm, heightCm float64) float64 {
	return math.Max(sanitize(weightKg), VolumetricWeight(lengthCm, widthCm, heightCm))
}

// Compute derives the shipment price in GNF, rounded to the nearest
// integer. Invalid numeric inputs are treated as zero; it never fails.
func Compute(q Quote) int64 {
	billable := BillableWeight(q.WeightKg, q.LengthCm, q.WidthCm, q.HeightCm)

	var price float64
	if q.Service == "express" {
		price = ExpressBase + billable*ExpressRatePerKg
	} else {
		price = StandardBase + billable*StandardRatePerKg
	}

	if q.CODEnabled {
		if amount := sanitize(q.CODAmount); amount > 0 {
			price += amount * CODRate
		}
	}

	return int64(math.Round(price))
}

// sanitize clamps NaN, infinite and negative inputs to zero.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
