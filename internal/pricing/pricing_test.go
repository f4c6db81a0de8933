package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name  string
		quote Quote
		want  int64
	}{
		{
			name:  "standard flat base with zero weight and no dimensions",
			quote: Quote{Service: "standard"},
			want:  50000,
		},
		{
			name:  "express flat base with zero weight and no dimensions",
			quote: Quote{Service: "express"},
			want:  100000,
		},
		{
			name:  "standard billed on actual weight",
			quote: Quote{WeightKg: 2.5, Service: "standard"},
			want:  70000,
		},
		{
			name:  "express billed on actual weight",
			quote: Quote{WeightKg: 3, Service: "express"},
			want:  145000,
		},
		{
			name:  "volumetric weight wins over actual weight",
			quote: Quote{WeightKg: 2, LengthCm: 60, WidthCm: 40, HeightCm: 30, Service: "standard"},
			want:  165200, // 60*40*30/5000 = 14.4kg billable
		},
		{
			name:  "partial dimensions contribute nothing",
			quote: Quote{WeightKg: 2, LengthCm: 60, WidthCm: 40, Service: "standard"},
			want:  66000,
		},
		{
			name:  "cod surcharge added at 2%",
			quote: Quote{WeightKg: 1, Service: "standard", CODEnabled: true, CODAmount: 100000},
			want:  60000, // 58000 + 2000
		},
		{
			name:  "cod amount ignored when flag is off",
			quote: Quote{WeightKg: 1, Service: "standard", CODAmount: 100000},
			want:  58000,
		},
		{
			name:  "unknown service falls back to standard tariff",
			quote: Quote{WeightKg: 1, Service: "premium"},
			want:  58000,
		},
		{
			name:  "negative inputs treated as zero",
			quote: Quote{WeightKg: -5, LengthCm: -1, WidthCm: 40, HeightCm: 30, Service: "express"},
			want:  100000,
		},
		{
			name:  "nan weight treated as zero",
			quote: Quote{WeightKg: math.NaN(), Service: "standard"},
			want:  50000,
		},
		{
			name:  "fractional result rounds to nearest integer",
			quote: Quote{WeightKg: 0.0001, Service: "standard"},
			want:  50001, // 50000.8 rounds up
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.quote))
		})
	}
}

func TestVolumetricWeight(t *testing.T) {
	assert.Equal(t, 14.4, VolumetricWeight(60, 40, 30))
	assert.Equal(t, 0.0, VolumetricWeight(60, 40, 0))
	assert.Equal(t, 0.0, VolumetricWeight(0, 0, 0))
	assert.Equal(t, 0.0, VolumetricWeight(60, -40, 30))
}

func TestBillableWeight(t *testing.T) {
	// Actual weight wins for a small dense parcel.
	assert.Equal(t, 20.0, BillableWeight(20, 10, 10, 10))
	// Volumetric wins for a bulky light parcel.
	assert.Equal(t, 14.4, BillableWeight(2, 60, 40, 30))
}
