package stats

import (
	"math"
	"testing"
)

func TestEstimate1PM(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{
			name:   "single rep is the max itself",
			weight: 100,
			reps:   1,
			want:   100,
		},
		{
			name:   "five reps averages brzycki and epley",
			weight: 100,
			reps:   5,
			// brzycki: 100*(36/32)=112.5, epley: 100*(1+0.1665)=116.65
			want: 114.58,
		},
		{
			name:   "ten reps",
			weight: 80,
			reps:   10,
			// brzycki: 80*(36/27)=106.67, epley: 80*1.333=106.64
			want: 106.65,
		},
		{
			name:   "zero weight",
			weight: 0,
			reps:   5,
			want:   0,
		},
		{
			name:   "zero reps",
			weight: 100,
			reps:   0,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate1PM(tt.weight, tt.reps)
			if math.Abs(got-tt.want) > 0.05 {
				t.Errorf("Estimate1PM(%v, %d) = %v, want ≈%v", tt.weight, tt.reps, got, tt.want)
			}
		})
	}
}

func TestEstimate1PM_ExceedsWorkingWeight(t *testing.T) {
	for reps := 2; reps <= 12; reps++ {
		if got := Estimate1PM(100, reps); got <= 100 {
			t.Errorf("Estimate1PM(100, %d) = %v, want > working weight", reps, got)
		}
	}
}
