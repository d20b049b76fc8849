package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GRI-Mech 3.0 の OH ラジカルの7係数（低温域・高温域）
var oh_low_nasa7 = Nasa7{
	3.99201543e+00, -2.40131752e-03, 4.61793841e-06, -3.88113333e-09, 1.36411470e-12,
	3.61508056e+03, -1.03925458e-01,
}

var oh_high_nasa7 = Nasa7{
	3.09288767e+00, 5.48429716e-04, 1.26505228e-07, -8.79461556e-11, 1.17412376e-14,
	3.85865700e+03, 4.47669610e+00,
}

func TestNasa7_cp_over_r(t *testing.T) {

	for _, tk := range []float64{300.0, 500.0, 900.0} {
		// べき乗を直接計算した和と一致すること
		want := 0.0
		for i := 0; i < 5; i++ {
			want += oh_low_nasa7[i] * math.Pow(tk, float64(i))
		}
		assert.InEpsilon(t, want, oh_low_nasa7.cp_over_r(tk), 1e-12)
	}
}

func TestNasa7_h_over_rt(t *testing.T) {

	for _, tk := range []float64{300.0, 500.0, 900.0} {
		// H/R = Σ a_i T^(i+1)/(i+1) + a6
		want := oh_low_nasa7[5]
		for i := 0; i < 5; i++ {
			want += oh_low_nasa7[i] * math.Pow(tk, float64(i+1)) / float64(i+1)
		}
		assert.InEpsilon(t, want/tk, oh_low_nasa7.h_over_rt(tk), 1e-12)
	}
}

func TestNasa7_s_over_r(t *testing.T) {

	for _, tk := range []float64{300.0, 500.0, 900.0} {
		// S/R = a_1 ln(T) + Σ_{i>=1} a_i T^i/i + a7
		want := oh_low_nasa7[0]*math.Log(tk) + oh_low_nasa7[6]
		for i := 1; i < 5; i++ {
			want += oh_low_nasa7[i] * math.Pow(tk, float64(i)) / float64(i)
		}
		assert.InEpsilon(t, want, oh_low_nasa7.s_over_r(tk), 1e-12)
	}
}

func TestNasa7Poly_select_coeffs(t *testing.T) {

	poly := NewNasa7Poly(200.0, 1000.0, 3500.0, oh_low_nasa7, oh_high_nasa7)

	// 共通温度未満は低温域、共通温度以上は高温域
	assert.Equal(t, poly.low(), poly.select_coeffs(999.9))
	assert.Equal(t, poly.high(), poly.select_coeffs(1000.0))
	assert.Equal(t, poly.high(), poly.select_coeffs(1000.1))
}

func TestNasa7Poly_continuity_at_common_temperature(t *testing.T) {

	// GRI-Mech のデータは共通温度で低温域と高温域の値がほぼ一致する
	poly := NewNasa7Poly(200.0, 1000.0, 3500.0, oh_low_nasa7, oh_high_nasa7)
	tc := poly.t_common()

	require.InDelta(t, poly.low().cp_over_r(tc), poly.high().cp_over_r(tc), 1e-3)
	require.InDelta(t, poly.low().h_over_rt(tc), poly.high().h_over_rt(tc), 1e-3)
	require.InDelta(t, poly.low().s_over_r(tc), poly.high().s_over_r(tc), 1e-3)
}
