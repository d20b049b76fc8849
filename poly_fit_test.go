package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GRI-Mech 3.0 の OH ラジカルの低温域係数（Cp/R, 昇べき順）
var oh_low_coeffs = PolynomialCoefficients{
	3.99201543e+00, -2.40131752e-03, 4.61793841e-06, -3.88113333e-09, 1.36411470e-12,
}

// 多項式を直接評価して定圧比熱の標本を作る
func sample_poly(coeffs *PolynomialCoefficients, ts []float64, r_specific float64) []float64 {
	cps := make([]float64, len(ts))
	for i, tk := range ts {
		cps[i] = coeffs.cp_over_r(tk) * r_specific
	}
	return cps
}

func TestFitCpPoly_constant(t *testing.T) {

	// Cp/R が定数の場合は [c, 0, 0, 0, 0] に一致する
	const c = 3.5
	const r = 461.5

	for name, ts := range map[string][]float64{
		"low range":  make_grid(200.0, 1000.0, 100.0),
		"high range": make_grid(1000.0, 3500.0, 100.0),
	} {
		t.Run(name, func(t *testing.T) {
			cps := make([]float64, len(ts))
			for i := range ts {
				cps[i] = c * r
			}

			coeffs, err := fit_cp_poly(ts, cps, r)
			require.NoError(t, err)

			assert.InDelta(t, c, coeffs[0], 1e-6)
			// 高次項は最高温度での寄与が無視できる大きさであること
			t_max := ts[len(ts)-1]
			for i := 1; i < len(coeffs); i++ {
				assert.InDelta(t, 0.0, coeffs[i]*math.Pow(t_max, float64(i)), 1e-6)
			}
		})
	}
}

func TestFitCpPoly_exact_interpolation(t *testing.T) {

	// 標本点が5点ちょうどの場合は補間となり、元の係数をほぼ機械精度で復元する
	const r = 488.9
	ts := []float64{200.0, 360.0, 520.0, 680.0, 840.0}
	cps := sample_poly(&oh_low_coeffs, ts, r)

	coeffs, err := fit_cp_poly(ts, cps, r)
	require.NoError(t, err)

	for i := range coeffs {
		assert.InEpsilon(t, oh_low_coeffs[i], coeffs[i], 1e-6, "coefficient %d", i)
	}
}

func TestFitCpPoly_oversampled(t *testing.T) {

	// 標本を増やしても厳密な4次多項式なら残差ゼロの最小二乗となり係数は変わらない
	const r = 488.9
	ts := make_grid(200.0, 1000.0, 16.0)
	require.Len(t, ts, 50)
	cps := sample_poly(&oh_low_coeffs, ts, r)

	coeffs, err := fit_cp_poly(ts, cps, r)
	require.NoError(t, err)

	for i := range coeffs {
		assert.InEpsilon(t, oh_low_coeffs[i], coeffs[i], 1e-6, "coefficient %d", i)
	}
}

func TestFitCpPoly_rescaling(t *testing.T) {

	// 回帰の目的変数は無次元化前の定圧比熱であり、係数を気体定数で除して Cp/R とする
	ts := []float64{300.0, 400.0, 500.0, 600.0, 700.0}
	cps := []float64{700.0, 700.0, 700.0, 700.0, 700.0}

	coeffs, err := fit_cp_poly(ts, cps, 350.0)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, coeffs[0], 1e-9)
}

func TestFitCpPoly_insufficient_samples(t *testing.T) {

	ts := []float64{300.0, 400.0, 500.0, 600.0}
	cps := []float64{1.0, 2.0, 3.0, 4.0}

	_, err := fit_cp_poly(ts, cps, 287.0)

	var e *InsufficientSamplesError
	require.ErrorAs(t, err, &e)
}

func TestFitCpPoly_singular(t *testing.T) {

	// 標本は6点あるが異なる温度が3点しかなく、ヴァンデルモンド行列が階数落ちする
	ts := []float64{300.0, 300.0, 400.0, 400.0, 500.0, 500.0}
	cps := []float64{1.0, 1.0, 2.0, 2.0, 3.0, 3.0}

	_, err := fit_cp_poly(ts, cps, 287.0)

	var e *SingularFitError
	require.ErrorAs(t, err, &e)
}
