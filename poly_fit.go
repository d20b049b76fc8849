package main

import (
	"gonum.org/v1/gonum/mat"
)

// 無次元化した定圧比熱 Cp/R の多項式係数 a1..a5
// 昇べき順（インデックス i が温度の i 乗の係数に対応する）。
type PolynomialCoefficients [5]float64

/*
多項式係数から無次元定圧比熱を計算する。

	Args:
		t: 温度, K

	Returns:
		無次元定圧比熱 Cp/R
*/
func (c *PolynomialCoefficients) cp_over_r(t float64) float64 {
	return c[0] + t*(c[1]+t*(c[2]+t*(c[3]+t*c[4])))
}

/*
定圧比熱の温度依存性を4次多項式で最小二乗近似する。

	Args:
		ts: 温度の標本点, K
		cps: 各標本点における定圧比熱, J/kg K
		r_specific: 気体定数, J/kg K

	Returns:
		無次元定圧比熱 Cp/R の多項式係数（昇べき順）

	Notes:
		列 [1, T, T^2, T^3, T^4] からなるヴァンデルモンド行列の最小二乗問題を
		QR分解により解く。回帰の目的変数は無次元化前の定圧比熱であり、
		解いた後に全ての係数を気体定数で除して Cp/R の係数とする。
		標本点が5点ちょうどの場合は補間、6点以上の場合は近似となる。
		異なる温度が5点未満の場合、又は物性がほぼ一定で数値的に階数落ちする場合は
		SingularFitError となる。
*/
func fit_cp_poly(ts []float64, cps []float64, r_specific float64) (*PolynomialCoefficients, error) {

	n := len(ts)
	n_coeff := get_n_sample_min()

	if n < n_coeff {
		return nil, &InsufficientSamplesError{n_sample: n, n_required: n_coeff}
	}
	if len(cps) != n {
		panic("temperature and heat capacity samples differ in length")
	}

	if count_distinct(ts) < n_coeff {
		return nil, &SingularFitError{reason: "fewer than 5 distinct temperature values"}
	}

	// ヴァンデルモンド行列と右辺ベクトルを組み立てる
	mat_a := mat.NewDense(n, n_coeff, nil)
	vec_b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		v := 1.0
		for j := 0; j < n_coeff; j++ {
			mat_a.Set(i, j, v)
			v *= ts[i]
		}
		vec_b.SetVec(i, cps[i])
	}

	var qr mat.QR
	qr.Factorize(mat_a)

	vec_x := mat.NewVecDense(n_coeff, nil)
	if err := qr.SolveVecTo(vec_x, false, vec_b); err != nil {
		return nil, &SingularFitError{reason: err.Error()}
	}

	// 係数を気体定数で除して無次元化する
	var coeffs PolynomialCoefficients
	for j := 0; j < n_coeff; j++ {
		coeffs[j] = vec_x.AtVec(j) / r_specific
	}

	return &coeffs, nil
}

// 重複を除いた温度の数を求める
func count_distinct(ts []float64) int {
	seen := make(map[float64]struct{}, len(ts))
	for _, t := range ts {
		seen[t] = struct{}{}
	}
	return len(seen)
}
