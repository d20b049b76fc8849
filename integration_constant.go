package main

import "math"

/*
エンタルピーの積分定数 a6 を求める。

	Args:
		coeffs: 無次元定圧比熱 Cp/R の多項式係数（昇べき順）
		r_specific: 気体定数, J/kg K
		t_ref: 基準温度, K
		h_ref: 基準温度における比エンタルピー, J/kg

	Returns:
		積分定数 a6

	Notes:
		H(T)/R = Σ a_i T^(i+1) / (i+1) + a6 が基準温度で h_ref/R と一致するように
			a6 = h_ref/R - Σ a_i T_ref^(i+1) / (i+1)
		とする。Cp/R の不定積分を項別に求めた閉形式であり、数値求積は用いない。
		T_ref^5 程度の大きな項との桁落ちを抑えるため、和は低次項から順に加算する。
*/
func integration_constant_h(coeffs *PolynomialCoefficients, r_specific float64, t_ref float64, h_ref float64) (float64, error) {

	if t_ref <= 0.0 {
		return 0.0, &InvalidReferenceTemperatureError{t_ref: t_ref}
	}

	sum := 0.0
	tp := t_ref
	for i, a := range coeffs {
		sum += a * tp / float64(i+1)
		tp *= t_ref
	}

	return h_ref/r_specific - sum, nil
}

/*
エントロピーの積分定数 a7 を求める。

	Args:
		coeffs: 無次元定圧比熱 Cp/R の多項式係数（昇べき順）
		r_specific: 気体定数, J/kg K
		t_ref: 基準温度, K
		s_ref: 基準温度における比エントロピー, J/kg K

	Returns:
		積分定数 a7

	Notes:
		エントロピーの積分 ∫ Cp/R / T dT では定数項が対数となり、
		その他の項はエンタルピーの場合より指数が1つ下がる。
			a7 = s_ref/R - a_0 ln(T_ref) - Σ_{i>=1} a_i T_ref^i / i
		基準温度が非正の場合は ln(T_ref) が定義できないため
		InvalidReferenceTemperatureError となる。
*/
func integration_constant_s(coeffs *PolynomialCoefficients, r_specific float64, t_ref float64, s_ref float64) (float64, error) {

	if t_ref <= 0.0 {
		return 0.0, &InvalidReferenceTemperatureError{t_ref: t_ref}
	}

	sum := coeffs[0] * math.Log(t_ref)
	tp := t_ref
	for i := 1; i < len(coeffs); i++ {
		sum += coeffs[i] * tp / float64(i)
		tp *= t_ref
	}

	return s_ref/r_specific - sum, nil
}
