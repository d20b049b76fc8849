package main

import "fmt"

// 当てはめ計算の設定
type FitConfig struct {
	TRef float64 // 基準温度, K（0の場合は298.15とする）
	NDeg int     // 多項式の次数（0の場合は4とする。4以外は指定できない）
}

// 基準温度（未指定の場合は既定値）, K
func (conf *FitConfig) t_ref() float64 {
	if conf.TRef == 0.0 {
		return get_t_ref()
	}
	return conf.TRef
}

// 多項式の次数（未指定の場合は既定値）
func (conf *FitConfig) n_deg() int {
	if conf.NDeg == 0 {
		return get_n_deg()
	}
	return conf.NDeg
}

// 2温度域のNASA/JANAF形式7係数多項式の当てはめ結果
type FitResult struct {
	_low_coeffs    PolynomialCoefficients // 低温域の係数 a1..a5
	_high_coeffs   PolynomialCoefficients // 高温域の係数 a1..a5
	_low_h_offset  float64                // 低温域のエンタルピーの積分定数 a6
	_high_h_offset float64                // 高温域のエンタルピーの積分定数 a6
	_low_s_offset  float64                // 低温域のエントロピーの積分定数 a7
	_high_s_offset float64                // 高温域のエントロピーの積分定数 a7
}

// 低温域の係数 a1..a5
func (fr *FitResult) low_coeffs() PolynomialCoefficients {
	return fr._low_coeffs
}

// 高温域の係数 a1..a5
func (fr *FitResult) high_coeffs() PolynomialCoefficients {
	return fr._high_coeffs
}

// 低温域のエンタルピーの積分定数 a6
func (fr *FitResult) low_h_offset() float64 {
	return fr._low_h_offset
}

// 高温域のエンタルピーの積分定数 a6
func (fr *FitResult) high_h_offset() float64 {
	return fr._high_h_offset
}

// 低温域のエントロピーの積分定数 a7
func (fr *FitResult) low_s_offset() float64 {
	return fr._low_s_offset
}

// 高温域のエントロピーの積分定数 a7
func (fr *FitResult) high_s_offset() float64 {
	return fr._high_s_offset
}

/*
当てはめ結果を既定のフィールド名のマップとして取得する。

	Returns:
		{low_coeffs, high_coeffs, low_h_offset, high_h_offset, low_s_offset, high_s_offset}
*/
func (fr *FitResult) to_map() map[string]interface{} {
	return map[string]interface{}{
		"low_coeffs":    fr._low_coeffs,
		"high_coeffs":   fr._high_coeffs,
		"low_h_offset":  fr._low_h_offset,
		"high_h_offset": fr._high_h_offset,
		"low_s_offset":  fr._low_s_offset,
		"high_s_offset": fr._high_s_offset,
	}
}

/*
当てはめ結果を2温度域のNASA/JANAF形式多項式に変換する。

	Args:
		tr: 当てはめに用いた温度範囲

	Returns:
		2温度域の7係数多項式
*/
func (fr *FitResult) to_nasa7(tr *TemperatureRange) *Nasa7Poly {
	low := Nasa7{
		fr._low_coeffs[0], fr._low_coeffs[1], fr._low_coeffs[2], fr._low_coeffs[3], fr._low_coeffs[4],
		fr._low_h_offset, fr._low_s_offset,
	}
	high := Nasa7{
		fr._high_coeffs[0], fr._high_coeffs[1], fr._high_coeffs[2], fr._high_coeffs[3], fr._high_coeffs[4],
		fr._high_h_offset, fr._high_s_offset,
	}
	return NewNasa7Poly(tr.t_low(), tr.t_common(), tr.t_high(), low, high)
}

/*
物性評価関数からNASA/JANAF形式の7係数多項式を当てはめる。

	Args:
		eval: 物性評価関数
		p: 圧力, Pa
		composition: 組成（評価関数へそのまま渡す）
		tr: 温度範囲
		conf: 当てはめ計算の設定

	Returns:
		当てはめ結果

	Notes:
		処理は サンプリング → 最小二乗近似 → 無次元化 → 積分定数の計算 の順に行う。
		基準温度における物性評価は1回のみ行い、得られた比エンタルピー・比エントロピー・
		気体定数を低温域・高温域の両方で共有する。両温度域を同じ基準点に繋留することで、
		各温度域の多項式を独立に当てはめても7係数モデル全体の整合が保たれる。
		途中のどの段階でエラーが生じても部分的な結果は返さない。
*/
func fit_janaf(eval PropertyEvaluator, p float64, composition string, tr *TemperatureRange, conf FitConfig) (*FitResult, error) {

	if conf.n_deg() != get_n_deg() {
		return nil, fmt.Errorf("polynomial degree must be %d for JANAF compatibility, got %d", get_n_deg(), conf.n_deg())
	}

	// 基準温度の検査は評価関数の呼び出しより前に行う
	t_ref := conf.t_ref()
	if t_ref <= 0.0 {
		return nil, &InvalidReferenceTemperatureError{t_ref: t_ref}
	}

	// 基準温度における絶対エンタルピー・絶対エントロピー・気体定数
	ref, err := eval(t_ref, p, composition)
	if err != nil {
		return nil, &PropertyEvaluationError{t: t_ref, err: err}
	}
	if !ref.is_finite() || ref.r_specific() <= 0.0 {
		return nil, &PropertyEvaluationError{t: t_ref}
	}
	r := ref.r_specific()
	h_ref := ref.h_mass()
	s_ref := ref.s_mass()

	// 低温域
	low_coeffs, a6_low, a7_low, err := fit_range(eval, tr.low_grid(), p, composition, r, t_ref, h_ref, s_ref)
	if err != nil {
		return nil, err
	}

	// 高温域
	high_coeffs, a6_high, a7_high, err := fit_range(eval, tr.high_grid(), p, composition, r, t_ref, h_ref, s_ref)
	if err != nil {
		return nil, err
	}

	return &FitResult{
		_low_coeffs:    *low_coeffs,
		_high_coeffs:   *high_coeffs,
		_low_h_offset:  a6_low,
		_high_h_offset: a6_high,
		_low_s_offset:  a7_low,
		_high_s_offset: a7_high,
	}, nil
}

/*
1温度域分の当てはめを行う。

	Args:
		eval: 物性評価関数
		ts: 温度グリッド, K
		p: 圧力, Pa
		composition: 組成
		r: 気体定数, J/kg K
		t_ref: 基準温度, K
		h_ref: 基準温度における比エンタルピー, J/kg
		s_ref: 基準温度における比エントロピー, J/kg K

	Returns:
		以下のタプル
			(1) 多項式係数 a1..a5
			(2) エンタルピーの積分定数 a6
			(3) エントロピーの積分定数 a7
*/
func fit_range(
	eval PropertyEvaluator,
	ts []float64,
	p float64,
	composition string,
	r float64,
	t_ref float64,
	h_ref float64,
	s_ref float64,
) (*PolynomialCoefficients, float64, float64, error) {

	cps, err := sample_cp(eval, ts, p, composition)
	if err != nil {
		return nil, 0.0, 0.0, err
	}

	coeffs, err := fit_cp_poly(ts, cps, r)
	if err != nil {
		return nil, 0.0, 0.0, err
	}

	a6, err := integration_constant_h(coeffs, r, t_ref, h_ref)
	if err != nil {
		return nil, 0.0, 0.0, err
	}

	a7, err := integration_constant_s(coeffs, r, t_ref, s_ref)
	if err != nil {
		return nil, 0.0, 0.0, err
	}

	return coeffs, a6, a7, nil
}
