package main

import "math"

// 温度・圧力・組成を固定したときの作動流体の熱力学物性値
type PropertyValue struct {
	_cp_mass    float64 // 定圧比熱, J/kg K
	_h_mass     float64 // 比エンタルピー, J/kg
	_s_mass     float64 // 比エントロピー, J/kg K
	_r_specific float64 // 気体定数（普遍気体定数を平均モル質量で除したもの）, J/kg K
}

func NewPropertyValue(cp_mass float64, h_mass float64, s_mass float64, r_specific float64) *PropertyValue {
	return &PropertyValue{
		_cp_mass:    cp_mass,
		_h_mass:     h_mass,
		_s_mass:     s_mass,
		_r_specific: r_specific,
	}
}

// 定圧比熱, J/kg K
func (pv *PropertyValue) cp_mass() float64 {
	return pv._cp_mass
}

// 比エンタルピー, J/kg
func (pv *PropertyValue) h_mass() float64 {
	return pv._h_mass
}

// 比エントロピー, J/kg K
func (pv *PropertyValue) s_mass() float64 {
	return pv._s_mass
}

// 気体定数, J/kg K
func (pv *PropertyValue) r_specific() float64 {
	return pv._r_specific
}

// 全ての物性値が有限値であるか否かを判定する
func (pv *PropertyValue) is_finite() bool {
	for _, v := range []float64{pv._cp_mass, pv._h_mass, pv._s_mass, pv._r_specific} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

/*
物性評価関数

	Args:
		t: 温度, K
		p: 圧力, Pa
		composition: 組成（当てはめ計算からは不透明な文字列としてそのまま評価関数へ渡す）

	Returns:
		物性値

	Notes:
		1回の当てはめ計算の中では圧力と組成は固定し、温度のみを変化させて呼び出す。
		同じ (t, p, composition) に対しては決定的であることを前提とする。
*/
type PropertyEvaluator func(t float64, p float64, composition string) (*PropertyValue, error)
