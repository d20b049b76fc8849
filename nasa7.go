package main

import "math"

// NASA/JANAF形式の7係数（1温度域分）
// a[0]..a[4] が Cp/R の多項式係数（昇べき順）、a[5] がエンタルピーの積分定数、
// a[6] がエントロピーの積分定数。
type Nasa7 [7]float64

// 無次元定圧比熱 Cp/R
func (c *Nasa7) cp_over_r(t float64) float64 {
	return c[0] + t*(c[1]+t*(c[2]+t*(c[3]+t*c[4])))
}

// 無次元エンタルピー H/(R T)
func (c *Nasa7) h_over_rt(t float64) float64 {
	return c[0] + t*(c[1]/2.0+t*(c[2]/3.0+t*(c[3]/4.0+t*c[4]/5.0))) + c[5]/t
}

// 無次元エントロピー S/R（標準圧力における値）
func (c *Nasa7) s_over_r(t float64) float64 {
	return c[0]*math.Log(t) + t*(c[1]+t*(c[2]/2.0+t*(c[3]/3.0+t*c[4]/4.0))) + c[6]
}

// 低温域と高温域の2温度域からなるNASA/JANAF形式の多項式
type Nasa7Poly struct {
	_t_low    float64 // 下限温度, K
	_t_common float64 // 共通温度, K
	_t_high   float64 // 上限温度, K
	_low      Nasa7   // 低温域の係数
	_high     Nasa7   // 高温域の係数
}

func NewNasa7Poly(t_low float64, t_common float64, t_high float64, low Nasa7, high Nasa7) *Nasa7Poly {
	return &Nasa7Poly{
		_t_low:    t_low,
		_t_common: t_common,
		_t_high:   t_high,
		_low:      low,
		_high:     high,
	}
}

// 低温域の係数
func (p *Nasa7Poly) low() *Nasa7 {
	return &p._low
}

// 高温域の係数
func (p *Nasa7Poly) high() *Nasa7 {
	return &p._high
}

// 共通温度, K
func (p *Nasa7Poly) t_common() float64 {
	return p._t_common
}

/*
温度に応じて適用する温度域の係数を選択する。

	Args:
		t: 温度, K

	Returns:
		7係数

	Notes:
		共通温度未満は低温域、共通温度以上は高温域の係数を用いる
		（共通温度は高温域の先頭点とする半開区間の規約に合わせる）。
*/
func (p *Nasa7Poly) select_coeffs(t float64) *Nasa7 {
	if t < p._t_common {
		return &p._low
	}
	return &p._high
}
