package main

import "fmt"

// 温度範囲の指定（下限・共通温度・上限・刻み幅）が不正な場合のエラー
type InvalidRangeError struct {
	reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid temperature range: %s", e.reason)
}

// 標本点の数が近似多項式の次数に対して不足している場合のエラー
type InsufficientSamplesError struct {
	n_sample   int
	n_required int
}

func (e *InsufficientSamplesError) Error() string {
	return fmt.Sprintf("insufficient samples: got %d points, need at least %d", e.n_sample, e.n_required)
}

// 物性評価関数がエラーを返した、又は非有限値を返した場合のエラー
// t は評価に失敗した温度, K
type PropertyEvaluationError struct {
	t   float64
	err error
}

func (e *PropertyEvaluationError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("property evaluation returned a non-finite value at t=%g K", e.t)
	}
	return fmt.Sprintf("property evaluation failed at t=%g K: %v", e.t, e.err)
}

func (e *PropertyEvaluationError) Unwrap() error {
	return e.err
}

// 最小二乗法の係数行列が階数落ちしている場合のエラー
type SingularFitError struct {
	reason string
}

func (e *SingularFitError) Error() string {
	return fmt.Sprintf("singular least-squares system: %s", e.reason)
}

// 基準温度が非正の場合のエラー（エントロピーの積分定数に ln(T_ref) が現れるため）
type InvalidReferenceTemperatureError struct {
	t_ref float64
}

func (e *InvalidReferenceTemperatureError) Error() string {
	return fmt.Sprintf("invalid reference temperature: t_ref=%g K must be positive", e.t_ref)
}
