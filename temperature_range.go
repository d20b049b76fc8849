package main

// 低温域と高温域に分割した温度範囲
// 共通温度 t_common は低温域のグリッドには含めず、高温域のグリッドの先頭点とする（半開区間の規約）。
type TemperatureRange struct {
	_t_low    float64 // 下限温度, K
	_t_common float64 // 共通温度（低温域と高温域の境界）, K
	_t_high   float64 // 上限温度, K
	_t_step   float64 // グリッドの刻み幅, K
}

/*
温度範囲を作成する。

	Args:
		t_low: 下限温度, K
		t_common: 共通温度, K
		t_high: 上限温度, K
		t_step: 刻み幅, K

	Returns:
		温度範囲

	Notes:
		t_low < t_common < t_high かつ t_step > 0 でない場合は InvalidRangeError となる。
*/
func NewTemperatureRange(t_low float64, t_common float64, t_high float64, t_step float64) (*TemperatureRange, error) {

	if t_step <= 0.0 {
		return nil, &InvalidRangeError{reason: "t_step must be positive"}
	}
	if t_low >= t_common {
		return nil, &InvalidRangeError{reason: "t_low must be less than t_common"}
	}
	if t_common >= t_high {
		return nil, &InvalidRangeError{reason: "t_common must be less than t_high"}
	}

	return &TemperatureRange{
		_t_low:    t_low,
		_t_common: t_common,
		_t_high:   t_high,
		_t_step:   t_step,
	}, nil
}

// 下限温度, K
func (tr *TemperatureRange) t_low() float64 {
	return tr._t_low
}

// 共通温度, K
func (tr *TemperatureRange) t_common() float64 {
	return tr._t_common
}

// 上限温度, K
func (tr *TemperatureRange) t_high() float64 {
	return tr._t_high
}

// 刻み幅, K
func (tr *TemperatureRange) t_step() float64 {
	return tr._t_step
}

// 低温域の温度グリッド [t_low, t_common), K
func (tr *TemperatureRange) low_grid() []float64 {
	return make_grid(tr._t_low, tr._t_common, tr._t_step)
}

// 高温域の温度グリッド [t_common, t_high), K
func (tr *TemperatureRange) high_grid() []float64 {
	return make_grid(tr._t_common, tr._t_high, tr._t_step)
}

/*
等間隔の温度グリッドを作成する。

	Args:
		t_start: 開始温度（グリッドに含む）, K
		t_end: 終了温度（グリッドに含まない）, K
		t_step: 刻み幅, K

	Returns:
		温度グリッド, K

	Notes:
		浮動小数点誤差の蓄積を避けるため t_start + k * t_step の形で生成する。
*/
func make_grid(t_start float64, t_end float64, t_step float64) []float64 {

	ts := make([]float64, 0)
	for k := 0; ; k++ {
		t := t_start + float64(k)*t_step
		if t >= t_end {
			break
		}
		ts = append(ts, t)
	}

	return ts
}
