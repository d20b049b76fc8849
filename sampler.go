package main

import "math"

/*
温度グリッド上で定圧比熱をサンプリングする。

	Args:
		eval: 物性評価関数
		ts: 温度グリッド, K
		p: 圧力, Pa
		composition: 組成

	Returns:
		各温度における定圧比熱, J/kg K

	Notes:
		標本点が次数+1（=5）点未満の場合は連立方程式が不定となるため InsufficientSamplesError となる。
		評価関数がエラー又は非有限値を返した場合はその温度を保持した PropertyEvaluationError となる。
		非有限の標本を取り除いて続行すると回帰の条件数が黙って変わってしまうため、必ず中断する。
*/
func sample_cp(eval PropertyEvaluator, ts []float64, p float64, composition string) ([]float64, error) {

	if len(ts) < get_n_sample_min() {
		return nil, &InsufficientSamplesError{n_sample: len(ts), n_required: get_n_sample_min()}
	}

	cps := make([]float64, len(ts))
	for i, t := range ts {
		pv, err := eval(t, p, composition)
		if err != nil {
			return nil, &PropertyEvaluationError{t: t, err: err}
		}
		cp := pv.cp_mass()
		if math.IsNaN(cp) || math.IsInf(cp, 0) {
			return nil, &PropertyEvaluationError{t: t}
		}
		cps[i] = cp
	}

	return cps, nil
}
