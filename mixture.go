package main

import (
	"fmt"
	"strconv"
	"strings"
)

/*
組成の文字列を質量分率のマップに変換する。

	Args:
		composition: "O2:0.232, N2:0.768" の形式の組成

	Returns:
		化学種名をキーとした質量分率（合計が1となるように正規化する）
*/
func parse_composition(composition string) (map[string]float64, error) {

	ws := make(map[string]float64)
	total := 0.0

	for _, part := range strings.Split(composition, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid composition entry: %q", part)
		}
		name := strings.TrimSpace(kv[0])
		w, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid mass fraction in composition entry %q: %w", part, err)
		}
		if w < 0.0 {
			return nil, fmt.Errorf("mass fraction of %s must not be negative, got %g", name, w)
		}
		if _, ok := ws[name]; ok {
			return nil, fmt.Errorf("species %s appears twice in composition", name)
		}
		ws[name] = w
		total += w
	}

	if total <= 0.0 {
		return nil, fmt.Errorf("composition %q has no positive mass fraction", composition)
	}

	// 正規化
	for name, w := range ws {
		ws[name] = w / total
	}

	return ws, nil
}

/*
化学種データの表から理想気体混合物の物性評価関数を作成する。

	Args:
		st: 化学種データの表

	Returns:
		物性評価関数

	Notes:
		組成は質量分率で指定する。平均モル質量は 1/M = Σ w_k / M_k で求め、
		定圧比熱・比エンタルピーは質量分率の加重和とする。
		比エントロピーは各化学種の分圧（モル分率×全圧）における値の加重和とし、
		理想気体の混合エントロピーを含む。
*/
func NewMixtureEvaluator(st *SpeciesTable) PropertyEvaluator {

	return func(t float64, p float64, composition string) (*PropertyValue, error) {

		if t <= 0.0 {
			return nil, fmt.Errorf("temperature must be positive, got %g K", t)
		}
		if p <= 0.0 {
			return nil, fmt.Errorf("pressure must be positive, got %g Pa", p)
		}

		ws, err := parse_composition(composition)
		if err != nil {
			return nil, err
		}

		// 平均モル質量の逆数, mol/kg
		m_inv := 0.0
		for name, w := range ws {
			sp, err := st.get(name)
			if err != nil {
				return nil, err
			}
			m_inv += w / sp.m()
		}

		cp := 0.0
		h := 0.0
		s := 0.0
		for name, w := range ws {
			if w == 0.0 {
				continue
			}
			sp, _ := st.get(name)

			// モル分率
			x := w / sp.m() / m_inv

			cp += w * sp.cp_mass(t)
			h += w * sp.h_mass(t)
			s += w * sp.s_mass(t, x*p)
		}

		return NewPropertyValue(cp, h, s, get_r_univ()*m_inv), nil
	}
}
