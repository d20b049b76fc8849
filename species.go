package main

import (
	"fmt"
	"math"
	"os"

	"github.com/gocarina/gocsv"
)

// 化学種データCSVファイルの1行
// 係数は低温域・高温域それぞれ a1..a7 を昇べき順で並べる。
type SpeciesDataRow struct {
	Name    string  `csv:"name"`
	M       float64 `csv:"molecular_weight"` // モル質量, g/mol
	TLow    float64 `csv:"t_low"`            // 下限温度, K
	TCommon float64 `csv:"t_common"`         // 共通温度, K
	THigh   float64 `csv:"t_high"`           // 上限温度, K
	LowA1   float64 `csv:"low_a1"`
	LowA2   float64 `csv:"low_a2"`
	LowA3   float64 `csv:"low_a3"`
	LowA4   float64 `csv:"low_a4"`
	LowA5   float64 `csv:"low_a5"`
	LowA6   float64 `csv:"low_a6"`
	LowA7   float64 `csv:"low_a7"`
	HighA1  float64 `csv:"high_a1"`
	HighA2  float64 `csv:"high_a2"`
	HighA3  float64 `csv:"high_a3"`
	HighA4  float64 `csv:"high_a4"`
	HighA5  float64 `csv:"high_a5"`
	HighA6  float64 `csv:"high_a6"`
	HighA7  float64 `csv:"high_a7"`
}

// 化学種
type Species struct {
	_name string    // 化学種名
	_m    float64   // モル質量, kg/mol
	_poly *Nasa7Poly // 2温度域の7係数多項式
}

// 化学種名
func (sp *Species) name() string {
	return sp._name
}

// モル質量, kg/mol
func (sp *Species) m() float64 {
	return sp._m
}

// 気体定数, J/kg K
func (sp *Species) r_specific() float64 {
	return get_r_univ() / sp._m
}

// 定圧比熱, J/kg K
func (sp *Species) cp_mass(t float64) float64 {
	return sp._poly.select_coeffs(t).cp_over_r(t) * sp.r_specific()
}

// 比エンタルピー, J/kg
func (sp *Species) h_mass(t float64) float64 {
	return sp._poly.select_coeffs(t).h_over_rt(t) * sp.r_specific() * t
}

/*
比エントロピーを計算する。

	Args:
		t: 温度, K
		p_partial: 分圧, Pa

	Returns:
		比エントロピー, J/kg K

	Notes:
		理想気体の圧力依存 -R ln(p/p0) を標準圧力の値に加える。
*/
func (sp *Species) s_mass(t float64, p_partial float64) float64 {
	r := sp.r_specific()
	return (sp._poly.select_coeffs(t).s_over_r(t) - math.Log(p_partial/get_p_atm())) * r
}

// 化学種データの表
type SpeciesTable struct {
	_species map[string]*Species
}

/*
化学種データの行から表を作成する。

	Args:
		rows: 化学種データの行

	Returns:
		化学種データの表
*/
func NewSpeciesTable(rows []*SpeciesDataRow) (*SpeciesTable, error) {

	species := make(map[string]*Species, len(rows))
	for _, row := range rows {
		if row.Name == "" {
			return nil, fmt.Errorf("species name must not be empty")
		}
		if row.M <= 0.0 {
			return nil, fmt.Errorf("molecular weight of species %s must be positive, got %g", row.Name, row.M)
		}
		if _, ok := species[row.Name]; ok {
			return nil, fmt.Errorf("species %s is defined twice", row.Name)
		}
		low := Nasa7{row.LowA1, row.LowA2, row.LowA3, row.LowA4, row.LowA5, row.LowA6, row.LowA7}
		high := Nasa7{row.HighA1, row.HighA2, row.HighA3, row.HighA4, row.HighA5, row.HighA6, row.HighA7}
		species[row.Name] = &Species{
			_name: row.Name,
			_m:    row.M / 1000.0, // g/mol -> kg/mol
			_poly: NewNasa7Poly(row.TLow, row.TCommon, row.THigh, low, high),
		}
	}

	return &SpeciesTable{_species: species}, nil
}

/*
化学種データCSVファイルを読み込む。

	Args:
		file_path: 化学種データCSVファイルへのパス

	Returns:
		化学種データの表
*/
func NewSpeciesTableFromCsv(file_path string) (*SpeciesTable, error) {

	file, err := os.Open(file_path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rows []*SpeciesDataRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("failed to read species data file %s: %w", file_path, err)
	}

	return NewSpeciesTable(rows)
}

/*
名前から化学種を取得する。

	Args:
		name: 化学種名

	Returns:
		化学種
*/
func (st *SpeciesTable) get(name string) (*Species, error) {
	sp, ok := st._species[name]
	if !ok {
		return nil, fmt.Errorf("unknown species: %s", name)
	}
	return sp, nil
}

// 化学種の数
func (st *SpeciesTable) number_of_species() int {
	return len(st._species)
}
