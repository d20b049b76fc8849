package main

import (
	"os"

	"github.com/gocarina/gocsv"
)

// 当てはめ結果CSVファイルの1行
// 列の並びは化学種データCSVファイルと揃える。
type FitResultRow struct {
	Name    string  `csv:"name"`
	TLow    float64 `csv:"t_low"`
	TCommon float64 `csv:"t_common"`
	THigh   float64 `csv:"t_high"`
	TRef    float64 `csv:"t_ref"`
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

/*
当てはめ結果から出力行を作成する。

	Args:
		name: 出力に記載する名前（化学種名又は混合物の組成）
		tr: 当てはめに用いた温度範囲
		t_ref: 基準温度, K
		fr: 当てはめ結果

	Returns:
		当てはめ結果の行
*/
func make_fit_result_row(name string, tr *TemperatureRange, t_ref float64, fr *FitResult) *FitResultRow {

	low_coeffs := fr.low_coeffs()
	high_coeffs := fr.high_coeffs()

	return &FitResultRow{
		Name:    name,
		TLow:    tr.t_low(),
		TCommon: tr.t_common(),
		THigh:   tr.t_high(),
		TRef:    t_ref,
		LowA1:   low_coeffs[0],
		LowA2:   low_coeffs[1],
		LowA3:   low_coeffs[2],
		LowA4:   low_coeffs[3],
		LowA5:   low_coeffs[4],
		LowA6:   fr.low_h_offset(),
		LowA7:   fr.low_s_offset(),
		HighA1:  high_coeffs[0],
		HighA2:  high_coeffs[1],
		HighA3:  high_coeffs[2],
		HighA4:  high_coeffs[3],
		HighA5:  high_coeffs[4],
		HighA6:  fr.high_h_offset(),
		HighA7:  fr.high_s_offset(),
	}
}

/*
当てはめ結果をCSVファイルに保存する。

	Args:
		file_path: 出力ファイルへのパス
		name: 出力に記載する名前
		tr: 当てはめに用いた温度範囲
		t_ref: 基準温度, K
		fr: 当てはめ結果
*/
func record_fit_result(file_path string, name string, tr *TemperatureRange, t_ref float64, fr *FitResult) error {

	file, err := os.Create(file_path)
	if err != nil {
		return err
	}
	defer file.Close()

	rows := []*FitResultRow{make_fit_result_row(name, tr, t_ref, fr)}

	return gocsv.MarshalFile(&rows, file)
}
