package main

import (
	"flag"
	"fmt"
	"log"
	"time"
)

type Config struct {
	SpeciesDataPath string
	Composition     string
	Pressure        float64
	TLow            float64
	TCommon         float64
	THigh           float64
	TStep           float64
	TRef            float64
	OutputDataPath  string
}

/*
当てはめ処理の実行

	Args:
		conf: 実行時の設定
*/
func run(conf Config) {

	// ---- 事前準備 ----

	// 化学種データCSVファイルの読み込み
	log.Printf("化学種データCSVファイルの読み込み開始")
	st, err := NewSpeciesTableFromCsv(conf.SpeciesDataPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("化学種データの数: %d", st.number_of_species())

	// 物性評価関数の作成
	eval := NewMixtureEvaluator(st)

	// 温度範囲の作成
	tr, err := NewTemperatureRange(conf.TLow, conf.TCommon, conf.THigh, conf.TStep)
	if err != nil {
		log.Fatal(err)
	}

	// ---- 当てはめ計算 ----

	log.Printf("7係数多項式の当てはめ開始")
	fr, err := fit_janaf(eval, conf.Pressure, conf.Composition, tr, FitConfig{TRef: conf.TRef})
	if err != nil {
		log.Fatal(err)
	}

	// ---- 計算結果ファイルの保存 ----

	log.Printf("Save fit result to `%s`", conf.OutputDataPath)
	t_ref := conf.TRef
	if t_ref == 0.0 {
		t_ref = get_t_ref()
	}
	if err := record_fit_result(conf.OutputDataPath, conf.Composition, tr, t_ref, fr); err != nil {
		log.Fatal(err)
	}
}

func main() {
	var species_data string
	flag.StringVar(&species_data, "input", "example/species_example.csv", "化学種データCSVファイル")

	var composition string
	flag.StringVar(&composition, "composition", "O2:0.232, N2:0.768", "質量分率で指定する組成")

	var pressure float64
	flag.Float64Var(&pressure, "pressure", get_p_atm(), "圧力, Pa")

	var t_low float64
	flag.Float64Var(&t_low, "t_low", 200.0, "下限温度, K")

	var t_common float64
	flag.Float64Var(&t_common, "t_common", 1000.0, "共通温度, K")

	var t_high float64
	flag.Float64Var(&t_high, "t_high", 3500.0, "上限温度, K")

	var t_step float64
	flag.Float64Var(&t_step, "t_step", 100.0, "温度グリッドの刻み幅, K")

	var t_ref float64
	flag.Float64Var(&t_ref, "t_ref", get_t_ref(), "基準温度, K")

	var output_data_path string
	flag.StringVar(&output_data_path, "o", "fit_result.csv", "出力ファイル")

	// 引数を受け取る
	flag.Parse()

	// Print flag values
	fmt.Printf("species_data: %s\n", species_data)
	fmt.Printf("composition: %s\n", composition)
	fmt.Printf("pressure: %f\n", pressure)
	fmt.Printf("t_low: %f\n", t_low)
	fmt.Printf("t_common: %f\n", t_common)
	fmt.Printf("t_high: %f\n", t_high)
	fmt.Printf("t_step: %f\n", t_step)
	fmt.Printf("t_ref: %f\n", t_ref)

	start := time.Now()

	run(Config{
		SpeciesDataPath: species_data,
		Composition:     composition,
		Pressure:        pressure,
		TLow:            t_low,
		TCommon:         t_common,
		THigh:           t_high,
		TStep:           t_step,
		TRef:            t_ref,
		OutputDataPath:  output_data_path,
	})

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}
