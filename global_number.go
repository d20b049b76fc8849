package main

// 普遍気体定数, J/mol K
func get_r_univ() float64 {
	return 8.31446261815324
}

// 基準温度, K
func get_t_ref() float64 {
	return 298.15
}

// 標準大気圧, Pa
func get_p_atm() float64 {
	return 101325.0
}

// 近似多項式の次数（NASA/JANAF形式の7係数多項式では4に固定）
func get_n_deg() int {
	return 4
}

// 近似に必要な最小の標本点数（次数+1）
func get_n_sample_min() int {
	return get_n_deg() + 1
}
