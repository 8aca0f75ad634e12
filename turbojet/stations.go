package turbojet

import "math"

/*
インレット出口（ステーション2）の全温・全圧を求める。

	Returns:
		(1) インレット出口の全温, K
		(2) インレット出口の全圧, Pa

	Notes:
		インレットでの損失は考慮しない。
*/
func get_inlet() (t_t2, p_t2 float64) {
	return t_a, p_a
}

/*
圧縮機出口（ステーション3）の状態を求める。

	Args:
		t_t2: 圧縮機入口の全温, K
		p_t2: 圧縮機入口の全圧, Pa
		pi_c: 圧縮機の圧力比, -
		eta_c: 圧縮機の断熱効率, -

	Returns:
		(1) 圧縮機出口の全温, K
		(2) 圧縮機出口の全圧, Pa
		(3) 圧縮機の比仕事, J/kg

	Notes:
		効率は温度上昇分に対して適用する。
*/
func get_compressor(t_t2, p_t2, pi_c, eta_c float64) (t_t3, p_t3, w_c float64) {
	// 等エントロピー圧縮時の出口全温, K
	t_t3_ideal := t_t2 * math.Pow(pi_c, (gamma-1.0)/gamma)

	t_t3 = t_t2 + (t_t3_ideal-t_t2)/eta_c
	p_t3 = p_t2 * pi_c
	w_c = c_p * (t_t3 - t_t2)

	return t_t3, p_t3, w_c
}

/*
燃焼器出口（ステーション4）の全圧と燃空比を求める。

	Args:
		t_t3: 燃焼器入口の全温, K
		p_t3: 燃焼器入口の全圧, Pa
		t_t4: タービン入口温度, K
		pi_b: 燃焼器の圧力比, -

	Returns:
		(1) 燃焼器出口の全圧, Pa
		(2) 燃空比, -
*/
func get_combustor(t_t3, p_t3, t_t4, pi_b float64) (p_t4, f float64) {
	p_t4 = p_t3 * pi_b
	f = c_p * (t_t4 - t_t3) / (eta_b*lhv - c_p*t_t4)
	return p_t4, f
}

/*
タービンの比仕事とタービン出口全温を求める。

	Args:
		w_c: 圧縮機の比仕事, J/kg
		t_t4: タービン入口温度, K

	Returns:
		(1) タービンの比仕事, J/kg
		(2) タービン出口の全温, K

	Notes:
		タービンは機械効率を介して圧縮機の仕事だけを賄う。軸出力は取り出さない。
*/
func get_turbine_work(w_c, t_t4 float64) (w_t, t_t5 float64) {
	w_t = w_c / eta_m
	t_t5 = t_t4 - w_t/c_p
	return w_t, t_t5
}

/*
タービン出口の全圧を求める。

	Args:
		p_t4: タービン入口の全圧, Pa
		t_t4: タービン入口温度, K
		w_t: タービンの比仕事, J/kg
		eta_t: タービンの断熱効率, -

	Returns:
		(1) 等エントロピー膨張時のタービン出口全温, K
		(2) タービン出口の全圧, Pa
*/
func get_turbine_pressure(p_t4, t_t4, w_t, eta_t float64) (t_t5s, p_t5 float64) {
	t_t5s = t_t4 - w_t/(c_p*eta_t)
	p_t5 = p_t4 * math.Pow(t_t5s/t_t4, gamma/(gamma-1.0))
	return t_t5s, p_t5
}

/*
ノズルで大気圧まで膨張させたときの排気速度を求める。

	Args:
		t_t5: ノズル入口の全温, K
		p_t5: ノズル入口の全圧, Pa
		eta_n: ノズル効率, -

	Returns:
		(1) 等エントロピー膨張時のノズル出口静温, K
		(2) 等エントロピー膨張時の排気速度, m/s
		(3) 排気速度, m/s

	Notes:
		ノズル効率は運動エネルギーに対して定義されるため、速度にはその平方根を掛ける。
*/
func get_nozzle(t_t5, p_t5, eta_n float64) (t_e_s, v_e_s, v_e float64) {
	t_e_s = t_t5 * math.Pow(p_a/p_t5, (gamma-1.0)/gamma)
	v_e_s = math.Sqrt(2.0 * c_p * (t_t5 - t_e_s))
	v_e = math.Sqrt(eta_n) * v_e_s
	return t_e_s, v_e_s, v_e
}
