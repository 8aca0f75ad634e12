// Package turbojet evaluates the design-point cycle of an ideal single-spool
// turbojet with constant specific heats.
package turbojet

// Inputs holds the six cycle parameters of one evaluation.
type Inputs struct {
	PiC  float64 // 圧縮機の圧力比, -
	Tt4  float64 // タービン入口温度, K
	EtaC float64 // 圧縮機の断熱効率, -
	EtaT float64 // タービンの断熱効率, -
	EtaN float64 // ノズル効率, -
	PiB  float64 // 燃焼器の圧力比, -
}

// Cycle is the station-by-station state of one successful evaluation.
type Cycle struct {
	Inputs

	Tt2 float64 // インレット出口の全温, K
	Pt2 float64 // インレット出口の全圧, Pa

	Tt3 float64 // 圧縮機出口の全温, K
	Pt3 float64 // 圧縮機出口の全圧, Pa
	Wc  float64 // 圧縮機の比仕事, J/kg

	Pt4          float64 // 燃焼器出口の全圧, Pa
	FuelAirRatio float64 // 燃空比, -

	Wt   float64 // タービンの比仕事, J/kg
	Tt5  float64 // タービン出口の全温, K
	Tt5s float64 // 等エントロピー膨張時のタービン出口全温, K
	Pt5  float64 // タービン出口の全圧, Pa

	TeS float64 // 等エントロピー膨張時のノズル出口静温, K
	VeS float64 // 等エントロピー膨張時の排気速度, m/s

	ExhaustVelocity float64 // 排気速度, m/s
	SpecificThrust  float64 // 比推力（単位空気流量あたりの推力）, N s/kg
}

/*
サイクルを一回の前進計算で解く。

	Args:
		in: 入力パラメータ

	Returns:
		各ステーションの状態
		妥当性の判定に失敗した場合は *CycleError

	Notes:
		判定は次の順に行い、最初に失敗したもので打ち切る。
		  (0) 圧縮機の圧力比が 1 以下
		  (1) 燃空比が負
		  (2) タービン出口全温が負
		  (3) タービン出口全圧が大気圧以下
		比較は NaN も失敗側に倒れるように書いている。
*/
func EvaluateCycle(in Inputs) (*Cycle, error) {
	if !(in.PiC > 1.0) {
		return nil, &CycleError{Kind: InvalidPressureRatio, Value: in.PiC}
	}

	c := &Cycle{Inputs: in}

	// インレット
	c.Tt2, c.Pt2 = get_inlet()

	// 圧縮機
	c.Tt3, c.Pt3, c.Wc = get_compressor(c.Tt2, c.Pt2, in.PiC, in.EtaC)

	// 燃焼器
	c.Pt4, c.FuelAirRatio = get_combustor(c.Tt3, c.Pt3, in.Tt4, in.PiB)
	if !(c.FuelAirRatio >= 0.0) {
		return nil, &CycleError{Kind: NegativeFuelAirRatio, Value: c.FuelAirRatio}
	}

	// タービン
	c.Wt, c.Tt5 = get_turbine_work(c.Wc, in.Tt4)
	if !(c.Tt5 >= 0.0) {
		return nil, &CycleError{Kind: NegativeTurbineExitTemperature, Value: c.Tt5}
	}

	c.Tt5s, c.Pt5 = get_turbine_pressure(c.Pt4, in.Tt4, c.Wt, in.EtaT)
	if !(c.Pt5 > p_a) {
		return nil, &CycleError{Kind: SubambientTurbineExitPressure, Value: c.Pt5}
	}

	// ノズル
	c.TeS, c.VeS, c.ExhaustVelocity = get_nozzle(c.Tt5, c.Pt5, in.EtaN)

	// 燃料の質量分だけ流量が増える
	c.SpecificThrust = (1.0 + c.FuelAirRatio) * c.ExhaustVelocity

	return c, nil
}

/*
排気速度と比推力を求める。

	Args:
		pi_c: 圧縮機の圧力比, -
		tt4: タービン入口温度, K
		eta_c: 圧縮機の断熱効率, -
		eta_t: タービンの断熱効率, -
		eta_n: ノズル効率, -
		pi_b: 燃焼器の圧力比, -

	Returns:
		(1) 排気速度, m/s
		(2) 比推力, N s/kg
		(3) *CycleError（失敗時。このとき (1)(2) は 0）
*/
func EvaluatePerformance(pi_c, tt4, eta_c, eta_t, eta_n, pi_b float64) (float64, float64, error) {
	c, err := EvaluateCycle(Inputs{
		PiC:  pi_c,
		Tt4:  tt4,
		EtaC: eta_c,
		EtaT: eta_t,
		EtaN: eta_n,
		PiB:  pi_b,
	})
	if err != nil {
		return 0, 0, err
	}
	return c.ExhaustVelocity, c.SpecificThrust, nil
}
