package turbojet

// 比熱比, -
const gamma = 1.4

// 空気の定圧比熱, J/kg K
const c_p = 1004.5

// 燃料の低位発熱量, J/kg
const lhv = 43e6

// 燃焼器の燃焼効率, -
const eta_b = 0.98

// タービンから圧縮機への機械効率, -
const eta_m = 0.99

// 大気温度, K
const t_a = 288.15

// 大気圧, Pa
const p_a = 101325.0
