package main

import (
	"fmt"
	"log"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"turbojet_calc/turbojet"
)

/*
タービン入口温度を等間隔に振った設計点を作成する。

Args
	base 基準とする入力パラメータ（Tt4 以外をそのまま使う）
	tt4_min タービン入口温度の下限, K
	tt4_max タービン入口温度の上限, K
	n 点数（2以上）
Returns
	設計点のリスト
*/
func make_tt4_sweep(base turbojet.Inputs, tt4_min, tt4_max float64, n int) ([]*DesignPoint, error) {
	if n < 2 {
		return nil, errors.Errorf("sweep needs at least 2 points, got %d", n)
	}
	if !(tt4_max > tt4_min) {
		return nil, errors.Errorf("tt4_max (%g) must be greater than tt4_min (%g)", tt4_max, tt4_min)
	}

	tt4_ns := floats.Span(make([]float64, n), tt4_min, tt4_max)

	pp := make([]*DesignPoint, n)
	for i, tt4 := range tt4_ns {
		pp[i] = &DesignPoint{
			Name: fmt.Sprintf("tt4_%d", i),
			PiC:  base.PiC,
			Tt4:  tt4,
			EtaC: base.EtaC,
			EtaT: base.EtaT,
			EtaN: base.EtaN,
			PiB:  base.PiB,
		}
	}

	return pp, nil
}

/*
比推力が最大となる計算結果を探す。

Args
	rows 計算結果のリスト
Returns
	比推力が最大の計算結果（成功した結果が無い場合は nil）
*/
func best_specific_thrust(rows []*ResultRow) *ResultRow {
	ok_rows := make([]*ResultRow, 0, len(rows))
	thrusts := make([]float64, 0, len(rows))
	for _, row := range rows {
		if row.Error != "" {
			continue
		}
		ok_rows = append(ok_rows, row)
		thrusts = append(thrusts, row.SpecificThrust)
	}

	if len(thrusts) == 0 {
		log.Printf("no successful point in sweep")
		return nil
	}

	return ok_rows[floats.MaxIdx(thrusts)]
}
