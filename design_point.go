package main

import (
	"log"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"turbojet_calc/turbojet"
)

// 設計点ファイルの1行
type DesignPoint struct {
	Name string  `csv:"name"`
	PiC  float64 `csv:"pi_c"`
	Tt4  float64 `csv:"tt4"`
	EtaC float64 `csv:"eta_c"`
	EtaT float64 `csv:"eta_t"`
	EtaN float64 `csv:"eta_n"`
	PiB  float64 `csv:"pi_b"`
}

func (p *DesignPoint) inputs() turbojet.Inputs {
	return turbojet.Inputs{
		PiC:  p.PiC,
		Tt4:  p.Tt4,
		EtaC: p.EtaC,
		EtaT: p.EtaT,
		EtaN: p.EtaN,
		PiB:  p.PiB,
	}
}

// 計算結果ファイルの1行
type ResultRow struct {
	Name            string  `csv:"name"`
	PiC             float64 `csv:"pi_c"`
	Tt4             float64 `csv:"tt4"`
	EtaC            float64 `csv:"eta_c"`
	EtaT            float64 `csv:"eta_t"`
	EtaN            float64 `csv:"eta_n"`
	PiB             float64 `csv:"pi_b"`
	FuelAirRatio    float64 `csv:"fuel_air_ratio"`
	ExhaustVelocity float64 `csv:"exhaust_velocity"`
	SpecificThrust  float64 `csv:"specific_thrust"`
	Error           string  `csv:"error"`
}

/*
設計点ファイルを読み込む。

Args
	file_path 設計点ファイル（CSV）のパス
Returns
	設計点のリスト
*/
func read_design_points(file_path string) ([]*DesignPoint, error) {
	file, err := os.Open(file_path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open design point file `%s`", file_path)
	}
	defer file.Close()

	var pp []*DesignPoint
	if err := gocsv.UnmarshalFile(file, &pp); err != nil {
		return nil, errors.Wrapf(err, "failed to parse design point file `%s`", file_path)
	}

	if len(pp) == 0 {
		return nil, errors.Errorf("design point file `%s` has no rows", file_path)
	}

	return pp, nil
}

/*
設計点ごとにサイクルを計算する。

Args
	pp 設計点のリスト
Returns
	計算結果のリスト（設計点と同じ順序）

Notes
	各設計点は独立に計算する。失敗した設計点は出力を0とし、error 列に理由を残す。
*/
func evaluate_design_points(pp []*DesignPoint) []*ResultRow {
	rows := make([]*ResultRow, len(pp))
	n_failed := 0
	for i, p := range pp {
		row := &ResultRow{
			Name: p.Name,
			PiC:  p.PiC,
			Tt4:  p.Tt4,
			EtaC: p.EtaC,
			EtaT: p.EtaT,
			EtaN: p.EtaN,
			PiB:  p.PiB,
		}

		c, err := turbojet.EvaluateCycle(p.inputs())
		if err != nil {
			log.Printf("design point `%s`: %v", p.Name, err)
			row.Error = err.Error()
			n_failed++
		} else {
			row.FuelAirRatio = c.FuelAirRatio
			row.ExhaustVelocity = c.ExhaustVelocity
			row.SpecificThrust = c.SpecificThrust
		}
		rows[i] = row
	}

	log.Printf("%d design points evaluated, %d failed", len(pp), n_failed)

	return rows
}

/*
計算結果をCSVファイルに保存する。

Args
	file_path 出力ファイルのパス
	rows 計算結果のリスト
*/
func write_results(file_path string, rows []*ResultRow) error {
	file, err := os.Create(file_path)
	if err != nil {
		return errors.Wrapf(err, "failed to create result file `%s`", file_path)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return errors.Wrapf(err, "failed to write result file `%s`", file_path)
	}

	return nil
}
