package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"turbojet_calc/turbojet"
)

type Config struct {
	Inputs        turbojet.Inputs
	InputDataPath string
	OutputDataDir string
	Tt4Min        float64
	Tt4Max        float64
	Tt4N          int
}

/*
サイクル計算の実行

    Args:
        cfg: 実行条件

    Notes:
        InputDataPath が指定された場合は設計点ファイルの各行を、
        Tt4N が指定された場合はタービン入口温度を振った各点を計算し、CSVに保存する。
        いずれも指定されない場合は1点だけ計算して標準出力に表示する。
*/
func run(cfg Config) error {
	if cfg.InputDataPath == "" && cfg.Tt4N == 0 {
		ve, thrust, err := turbojet.EvaluatePerformance(
			cfg.Inputs.PiC,
			cfg.Inputs.Tt4,
			cfg.Inputs.EtaC,
			cfg.Inputs.EtaT,
			cfg.Inputs.EtaN,
			cfg.Inputs.PiB,
		)
		if err != nil {
			return err
		}
		fmt.Printf("exhaust_velocity: %g [m/s]\n", ve)
		fmt.Printf("specific_thrust: %g [N s/kg]\n", thrust)
		return nil
	}

	// ---- 事前準備 ----

	// 出力ディレクトリの作成
	if err := os.MkdirAll(cfg.OutputDataDir, 0755); err != nil {
		return errors.Wrapf(err, "`%s` is not a directory", cfg.OutputDataDir)
	}

	// ---- 計算 ----

	if cfg.InputDataPath != "" {
		log.Printf("Load design points from `%s`", cfg.InputDataPath)
		pp, err := read_design_points(cfg.InputDataPath)
		if err != nil {
			return err
		}

		rows := evaluate_design_points(pp)

		result_path := filepath.Join(cfg.OutputDataDir, "result.csv")
		log.Printf("Save calculation results to `%s`", result_path)
		if err := write_results(result_path, rows); err != nil {
			return err
		}
	}

	if cfg.Tt4N != 0 {
		log.Printf("Tt4 sweep %g K - %g K, %d points", cfg.Tt4Min, cfg.Tt4Max, cfg.Tt4N)
		pp, err := make_tt4_sweep(cfg.Inputs, cfg.Tt4Min, cfg.Tt4Max, cfg.Tt4N)
		if err != nil {
			return err
		}

		rows := evaluate_design_points(pp)
		if best := best_specific_thrust(rows); best != nil {
			log.Printf("max specific thrust %g N s/kg at Tt4 = %g K", best.SpecificThrust, best.Tt4)
		}

		sweep_path := filepath.Join(cfg.OutputDataDir, "sweep.csv")
		log.Printf("Save sweep results to `%s`", sweep_path)
		if err := write_results(sweep_path, rows); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	var cfg Config

	flag.Float64Var(&cfg.Inputs.PiC, "pi_c", 10.0, "圧縮機の圧力比")
	flag.Float64Var(&cfg.Inputs.Tt4, "tt4", 1400.0, "タービン入口温度, K")
	flag.Float64Var(&cfg.Inputs.EtaC, "eta_c", 0.85, "圧縮機の断熱効率")
	flag.Float64Var(&cfg.Inputs.EtaT, "eta_t", 0.9, "タービンの断熱効率")
	flag.Float64Var(&cfg.Inputs.EtaN, "eta_n", 0.97, "ノズル効率")
	flag.Float64Var(&cfg.Inputs.PiB, "pi_b", 0.95, "燃焼器の圧力比")

	flag.StringVar(&cfg.InputDataPath, "input", "", "設計点を記述したCSVファイル")
	flag.StringVar(&cfg.OutputDataDir, "o", ".", "出力フォルダ")

	flag.Float64Var(&cfg.Tt4Min, "tt4_min", 1000.0, "スイープするタービン入口温度の下限, K")
	flag.Float64Var(&cfg.Tt4Max, "tt4_max", 2000.0, "スイープするタービン入口温度の上限, K")
	flag.IntVar(&cfg.Tt4N, "tt4_n", 0, "スイープの点数。0の場合はスイープしない。")

	// 引数を受け取る
	flag.Parse()

	start := time.Now()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}
