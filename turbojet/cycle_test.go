package turbojet

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reference_inputs() Inputs {
	return Inputs{PiC: 10.0, Tt4: 1400.0, EtaC: 0.85, EtaT: 0.9, EtaN: 0.97, PiB: 0.95}
}

func TestEvaluatePerformance(t *testing.T) {
	ve, thrust, err := EvaluatePerformance(10.0, 1400.0, 0.85, 0.9, 0.97, 0.95)
	require.NoError(t, err)

	assert.False(t, math.IsNaN(ve) || math.IsInf(ve, 0))
	assert.False(t, math.IsNaN(thrust) || math.IsInf(thrust, 0))
	assert.Greater(t, ve, 0.0)
	assert.Greater(t, thrust, 0.0)
	assert.InDelta(t, 790.3728722279754, ve, 1e-6)
	assert.InDelta(t, 805.8941878175683, thrust, 1e-6)
}

func TestEvaluatePerformanceRuns(t *testing.T) {
	ve, thrust, err := EvaluatePerformance(20.0, 1600.0, 0.9, 0.92, 0.95, 0.95)
	require.NoError(t, err)
	assert.Greater(t, ve, 0.0)
	assert.Greater(t, thrust, 0.0)
}

func TestEvaluateCycleStations(t *testing.T) {
	c, err := EvaluateCycle(reference_inputs())
	require.NoError(t, err)

	assert.Equal(t, t_a, c.Tt2)
	assert.Equal(t, p_a, c.Pt2)
	assert.InDelta(t, 603.6565300914217, c.Tt3, 1e-9)
	assert.Equal(t, p_a*10.0, c.Pt3)
	assert.Equal(t, c.Pt3*0.95, c.Pt4)
	assert.InDelta(t, 0.019637965996783177, c.FuelAirRatio, 1e-12)
	assert.Equal(t, c.Wc/eta_m, c.Wt)

	// 温度・圧力は順に下がっていく
	assert.Greater(t, c.Tt3, c.Tt2)
	assert.Less(t, c.Tt5, c.Inputs.Tt4)
	assert.Less(t, c.Tt5s, c.Tt5)
	assert.Greater(t, c.Pt5, p_a)
	assert.Less(t, c.Pt5, c.Pt4)
	assert.Less(t, c.TeS, c.Tt5)
	assert.Less(t, c.ExhaustVelocity, c.VeS)
}

func TestSpecificThrustIncludesFuelMass(t *testing.T) {
	for _, tt4 := range []float64{900.0, 1200.0, 1400.0, 1800.0, 2000.0} {
		in := reference_inputs()
		in.Tt4 = tt4
		c, err := EvaluateCycle(in)
		require.NoError(t, err)

		assert.Equal(t, (1.0+c.FuelAirRatio)*c.ExhaustVelocity, c.SpecificThrust)

		ve, thrust, err := EvaluatePerformance(in.PiC, in.Tt4, in.EtaC, in.EtaT, in.EtaN, in.PiB)
		require.NoError(t, err)
		assert.Equal(t, c.ExhaustVelocity, ve)
		assert.Equal(t, c.SpecificThrust, thrust)
	}
}

func TestDeterministic(t *testing.T) {
	ve1, thrust1, err1 := EvaluatePerformance(20.0, 1600.0, 0.9, 0.92, 0.95, 0.95)
	ve2, thrust2, err2 := EvaluatePerformance(20.0, 1600.0, 0.9, 0.92, 0.95, 0.95)
	require.NoError(t, err1)
	require.NoError(t, err2)

	assert.Equal(t, math.Float64bits(ve1), math.Float64bits(ve2))
	assert.Equal(t, math.Float64bits(thrust1), math.Float64bits(thrust2))
}

func TestConcurrentCalls(t *testing.T) {
	want, err := EvaluateCycle(reference_inputs())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*Cycle, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = EvaluateCycle(reference_inputs())
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestThrustIncreasesWithTt4(t *testing.T) {
	_, thrust_low, err := EvaluatePerformance(20.0, 1500.0, 0.9, 0.92, 0.95, 0.95)
	require.NoError(t, err)
	_, thrust_high, err := EvaluatePerformance(20.0, 1700.0, 0.9, 0.92, 0.95, 0.95)
	require.NoError(t, err)

	assert.Greater(t, thrust_high, thrust_low)

	prev_f, prev_thrust := math.Inf(-1), math.Inf(-1)
	for tt4 := 900.0; tt4 <= 2000.0; tt4 += 50.0 {
		in := reference_inputs()
		in.Tt4 = tt4
		c, err := EvaluateCycle(in)
		require.NoError(t, err, "tt4 = %g", tt4)

		assert.Greater(t, c.FuelAirRatio, prev_f, "tt4 = %g", tt4)
		assert.Greater(t, c.SpecificThrust, prev_thrust, "tt4 = %g", tt4)
		prev_f, prev_thrust = c.FuelAirRatio, c.SpecificThrust
	}
}

func TestInvalidPressureRatio(t *testing.T) {
	_, _, err := EvaluatePerformance(1.0, 1600.0, 0.9, 0.92, 0.95, 0.95)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPressureRatio)

	var ce *CycleError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, InvalidPressureRatio, ce.Kind)
	assert.Equal(t, 1.0, ce.Value)
}

func TestInvalidPressureRatioIsCheckedFirst(t *testing.T) {
	others := [][5]float64{
		{1400.0, 0.85, 0.9, 0.97, 0.95},
		{0.0, 0.0, 0.0, 0.0, 0.0},
		{-1.0, -1.0, -1.0, -1.0, -1.0},
		{math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()},
		{math.Inf(1), 1e-300, math.Inf(-1), 2.0, 0.0},
	}
	for _, o := range others {
		ve, thrust, err := EvaluatePerformance(0.9, o[0], o[1], o[2], o[3], o[4])
		assert.ErrorIs(t, err, ErrInvalidPressureRatio)
		assert.Zero(t, ve)
		assert.Zero(t, thrust)
	}

	_, _, err := EvaluatePerformance(math.NaN(), 1400.0, 0.85, 0.9, 0.97, 0.95)
	assert.ErrorIs(t, err, ErrInvalidPressureRatio)
}

func TestPressureRatioJustAboveOne(t *testing.T) {
	_, _, err := EvaluatePerformance(1.0+1e-9, 1400.0, 0.85, 0.9, 0.97, 0.95)

	// 圧縮がほとんど無いので後段の判定で落ちるが、圧力比の判定では落ちない
	assert.NotErrorIs(t, err, ErrInvalidPressureRatio)
	assert.ErrorIs(t, err, ErrSubambientTurbineExitPressure)
}

func TestNegativeFuelAirRatio(t *testing.T) {
	in := reference_inputs()
	t_t3, _, _ := get_compressor(t_a, p_a, in.PiC, in.EtaC)

	in.Tt4 = t_t3 - 100.0
	c, err := EvaluateCycle(in)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrNegativeFuelAirRatio)

	var ce *CycleError
	require.ErrorAs(t, err, &ce)
	assert.Less(t, ce.Value, 0.0)
	assert.Contains(t, err.Error(), "Fuel-air ratio is negative.")
}

func TestTt4EqualToCompressorExit(t *testing.T) {
	in := reference_inputs()
	t_t3, _, _ := get_compressor(t_a, p_a, in.PiC, in.EtaC)
	_, f := get_combustor(t_t3, p_a*in.PiC, t_t3, in.PiB)
	assert.Equal(t, 0.0, f)

	in.Tt4 = t_t3
	_, _, err := EvaluatePerformance(in.PiC, in.Tt4, in.EtaC, in.EtaT, in.EtaN, in.PiB)
	assert.ErrorIs(t, err, ErrSubambientTurbineExitPressure)
}

func TestNegativeTurbineExitTemperature(t *testing.T) {
	// 圧縮機効率が極端に低いと、燃空比は正のままタービン仕事が入口エンタルピーを超える
	_, _, err := EvaluatePerformance(10.0, 50000.0, 0.005, 0.9, 0.97, 0.95)
	assert.ErrorIs(t, err, ErrNegativeTurbineExitTemperature)

	var ce *CycleError
	require.ErrorAs(t, err, &ce)
	assert.InDelta(t, -4177.889005597666, ce.Value, 1e-6)
}

func TestSubambientTurbineExitPressure(t *testing.T) {
	_, _, err := EvaluatePerformance(2.0, 500.0, 0.5, 0.5, 0.95, 0.95)
	assert.ErrorIs(t, err, ErrSubambientTurbineExitPressure)
	assert.NotErrorIs(t, err, ErrNegativeFuelAirRatio)

	var ce *CycleError
	require.ErrorAs(t, err, &ce)
	assert.LessOrEqual(t, ce.Value, p_a)
	assert.Contains(t, err.Error(), "Turbine exit pressure is below ambient. Check input parameters. (P_t5 = 15858.04")
}
