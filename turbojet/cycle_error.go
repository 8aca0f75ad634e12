package turbojet

import "fmt"

// サイクル計算の失敗の種類
type ErrorKind string

// サイクル計算の失敗の種類
const (
	InvalidPressureRatio           ErrorKind = "InvalidPressureRatio"
	NegativeFuelAirRatio           ErrorKind = "NegativeFuelAirRatio"
	NegativeTurbineExitTemperature ErrorKind = "NegativeTurbineExitTemperature"
	SubambientTurbineExitPressure  ErrorKind = "SubambientTurbineExitPressure"
)

func (k ErrorKind) message() string {
	switch k {
	case InvalidPressureRatio:
		return "Compressor pressure ratio must be greater than 1."
	case NegativeFuelAirRatio:
		return "Fuel-air ratio is negative. Check input parameters."
	case NegativeTurbineExitTemperature:
		return "Turbine exit temperature is negative. Check input parameters."
	case SubambientTurbineExitPressure:
		return "Turbine exit pressure is below ambient. Check input parameters."
	default:
		panic("invalid error kind")
	}
}

// 判定に用いた量の名前
func (k ErrorKind) quantity() string {
	switch k {
	case InvalidPressureRatio:
		return "pi_c"
	case NegativeFuelAirRatio:
		return "f"
	case NegativeTurbineExitTemperature:
		return "T_t5"
	case SubambientTurbineExitPressure:
		return "P_t5"
	default:
		panic("invalid error kind")
	}
}

// CycleError is returned when one of the validity gates of the cycle rejects
// the inputs. Value holds the quantity the gate was checked against.
type CycleError struct {
	Kind  ErrorKind
	Value float64
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s (%s = %g)", e.Kind.message(), e.Kind.quantity(), e.Value)
}

// Is reports whether target is a *CycleError of the same kind.
func (e *CycleError) Is(target error) bool {
	t, ok := target.(*CycleError)
	return ok && t.Kind == e.Kind
}

// errors.Is で比較するための値
var (
	ErrInvalidPressureRatio           = &CycleError{Kind: InvalidPressureRatio}
	ErrNegativeFuelAirRatio           = &CycleError{Kind: NegativeFuelAirRatio}
	ErrNegativeTurbineExitTemperature = &CycleError{Kind: NegativeTurbineExitTemperature}
	ErrSubambientTurbineExitPressure  = &CycleError{Kind: SubambientTurbineExitPressure}
)
