package filter

import "fmt"

// Type selects the filter response shape.
type Type int

// Recognized filter types.
const (
	Lowpass Type = iota
	Highpass
	Bandstop
	Bandpass
)

// String returns the canonical configuration name for the type.
func (t Type) String() string {
	switch t {
	case Lowpass:
		return "low"
	case Highpass:
		return "high"
	case Bandstop:
		return "stop"
	case Bandpass:
		return "bandpass"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType maps a configuration string to a Type.
func ParseType(name string) (Type, error) {
	switch name {
	case "low":
		return Lowpass, nil
	case "high":
		return Highpass, nil
	case "stop":
		return Bandstop, nil
	case "bandpass":
		return Bandpass, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// IsBand reports whether the type needs two cutoff frequencies.
func (t Type) IsBand() bool {
	return t == Bandstop || t == Bandpass
}
