package nd

import "fmt"

// DType identifies the element kind stored in a Buffer.
type DType int

// Supported element kinds. Generic is the untyped "array" kind; it stores
// float64 values and is the default for coerced literals.
const (
	Generic DType = iota
	Int8
	Int16
	Int32
	Uint8
	Uint16
	Uint32
	Float32
	Float64
)

var dtypeNames = [...]string{
	Generic: "array",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Float32: "float32",
	Float64: "float64",
}

// String returns the canonical dtype name.
func (dt DType) String() string {
	if dt < 0 || int(dt) >= len(dtypeNames) {
		return fmt.Sprintf("DType(%d)", int(dt))
	}
	return dtypeNames[dt]
}

// IsFloat reports whether the kind holds fractional values.
func (dt DType) IsFloat() bool {
	return dt == Float32 || dt == Float64 || dt == Generic
}

// ParseDType maps a dtype name back to its DType.
func ParseDType(name string) (DType, error) {
	for i, n := range dtypeNames {
		if n == name {
			return DType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown dtype %q", ErrValue, name)
}
