// Package dtype defines the element types a transform can operate on and the
// fixed real/complex pairing table consulted during input coercion.
package dtype

// DType identifies the element type of an array buffer.
type DType uint8

// Supported element types. Float16 is a storage-only type: arrays carrying it
// are promoted to the float32 tier before any transform work.
const (
	Invalid DType = iota
	Float16
	Float32
	Float64
	Complex64
	Complex128
)

// Default is the precision used when nothing about the input justifies
// another choice.
const Default = Float64

// Size returns the byte size of one element.
func (d DType) Size() int {
	switch d {
	case Float16:
		return 2
	case Float32:
		return 4
	case Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		return 0
	}
}

// String returns the conventional name of the element type.
func (d DType) String() string {
	switch d {
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "invalid"
	}
}

// IsComplex reports whether the element type is complex valued.
func (d DType) IsComplex() bool {
	return d == Complex64 || d == Complex128
}

// Complement returns the paired type of the same precision: the complex
// counterpart of a real type and vice versa. Types outside the pairing table
// (Float16, Invalid) report false.
func Complement(d DType) (DType, bool) {
	switch d {
	case Float32:
		return Complex64, true
	case Float64:
		return Complex128, true
	case Complex64:
		return Float32, true
	case Complex128:
		return Float64, true
	default:
		return Invalid, false
	}
}

// CoerceInput returns the element type an input array must be converted to
// for a transform of the given kind and direction.
//
// Types outside the pairing table fall back to the default precision tier,
// except Float16 which carries enough information to stay in the float32
// tier. Within the table, a transform that consumes complex data promotes a
// real input to its complex complement, and a forward real transform demotes
// a complex input to its real complement.
func CoerceInput(d DType, real, inverse bool) DType {
	needsComplex := !real || inverse

	if _, ok := Complement(d); !ok {
		if d == Float16 {
			if needsComplex {
				return Complex64
			}

			return Float32
		}

		if needsComplex {
			c, _ := Complement(Default)
			return c
		}

		return Default
	}

	if needsComplex && !d.IsComplex() {
		c, _ := Complement(d)
		return c
	}

	if real && !inverse && d.IsComplex() {
		c, _ := Complement(d)
		return c
	}

	return d
}

// OutputFor returns the element type of the transform output given the
// already coerced input type. A complex transform preserves the input type;
// a real transform produces the paired type on the other side.
func OutputFor(in DType, real bool) DType {
	if !real {
		return in
	}

	c, _ := Complement(in)

	return c
}
