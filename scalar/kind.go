package scalar

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind enumerates the scalar element types supported by the containers.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindChar

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Value is the set of Go types a growable buffer can be specialized for.
type Value interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64 | ~uint16
}

func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k Kind) IsInteger() bool {
	switch k {
	default:
		return false
	case KindByte, KindShort, KindInt, KindLong:
		return true
	}
}

func (k Kind) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat, KindDouble:
		return true
	}
}

// Bits returns the storage width of one element.
func (k Kind) Bits() int {
	switch k {
	default:
		panic("bits requested for invalid kind: " + k.String())
	case KindByte:
		return 8
	case KindShort, KindChar:
		return 16
	case KindInt, KindFloat:
		return 32
	case KindLong, KindDouble:
		return 64
	}
}

// Size returns the storage width of one element in bytes.
func (k Kind) Size() int {
	return k.Bits() / 8
}

// Meta returns the metadata record of the kind.
func (k Kind) Meta() Meta {
	if !k.IsValid() {
		panic("meta requested for invalid kind: " + k.String())
	}

	return table[k-1]
}
