package scalar

// Meta describes a scalar kind for code generation.
type Meta struct {
	// Kind is the enum value the record belongs to.
	Kind Kind
	// FriendlyName is the human-readable lower-case name (e.g., "byte").
	FriendlyName string
	// TypeName is the canonical, identifier-friendly name (e.g., "Byte").
	// Records are identified by it.
	TypeName string
	// BufferTypeName is the contiguous storage type (e.g., "[]int8").
	BufferTypeName string
	// ElemType is the Go type of one element (e.g., "int8").
	ElemType string
}

// table is ordered by Kind; combination order of generated files depends on it.
var table = [...]Meta{
	{Kind: KindByte, FriendlyName: "byte", TypeName: "Byte", BufferTypeName: "[]int8", ElemType: "int8"},
	{Kind: KindShort, FriendlyName: "short", TypeName: "Short", BufferTypeName: "[]int16", ElemType: "int16"},
	{Kind: KindInt, FriendlyName: "int", TypeName: "Int", BufferTypeName: "[]int32", ElemType: "int32"},
	{Kind: KindLong, FriendlyName: "long", TypeName: "Long", BufferTypeName: "[]int64", ElemType: "int64"},
	{Kind: KindFloat, FriendlyName: "float", TypeName: "Float", BufferTypeName: "[]float32", ElemType: "float32"},
	{Kind: KindDouble, FriendlyName: "double", TypeName: "Double", BufferTypeName: "[]float64", ElemType: "float64"},
	{Kind: KindChar, FriendlyName: "char", TypeName: "Char", BufferTypeName: "[]uint16", ElemType: "uint16"},
}

// Kinds returns the metadata table in its fixed order.
// The returned slice is a copy and may be modified by the caller.
func Kinds() []Meta {
	res := make([]Meta, len(table))
	copy(res, table[:])

	return res
}

// Lookup finds a record by its type name.
func Lookup(typeName string) (Meta, bool) {
	for _, m := range table {
		if m.TypeName == typeName {
			return m, true
		}
	}

	return Meta{}, false
}

// Bits returns the storage width of one element.
func (m Meta) Bits() int {
	return m.Kind.Bits()
}

func (m Meta) String() string {
	return m.TypeName
}
