package gen

import (
	"scalar-collections/internal/tmpl"
	"scalar-collections/scalar"
)

// KindFillers returns the placeholder keys understood by scalar templates.
func KindFillers() map[string]tmpl.Filler[scalar.Meta] {
	bufferType := func(m scalar.Meta) string { return m.BufferTypeName }

	return map[string]tmpl.Filler[scalar.Meta]{
		"type":          func(m scalar.Meta) string { return m.TypeName },
		"array_type":    bufferType,
		"buffer_type":   bufferType,
		"friendly_name": func(m scalar.Meta) string { return m.FriendlyName },
		"elem_type":     func(m scalar.Meta) string { return m.ElemType },
	}
}
