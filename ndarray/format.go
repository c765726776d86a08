package ndarray

import (
	"fmt"
	"strings"
)

// Format renders the array as nested brackets, formatting each element with elem.
// Rows of the innermost axis are separated by ", " and outer axes by ",\n".
func Format[T any](a Array[T], elem func(T) string) string {
	if a.shape == nil {
		return "[]"
	}
	if len(a.shape) == 0 {
		return elem(a.data[a.offset])
	}

	var sb strings.Builder
	formatAxis(&sb, a, elem, 0, a.offset)

	return sb.String()
}

func formatAxis[T any](sb *strings.Builder, a Array[T], elem func(T) string, axis, off int) {
	sb.WriteByte('[')
	last := axis == len(a.shape)-1
	for i := 0; i < a.shape[axis]; i++ {
		if i > 0 {
			if last {
				sb.WriteString(", ")
			} else {
				sb.WriteString(",\n")
				sb.WriteString(strings.Repeat(" ", axis+1))
			}
		}

		pos := off + i*a.strides[axis]
		if last {
			sb.WriteString(elem(a.data[pos]))
		} else {
			formatAxis(sb, a, elem, axis+1, pos)
		}
	}
	sb.WriteByte(']')
}

// String renders the array with fmt's default element formatting.
func (a Array[T]) String() string {
	return Format(a, func(v T) string { return fmt.Sprint(v) })
}
