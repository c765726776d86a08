package ndarray

// Kind identifies the element type backing an array.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindBool
	KindInt64
	KindFloat64
	KindString
	KindBytes
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// KindOf returns the Kind of the element type T.
func KindOf[T any]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBool
	case int64:
		return KindInt64
	case float64:
		return KindFloat64
	case string:
		return KindString
	case []byte:
		return KindBytes
	}

	// only interface element types box to a nil zero value
	if any(zero) == nil {
		return KindObject
	}

	return KindUnknown
}

// Kind returns the element kind of the array.
func (a Array[T]) Kind() Kind {
	return KindOf[T]()
}
