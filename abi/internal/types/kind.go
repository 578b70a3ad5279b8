package types

type Kind uint8

const (
	KindUint Kind = iota
	KindInt
	KindAddress
	KindBool
	KindFixedBytes
	KindEnum
	KindBytes
	KindString
	KindArray
	KindSlice
	KindTuple
)

var kindNames = [...]string{
	KindUint:       "uint",
	KindInt:        "int",
	KindAddress:    "address",
	KindBool:       "bool",
	KindFixedBytes: "bytes<n>",
	KindEnum:       "enum",
	KindBytes:      "bytes",
	KindString:     "string",
	KindArray:      "array",
	KindSlice:      "slice",
	KindTuple:      "tuple",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether the kind occupies exactly one head slot with the
// value stored inline.
func (k Kind) IsScalar() bool {
	return k <= KindEnum
}
