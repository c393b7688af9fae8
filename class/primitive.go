package class

// PrimitiveType enumerates the scalar kinds the runtime computes with.
// The unsigned byte and short variants allow more granular type tracking
// where it can be determined; they share descriptors with their signed
// counterparts.
type PrimitiveType uint8

const (
	PrimitiveByte PrimitiveType = iota
	PrimitiveUnsignedByte
	PrimitiveShort
	PrimitiveUnsignedShort
	PrimitiveInt
	PrimitiveLong
	PrimitiveFloat
	PrimitiveDouble
	PrimitiveChar
	PrimitiveBoolean
)

func (p PrimitiveType) String() string {
	switch p {
	case PrimitiveByte:
		return "byte"
	case PrimitiveUnsignedByte:
		return "unsigned byte"
	case PrimitiveShort:
		return "short"
	case PrimitiveUnsignedShort:
		return "unsigned short"
	case PrimitiveInt:
		return "int"
	case PrimitiveLong:
		return "long"
	case PrimitiveFloat:
		return "float"
	case PrimitiveDouble:
		return "double"
	case PrimitiveChar:
		return "char"
	case PrimitiveBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}
