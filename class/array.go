package class

import (
	"github.com/MinusGix/RhoJVM/classfile"
	"github.com/MinusGix/RhoJVM/id"
)

// ArrayClass is the synthetic class shape of an array type. Arrays have
// runtime class identity but no backing class file.
type ArrayClass struct {
	id            id.ClassID
	name          string
	componentType ArrayComponentType
	superClass    id.ClassID
	accessFlags   classfile.AccessFlags
}

// NewArrayClassUnchecked aggregates an already-decided identity, name,
// component type, super identity, and flags. The caller (the registry) is
// responsible for the identity being fresh and superClass really being
// the root object type; neither is verified here.
func NewArrayClassUnchecked(classID id.ClassID, name string, componentType ArrayComponentType, superClass id.ClassID, accessFlags classfile.AccessFlags) *ArrayClass {
	return &ArrayClass{
		id:            classID,
		name:          name,
		componentType: componentType,
		superClass:    superClass,
		accessFlags:   accessFlags,
	}
}

func (a *ArrayClass) ID() id.ClassID {
	return a.id
}

// Name is the descriptor-form name. Strictly for diagnostics; identify
// array classes by id, not name.
func (a *ArrayClass) Name() string {
	return a.name
}

func (a *ArrayClass) ComponentType() ArrayComponentType {
	return a.componentType
}

// SuperID is always the root object type's identity.
func (a *ArrayClass) SuperID() id.ClassID {
	return a.superClass
}

func (a *ArrayClass) AccessFlags() classfile.AccessFlags {
	return a.accessFlags
}

// ArrayComponentType is the element type of an array class: one of the
// eight primitive kinds, or a reference class carrying its id. The
// primitive tag doubles as the descriptor character.
type ArrayComponentType struct {
	primitive byte
	class     id.ClassID
}

// PrimitiveComponent converts a primitive kind to its component type.
// Total: unsigned byte and short collapse onto the signed component, as
// array element typing does not distinguish signedness.
func PrimitiveComponent(p PrimitiveType) ArrayComponentType {
	switch p {
	case PrimitiveByte, PrimitiveUnsignedByte:
		return ArrayComponentType{primitive: 'B'}
	case PrimitiveShort, PrimitiveUnsignedShort:
		return ArrayComponentType{primitive: 'S'}
	case PrimitiveInt:
		return ArrayComponentType{primitive: 'I'}
	case PrimitiveLong:
		return ArrayComponentType{primitive: 'J'}
	case PrimitiveFloat:
		return ArrayComponentType{primitive: 'F'}
	case PrimitiveDouble:
		return ArrayComponentType{primitive: 'D'}
	case PrimitiveChar:
		return ArrayComponentType{primitive: 'C'}
	default:
		return ArrayComponentType{primitive: 'Z'}
	}
}

// ComponentForDescriptor maps a primitive descriptor character to its
// component type, ok=false for anything that is not one of the eight
// primitive codes.
func ComponentForDescriptor(c byte) (ArrayComponentType, bool) {
	switch c {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z':
		return ArrayComponentType{primitive: c}, true
	default:
		return ArrayComponentType{}, false
	}
}

// ClassComponent builds the reference component type for a class id.
func ClassComponent(classID id.ClassID) ArrayComponentType {
	return ArrayComponentType{class: classID}
}

func (t ArrayComponentType) IsPrimitive() bool {
	return t.primitive != 0
}

// ClassID returns the carried class id, ok=false for primitive kinds.
func (t ArrayComponentType) ClassID() (id.ClassID, bool) {
	if t.primitive != 0 {
		return id.ClassID{}, false
	}
	return t.class, true
}

// DescString produces the component's descriptor string. Primitive kinds
// need no registry interaction. For a reference component the carried id
// is resolved through the registry: an array name is already a descriptor
// and passes through verbatim (wrapping it as L...; would be incorrect),
// anything else is wrapped as L<name>;. Fails only when the registry does
// not know the id.
func (t ArrayComponentType) DescString(names *ClassNames) (string, error) {
	if t.primitive != 0 {
		return string(t.primitive), nil
	}

	name, err := names.NameFromGCID(t.class)
	if err != nil {
		return "", err
	}
	if name.IsArray() {
		return name.Path(), nil
	}
	return "L" + name.Path() + ";", nil
}

// ClassVariant is the closed union over the two kinds of runtime class:
// file-backed and array. The variant set is fixed, so call sites narrow
// with AsClass/AsArray rather than dynamic dispatch.
type ClassVariant struct {
	class *Class
	array *ArrayClass
}

func VariantOfClass(c *Class) ClassVariant {
	return ClassVariant{class: c}
}

func VariantOfArray(a *ArrayClass) ClassVariant {
	return ClassVariant{array: a}
}

func (v ClassVariant) ID() id.ClassID {
	if v.array != nil {
		return v.array.ID()
	}
	return v.class.ID()
}

// SuperID dispatches to the active variant. ok=false only for the root
// object type; array classes always have a superclass.
func (v ClassVariant) SuperID() (id.ClassID, bool) {
	if v.array != nil {
		return v.array.SuperID(), true
	}
	return v.class.SuperID()
}

func (v ClassVariant) AccessFlags() classfile.AccessFlags {
	if v.array != nil {
		return v.array.AccessFlags()
	}
	return v.class.AccessFlags()
}

// AsClass narrows to the ordinary class variant.
func (v ClassVariant) AsClass() (*Class, bool) {
	if v.class == nil {
		return nil, false
	}
	return v.class, true
}

// AsArray narrows to the array variant.
func (v ClassVariant) AsArray() (*ArrayClass, bool) {
	if v.array == nil {
		return nil, false
	}
	return v.array, true
}
