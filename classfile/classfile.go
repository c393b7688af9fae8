// Package classfile parses the JVM class file format into a structural,
// index-preserving representation. Constant pool indices keep their raw
// 1-based values but carry the expected entry kind in their type, so a
// mistyped lookup is a compile error or an absent result, never a misread.
package classfile

// Version is the class file format version pair.
type Version struct {
	Major uint16
	Minor uint16
}

type ClassFile struct {
	Version      Version
	ConstantPool ConstantPool
	AccessFlags  AccessFlags
	ThisClass    ClassIndex
	SuperClass   ClassIndex
	Interfaces   []ClassIndex
	Fields       []FieldInfo
	Methods      []MethodInfo
	Attributes   []AttributeInfo
}

// ClassName resolves the this-class entry to the class's internal name,
// "" if either pool link is broken.
func (cf *ClassFile) ClassName() string {
	return cf.ConstantPool.ClassName(cf.ThisClass)
}

// SuperClassName resolves the super-class entry, "" for the zero index
// (no superclass) or a broken link.
func (cf *ClassFile) SuperClassName() string {
	if cf.SuperClass.IsZero() {
		return ""
	}
	return cf.ConstantPool.ClassName(cf.SuperClass)
}

// InterfaceNames resolves all declared interface entries.
func (cf *ClassFile) InterfaceNames() []string {
	names := make([]string, len(cf.Interfaces))
	for i, idx := range cf.Interfaces {
		names[i] = cf.ConstantPool.ClassName(idx)
	}
	return names
}

func (cf *ClassFile) IsClass() bool {
	return !cf.AccessFlags.IsInterface() && !cf.AccessFlags.IsModule()
}

func (cf *ClassFile) IsInterface() bool {
	return cf.AccessFlags.IsInterface() && !cf.AccessFlags.IsAnnotation()
}

func (cf *ClassFile) IsAnnotation() bool {
	return cf.AccessFlags.IsAnnotation()
}

func (cf *ClassFile) IsEnum() bool {
	return cf.AccessFlags.IsEnum()
}

func (cf *ClassFile) GetField(name string) *FieldInfo {
	for i := range cf.Fields {
		if cf.Fields[i].Name(cf.ConstantPool) == name {
			return &cf.Fields[i]
		}
	}
	return nil
}

// GetMethod returns the first method matching name, and descriptor when
// descriptor is non-empty.
func (cf *ClassFile) GetMethod(name, descriptor string) *MethodInfo {
	for i := range cf.Methods {
		if cf.Methods[i].Name(cf.ConstantPool) == name {
			if descriptor == "" || cf.Methods[i].Descriptor(cf.ConstantPool) == descriptor {
				return &cf.Methods[i]
			}
		}
	}
	return nil
}

func (cf *ClassFile) GetAttribute(name string) *AttributeInfo {
	for i := range cf.Attributes {
		if cf.ConstantPool.Utf8(cf.Attributes[i].NameIndex) == name {
			return &cf.Attributes[i]
		}
	}
	return nil
}
