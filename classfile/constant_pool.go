package classfile

// ConstantPoolEntry is implemented by every kind of constant pool entry.
type ConstantPoolEntry interface {
	Tag() ConstantTag
}

// PoolIndex is a raw 1-based constant pool index that carries the kind of
// entry it is expected to resolve to. The kind check happens once, inside
// Get, instead of as tag checks scattered across call sites: resolving an
// index typed for the wrong kind yields absent, never a misread entry.
// Index zero is the reserved "no entry" value and never resolves.
type PoolIndex[T ConstantPoolEntry] uint16

// IsZero reports whether this is the reserved zero index.
func (i PoolIndex[T]) IsZero() bool {
	return i == 0
}

// Common kind-tagged index forms.
type (
	Utf8Index        = PoolIndex[*ConstantUtf8Info]
	ClassIndex       = PoolIndex[*ConstantClassInfo]
	NameAndTypeIndex = PoolIndex[*ConstantNameAndTypeInfo]
)

type ConstantUtf8Info struct {
	Value string
}

func (c *ConstantUtf8Info) Tag() ConstantTag { return ConstantUtf8 }

type ConstantIntegerInfo struct {
	Value int32
}

func (c *ConstantIntegerInfo) Tag() ConstantTag { return ConstantInteger }

type ConstantFloatInfo struct {
	Value float32
}

func (c *ConstantFloatInfo) Tag() ConstantTag { return ConstantFloat }

type ConstantLongInfo struct {
	Value int64
}

func (c *ConstantLongInfo) Tag() ConstantTag { return ConstantLong }

type ConstantDoubleInfo struct {
	Value float64
}

func (c *ConstantDoubleInfo) Tag() ConstantTag { return ConstantDouble }

type ConstantClassInfo struct {
	NameIndex Utf8Index
}

func (c *ConstantClassInfo) Tag() ConstantTag { return ConstantClass }

type ConstantStringInfo struct {
	StringIndex Utf8Index
}

func (c *ConstantStringInfo) Tag() ConstantTag { return ConstantString }

type ConstantFieldrefInfo struct {
	ClassIndex       ClassIndex
	NameAndTypeIndex NameAndTypeIndex
}

func (c *ConstantFieldrefInfo) Tag() ConstantTag { return ConstantFieldref }

type ConstantMethodrefInfo struct {
	ClassIndex       ClassIndex
	NameAndTypeIndex NameAndTypeIndex
}

func (c *ConstantMethodrefInfo) Tag() ConstantTag { return ConstantMethodref }

type ConstantInterfaceMethodrefInfo struct {
	ClassIndex       ClassIndex
	NameAndTypeIndex NameAndTypeIndex
}

func (c *ConstantInterfaceMethodrefInfo) Tag() ConstantTag { return ConstantInterfaceMethodref }

type ConstantNameAndTypeInfo struct {
	NameIndex       Utf8Index
	DescriptorIndex Utf8Index
}

func (c *ConstantNameAndTypeInfo) Tag() ConstantTag { return ConstantNameAndType }

type ConstantMethodHandleInfo struct {
	ReferenceKind  MethodHandleKind
	ReferenceIndex uint16
}

func (c *ConstantMethodHandleInfo) Tag() ConstantTag { return ConstantMethodHandle }

type ConstantMethodTypeInfo struct {
	DescriptorIndex Utf8Index
}

func (c *ConstantMethodTypeInfo) Tag() ConstantTag { return ConstantMethodType }

type ConstantDynamicInfo struct {
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         NameAndTypeIndex
}

func (c *ConstantDynamicInfo) Tag() ConstantTag { return ConstantDynamic }

type ConstantInvokeDynamicInfo struct {
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         NameAndTypeIndex
}

func (c *ConstantInvokeDynamicInfo) Tag() ConstantTag { return ConstantInvokeDynamic }

type ConstantModuleInfo struct {
	NameIndex Utf8Index
}

func (c *ConstantModuleInfo) Tag() ConstantTag { return ConstantModule }

type ConstantPackageInfo struct {
	NameIndex Utf8Index
}

func (c *ConstantPackageInfo) Tag() ConstantTag { return ConstantPackage }

// ConstantPool is the per-class-file table of shared constants. Slot 0 is
// implicit (index zero is reserved); the slot after a Long or Double entry
// is nil, matching the class file format's double-width entries.
type ConstantPool []ConstantPoolEntry

// Get resolves a kind-tagged index. ok is false when the index is zero,
// out of range, or the stored entry is of a different kind than the index
// promises. The returned entry borrows into the pool: mutating it mutates
// the pool entry contents (used by later rewriting passes).
func Get[T ConstantPoolEntry](cp ConstantPool, i PoolIndex[T]) (T, bool) {
	var zero T
	if i == 0 || int(i) > len(cp) {
		return zero, false
	}
	entry, ok := cp[i-1].(T)
	if !ok {
		return zero, false
	}
	return entry, true
}

// Utf8 resolves a UTF-8 index directly to its string, "" when absent.
func (cp ConstantPool) Utf8(i Utf8Index) string {
	entry, ok := Get(cp, i)
	if !ok {
		return ""
	}
	return entry.Value
}

// ClassName resolves a class-kind index to the named class's UTF-8 name,
// "" when either link is absent.
func (cp ConstantPool) ClassName(i ClassIndex) string {
	entry, ok := Get(cp, i)
	if !ok {
		return ""
	}
	return cp.Utf8(entry.NameIndex)
}

// NameAndType resolves a name-and-type index to its two UTF-8 strings.
func (cp ConstantPool) NameAndType(i NameAndTypeIndex) (name, descriptor string) {
	entry, ok := Get(cp, i)
	if !ok {
		return "", ""
	}
	return cp.Utf8(entry.NameIndex), cp.Utf8(entry.DescriptorIndex)
}
