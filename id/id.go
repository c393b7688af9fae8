// Package id defines the opaque identity handles used throughout the
// runtime: class ids, package ids, and method ids. Handles are plain
// comparable values and are only meaningful within the ClassNames
// registry instance that issued them.
package id

import "strings"

// ClassID names one runtime class (ordinary class or array pseudo-class).
// Comparisons are only meaningful between ids issued by the same registry.
type ClassID struct {
	v uint32
}

// NewClassIDUnchecked wraps a raw id value. Only the registry should call
// this; everyone else receives ids from it.
func NewClassIDUnchecked(v uint32) ClassID {
	return ClassID{v: v}
}

// Get returns the raw id value.
func (c ClassID) Get() uint32 {
	return c.v
}

// ClassFileID names one raw parsed class file. It shares the value space of
// ClassID but carries a different meaning: "the file that defines this
// class", not yet "a fully modeled runtime class".
type ClassFileID = ClassID

// PackageID names a package within one registry instance.
type PackageID struct {
	v uint32
}

// NewPackageIDUnchecked wraps a raw package id value. Registry use only.
func NewPackageIDUnchecked(v uint32) PackageID {
	return PackageID{v: v}
}

// Get returns the raw id value.
func (p PackageID) Get() uint32 {
	return p.v
}

// MethodIndex is an index into a class's method table.
// It is not meaningful without the owning class.
type MethodIndex = uint16

// ExactMethodID pairs a class id with a method index. It is a compact,
// comparable map key used in place of a pointer pair.
type ExactMethodID struct {
	classID ClassID
	index   MethodIndex
}

// UncheckedCompose pairs a class with a method index. It does not validate
// that the index lies inside the class's method table; the caller must
// already know the pairing is valid.
func UncheckedCompose(classID ClassID, index MethodIndex) ExactMethodID {
	return ExactMethodID{classID: classID, index: index}
}

// Decompose splits the id back into its class and method index.
func (m ExactMethodID) Decompose() (ClassID, MethodIndex) {
	return m.classID, m.index
}

// MethodID widens an exact method id into the general method identity.
func (m ExactMethodID) MethodID() MethodID {
	return MethodID{exact: m}
}

// MethodID identifies a method: either an exact (class, index) pair or the
// synthetic clone method of array classes, which has no backing method
// table slot but must still be addressable by the invocation machinery.
type MethodID struct {
	exact      ExactMethodID
	arrayClone bool
}

// UncheckedComposeMethodID builds an exact method id without validating the
// index against the owning class's method table.
func UncheckedComposeMethodID(classID ClassID, index MethodIndex) MethodID {
	return UncheckedCompose(classID, index).MethodID()
}

// ArrayCloneMethodID returns the id of the synthetic array clone method.
func ArrayCloneMethodID() MethodID {
	return MethodID{arrayClone: true}
}

// Decompose returns the (class, index) pair for an exact method id.
// ok is false for the array clone variant, which has no such pair.
func (m MethodID) Decompose() (ClassID, MethodIndex, bool) {
	if m.arrayClone {
		return ClassID{}, 0, false
	}
	classID, index := m.exact.Decompose()
	return classID, index, true
}

// Exact narrows to an ExactMethodID, ok=false for the array clone variant.
func (m MethodID) Exact() (ExactMethodID, bool) {
	if m.arrayClone {
		return ExactMethodID{}, false
	}
	return m.exact, true
}

// IsArrayClone reports whether this is the synthetic array clone method.
func (m MethodID) IsArrayClone() bool {
	return m.arrayClone
}

// IsArrayClass reports whether a class name in JVM-internal form names an
// array type.
func IsArrayClass(name string) bool {
	return strings.HasPrefix(name, "[")
}

// IsArrayClassBytes is IsArrayClass for raw name bytes.
func IsArrayClassBytes(name []byte) bool {
	return len(name) > 0 && name[0] == '['
}
