package class

import (
	"iter"

	"github.com/MinusGix/RhoJVM/classfile"
	"github.com/MinusGix/RhoJVM/id"
)

// Class is the distilled runtime view of an ordinary class: identity,
// linkage, and shape, independent of the file bytes it came from. It is
// immutable once constructed and safe to share across concurrent readers.
type Class struct {
	id          id.ClassID
	superClass  id.ClassFileID
	hasSuper    bool
	pkg         id.PackageID
	hasPackage  bool
	accessFlags classfile.AccessFlags
	methodCount id.MethodIndex
}

// NewClass aggregates already-resolved components into a class shape. It
// performs no resolution itself; the accessor layer has already done that.
// superClass and pkg may be nil: no superclass (only valid for the root
// object type, not re-validated here) and no package respectively.
func NewClass(classID id.ClassID, superClass *id.ClassFileID, pkg *id.PackageID, accessFlags classfile.AccessFlags, methodCount id.MethodIndex) *Class {
	c := &Class{
		id:          classID,
		accessFlags: accessFlags,
		methodCount: methodCount,
	}
	if superClass != nil {
		c.superClass = *superClass
		c.hasSuper = true
	}
	if pkg != nil {
		c.pkg = *pkg
		c.hasPackage = true
	}
	return c
}

func (c *Class) ID() id.ClassID {
	return c.id
}

// SuperID returns the id of the file defining the superclass, ok=false
// only for the root object type.
func (c *Class) SuperID() (id.ClassFileID, bool) {
	return c.superClass, c.hasSuper
}

func (c *Class) Package() (id.PackageID, bool) {
	return c.pkg, c.hasPackage
}

func (c *Class) AccessFlags() classfile.AccessFlags {
	return c.accessFlags
}

// MethodCount is the length of the method table. It bounds the legal
// method index range [0, MethodCount).
func (c *Class) MethodCount() id.MethodIndex {
	return c.methodCount
}

// MethodIDs yields the method ids of this class, index 0 through
// MethodCount-1 in ascending order. Each call returns a fresh sequence.
// An id's existence only promises the slot is addressable, not that the
// method body has been loaded.
func (c *Class) MethodIDs() iter.Seq[id.MethodID] {
	classID := c.id
	count := c.methodCount
	return func(yield func(id.MethodID) bool) {
		for i := id.MethodIndex(0); i < count; i++ {
			if !yield(id.UncheckedComposeMethodID(classID, i)) {
				return
			}
		}
	}
}
