// Package class models runtime class identity and shape: the accessor
// layer over a parsed class file, the distilled Class and ArrayClass
// shapes that outlive the file bytes, and the ClassNames registry that
// issues their identities.
package class

import (
	"iter"

	"github.com/MinusGix/RhoJVM/classfile"
	"github.com/MinusGix/RhoJVM/id"
)

// ClassFileData wraps a structurally parsed class file together with its
// identity and originating path. It owns the parsed structure; lookups
// borrow into it and never copy the constant pool. The identity and
// linkage fields are fixed at construction; only constant pool entry
// contents may be mutated, through entries returned by GetT.
type ClassFileData struct {
	id        id.ClassFileID
	path      string
	classFile *classfile.ClassFile
}

// NewClassFileData wraps an already-parsed class file. The path is kept
// for diagnostics only.
func NewClassFileData(fileID id.ClassFileID, path string, cf *classfile.ClassFile) *ClassFileData {
	return &ClassFileData{id: fileID, path: path, classFile: cf}
}

func (d *ClassFileData) ID() id.ClassFileID {
	return d.id
}

// Path is the file the class was parsed from. Diagnostic only; it is not
// part of the class's identity.
func (d *ClassFileData) Path() string {
	return d.path
}

func (d *ClassFileData) Version() classfile.Version {
	return d.classFile.Version
}

func (d *ClassFileData) AccessFlags() classfile.AccessFlags {
	return d.classFile.AccessFlags
}

// GetT resolves a kind-tagged constant pool index. ok is false when the
// index is out of range or the entry kind does not match the index type.
// The returned entry borrows into the pool; writes through it are visible
// to every later lookup, which is how rewriting passes update entry
// contents. It is a free function because Go methods cannot be generic.
func GetT[T classfile.ConstantPoolEntry](d *ClassFileData, i classfile.PoolIndex[T]) (T, bool) {
	return classfile.Get(d.classFile.ConstantPool, i)
}

// GetText resolves a UTF-8 index directly to its string.
func (d *ClassFileData) GetText(i classfile.Utf8Index) (string, bool) {
	entry, ok := GetT(d, i)
	if !ok {
		return "", false
	}
	return entry.Value, true
}

// GetMethod returns the raw method at a 0-based index, ok=false when out
// of range.
func (d *ClassFileData) GetMethod(index int) (*classfile.MethodInfo, bool) {
	if index < 0 || index >= len(d.classFile.Methods) {
		return nil, false
	}
	return &d.classFile.Methods[index], true
}

// Methods returns the raw method table in declaration order. The order is
// meaningful: it defines method index addressing.
func (d *ClassFileData) Methods() []classfile.MethodInfo {
	return d.classFile.Methods
}

// ThisClassName follows the this-class index to its class entry and that
// entry's name index to the UTF-8 name, reporting which link broke on
// failure.
func (d *ClassFileData) ThisClassName() (string, error) {
	thisClass, ok := GetT(d, d.classFile.ThisClass)
	if !ok {
		return "", ErrInvalidThisClassIndex
	}
	name, ok := d.GetText(thisClass.NameIndex)
	if !ok {
		return "", ErrInvalidThisClassNameIndex
	}
	return name, nil
}

// SuperClassName resolves the super-class pointer the same way. A zero
// raw index means "no superclass" (reserved for the root object type) and
// yields ok=false with no error; any other unresolvable index is an
// error. Only java/lang/Object should have no superclass, but that is not
// verified here.
func (d *ClassFileData) SuperClassName() (name string, ok bool, err error) {
	if d.classFile.SuperClass.IsZero() {
		return "", false, nil
	}

	superClass, found := GetT(d, d.classFile.SuperClass)
	if !found {
		return "", false, ErrInvalidSuperClassIndex
	}
	name, found = d.GetText(superClass.NameIndex)
	if !found {
		return "", false, ErrInvalidSuperClassNameIndex
	}
	return name, true, nil
}

// SuperClassID resolves the superclass name and interns it in the
// registry. ok=false means no superclass.
func (d *ClassFileData) SuperClassID(names *ClassNames) (id.ClassFileID, bool, error) {
	name, ok, err := d.SuperClassName()
	if err != nil || !ok {
		return id.ClassFileID{}, false, err
	}
	return names.GCIDFromString(name), true, nil
}

// InterfaceIndices yields the raw class-kind indices of the declared
// interfaces, in declaration order. Each call returns a fresh sequence.
// Resolving them to names or ids is the caller's business; this keeps the
// accessor allocation-free and decoupled from the registry.
func (d *ClassFileData) InterfaceIndices() iter.Seq[classfile.ClassIndex] {
	return func(yield func(classfile.ClassIndex) bool) {
		for _, idx := range d.classFile.Interfaces {
			if !yield(idx) {
				return
			}
		}
	}
}
