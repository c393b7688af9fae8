package class

import (
	"sync"

	"github.com/MinusGix/RhoJVM/id"
)

// ObjectClassName is the internal name of the root object type.
const ObjectClassName = "java/lang/Object"

// Name is a registered class name in JVM-internal form: slash-separated
// for ordinary classes, descriptor form for array classes.
type Name struct {
	path string
}

// Path returns the internal-form name.
func (n Name) Path() string {
	return n.path
}

// IsArray reports whether the name is an array descriptor.
func (n Name) IsArray() bool {
	return id.IsArrayClass(n.path)
}

func (n Name) String() string {
	return n.path
}

// ClassNames is the single source of truth for identity allocation: it
// interns class names and package paths into stable ids, sequentially
// from zero. Interning is mutex-linearized so concurrent construction of
// classes from the same source cannot be issued two distinct identities.
// Ids from different ClassNames instances must never be mixed.
type ClassNames struct {
	mu           sync.Mutex
	classIDs     map[string]id.ClassID
	classNames   []string
	packageIDs   map[string]id.PackageID
	packagePaths []string
	object       id.ClassID
}

// NewClassNames creates a registry with the root object type pre-interned.
func NewClassNames() *ClassNames {
	n := &ClassNames{
		classIDs:   make(map[string]id.ClassID),
		packageIDs: make(map[string]id.PackageID),
	}
	n.object = n.GCIDFromString(ObjectClassName)
	return n
}

// GCIDFromString interns a class name, returning the existing id when the
// name is already known. Never fails.
func (n *ClassNames) GCIDFromString(name string) id.ClassFileID {
	n.mu.Lock()
	defer n.mu.Unlock()

	if existing, ok := n.classIDs[name]; ok {
		return existing
	}
	newID := id.NewClassIDUnchecked(uint32(len(n.classNames)))
	n.classNames = append(n.classNames, name)
	n.classIDs[name] = newID
	return newID
}

// NameFromGCID resolves an id back to its name. Fails with *BadIDError
// when the id was not issued by this registry instance.
func (n *ClassNames) NameFromGCID(classID id.ClassID) (Name, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if int(classID.Get()) >= len(n.classNames) {
		return Name{}, &BadIDError{ID: classID}
	}
	return Name{path: n.classNames[classID.Get()]}, nil
}

// ObjectID is the identity of the root object type.
func (n *ClassNames) ObjectID() id.ClassID {
	return n.object
}

// PackageIDFromPath interns a package path ("java/lang"). Never fails.
func (n *ClassNames) PackageIDFromPath(path string) id.PackageID {
	n.mu.Lock()
	defer n.mu.Unlock()

	if existing, ok := n.packageIDs[path]; ok {
		return existing
	}
	newID := id.NewPackageIDUnchecked(uint32(len(n.packagePaths)))
	n.packagePaths = append(n.packagePaths, path)
	n.packageIDs[path] = newID
	return newID
}

// PackagePath resolves a package id back to its path, ok=false when the
// id was not issued by this registry instance.
func (n *ClassNames) PackagePath(pkgID id.PackageID) (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if int(pkgID.Get()) >= len(n.packagePaths) {
		return "", false
	}
	return n.packagePaths[pkgID.Get()], true
}
