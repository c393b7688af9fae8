// Package classpath locates class files across an ordered list of
// directories and jars, and derives runtime class shapes from them.
package classpath

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/MinusGix/RhoJVM/class"
	"github.com/MinusGix/RhoJVM/classfile"
	"github.com/MinusGix/RhoJVM/id"
)

var log = commonlog.GetLogger("classpath")

// ErrClassNotFound reports that no classpath entry contains the class.
var ErrClassNotFound = errors.New("class not found on classpath")

type entry interface {
	// find returns the class file bytes and their origin for a class
	// named in internal form, ok=false when this entry does not have it.
	find(name string) (data []byte, origin string, ok bool, err error)
	close() error
}

type dirEntry struct {
	root string
}

func (e *dirEntry) find(name string) ([]byte, string, bool, error) {
	path := filepath.Join(e.root, filepath.FromSlash(name)+".class")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", false, nil
		}
		return nil, "", false, fmt.Errorf("read %s: %w", path, err)
	}
	return data, path, true, nil
}

func (e *dirEntry) close() error {
	return nil
}

type jarEntry struct {
	path  string
	rc    *zip.ReadCloser
	files map[string]*zip.File
}

func openJarEntry(path string) (*jarEntry, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open jar %s: %w", path, err)
	}
	files := make(map[string]*zip.File, len(rc.File))
	for _, f := range rc.File {
		files[f.Name] = f
	}
	return &jarEntry{path: path, rc: rc, files: files}, nil
}

func (e *jarEntry) find(name string) ([]byte, string, bool, error) {
	f, ok := e.files[name+".class"]
	if !ok {
		return nil, "", false, nil
	}
	r, err := f.Open()
	if err != nil {
		return nil, "", false, fmt.Errorf("open %s in %s: %w", f.Name, e.path, err)
	}
	defer r.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, "", false, fmt.Errorf("read %s in %s: %w", f.Name, e.path, err)
	}
	return buf.Bytes(), e.path + "!" + f.Name, true, nil
}

func (e *jarEntry) close() error {
	return e.rc.Close()
}

// Loader searches classpath entries in order and turns found class files
// into parsed wrappers and class shapes, interning identities as it goes.
type Loader struct {
	names   *class.ClassNames
	entries []entry
}

// NewLoader builds a loader over the given paths, each a directory or a
// jar file, searched in the order given.
func NewLoader(names *class.ClassNames, paths ...string) (*Loader, error) {
	l := &Loader{names: names}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			l.Close()
			return nil, fmt.Errorf("classpath entry %s: %w", path, err)
		}
		if info.IsDir() {
			l.entries = append(l.entries, &dirEntry{root: path})
			continue
		}
		jar, err := openJarEntry(path)
		if err != nil {
			l.Close()
			return nil, err
		}
		l.entries = append(l.entries, jar)
	}
	return l, nil
}

// Names returns the registry this loader interns identities into.
func (l *Loader) Names() *class.ClassNames {
	return l.names
}

// Find returns the raw bytes of the named class's file and a diagnostic
// origin string. Returns ErrClassNotFound when no entry has the class.
func (l *Loader) Find(name string) ([]byte, string, error) {
	for _, e := range l.entries {
		data, origin, ok, err := e.find(name)
		if err != nil {
			return nil, "", err
		}
		if ok {
			return data, origin, nil
		}
	}
	return nil, "", fmt.Errorf("%w: %s", ErrClassNotFound, name)
}

// LoadClassFile finds, parses, and wraps the named class's file,
// interning its identity.
func (l *Loader) LoadClassFile(name string) (*class.ClassFileData, error) {
	data, origin, err := l.Find(name)
	if err != nil {
		return nil, err
	}

	cf, err := classfile.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", origin, err)
	}

	fileID := l.names.GCIDFromString(name)
	fileData := class.NewClassFileData(fileID, origin, cf)

	if thisName, err := fileData.ThisClassName(); err == nil && thisName != name {
		log.Warningf("%s declares class %s, requested as %s", origin, thisName, name)
	}

	log.Debugf("loaded class file %s from %s", name, origin)
	return fileData, nil
}

// LoadClass loads the named class's file and derives its runtime shape:
// superclass resolved through the registry, package interned from the
// name's slash prefix (absent for the default package), method count
// taken from the method table length.
func (l *Loader) LoadClass(name string) (*class.Class, error) {
	fileData, err := l.LoadClassFile(name)
	if err != nil {
		return nil, err
	}

	superID, hasSuper, err := fileData.SuperClassID(l.names)
	if err != nil {
		return nil, fmt.Errorf("resolve superclass of %s: %w", name, err)
	}
	var super *id.ClassFileID
	if hasSuper {
		super = &superID
	}

	var pkg *id.PackageID
	if slash := strings.LastIndexByte(name, '/'); slash >= 0 {
		pkgID := l.names.PackageIDFromPath(name[:slash])
		pkg = &pkgID
	}

	classID := id.ClassID(fileData.ID())
	return class.NewClass(classID, super, pkg, fileData.AccessFlags(), id.MethodIndex(len(fileData.Methods()))), nil
}

// NewArrayClass synthesizes an array pseudo-class from a descriptor-form
// name such as "[I", "[[D", or "[Ljava/lang/String;". The component
// identity is interned; nested array components refer to the inner array
// name as a class. Array classes carry no package.
func (l *Loader) NewArrayClass(name string) (*class.ArrayClass, error) {
	ft := classfile.ParseFieldDescriptor(name)
	if ft == nil {
		return nil, fmt.Errorf("malformed array class name: %q", name)
	}
	if !ft.IsArray() {
		return nil, fmt.Errorf("not an array class name: %q", name)
	}

	var component class.ArrayComponentType
	switch {
	case ft.ArrayDepth > 1:
		component = class.ClassComponent(l.names.GCIDFromString(name[1:]))
	case ft.ClassName != "":
		component = class.ClassComponent(l.names.GCIDFromString(ft.ClassName))
	default:
		prim, ok := class.ComponentForDescriptor(ft.Code)
		if !ok {
			return nil, fmt.Errorf("malformed array class name: %q", name)
		}
		component = prim
	}

	classID := l.names.GCIDFromString(name)
	flags := classfile.AccPublic | classfile.AccFinal | classfile.AccAbstract
	return class.NewArrayClassUnchecked(classID, name, component, l.names.ObjectID(), flags), nil
}

// Close releases any open jar handles.
func (l *Loader) Close() error {
	var firstErr error
	for _, e := range l.entries {
		if err := e.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.entries = nil
	return firstErr
}
