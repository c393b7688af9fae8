package class

import (
	"errors"
	"testing"

	"github.com/MinusGix/RhoJVM/classfile"
	"github.com/MinusGix/RhoJVM/id"
)

// thingClassFile builds a parsed test/Thing extending java/lang/Object
// with one interface and two methods, without going through the binary
// format.
func thingClassFile() *classfile.ClassFile {
	return &classfile.ClassFile{
		Version: classfile.Version{Major: 52},
		ConstantPool: classfile.ConstantPool{
			&classfile.ConstantUtf8Info{Value: "test/Thing"},       // 1
			&classfile.ConstantClassInfo{NameIndex: 1},             // 2
			&classfile.ConstantUtf8Info{Value: "java/lang/Object"}, // 3
			&classfile.ConstantClassInfo{NameIndex: 3},             // 4
			&classfile.ConstantUtf8Info{Value: "<init>"},           // 5
			&classfile.ConstantUtf8Info{Value: "()V"},              // 6
			&classfile.ConstantUtf8Info{Value: "run"},              // 7
			&classfile.ConstantUtf8Info{Value: "java/lang/Runnable"}, // 8
			&classfile.ConstantClassInfo{NameIndex: 8},               // 9
		},
		AccessFlags: classfile.AccPublic | classfile.AccSuper,
		ThisClass:   2,
		SuperClass:  4,
		Interfaces:  []classfile.ClassIndex{9},
		Methods: []classfile.MethodInfo{
			{AccessFlags: classfile.AccPublic, NameIndex: 5, DescriptorIndex: 6},
			{AccessFlags: classfile.AccPublic, NameIndex: 7, DescriptorIndex: 6},
		},
	}
}

func thingData() *ClassFileData {
	return NewClassFileData(id.NewClassIDUnchecked(1), "test/Thing.class", thingClassFile())
}

func TestClassFileDataAccessors(t *testing.T) {
	d := thingData()

	if got := d.ID(); got != id.NewClassIDUnchecked(1) {
		t.Errorf("ID() = %v, want id 1", got)
	}
	if got := d.Path(); got != "test/Thing.class" {
		t.Errorf("Path() = %q", got)
	}
	if got := d.Version(); got.Major != 52 {
		t.Errorf("Version().Major = %d, want 52", got.Major)
	}
	if !d.AccessFlags().IsPublic() {
		t.Error("AccessFlags() not public")
	}
}

func TestGetT(t *testing.T) {
	d := thingData()

	t.Run("matching kind", func(t *testing.T) {
		entry, ok := GetT(d, classfile.ClassIndex(2))
		if !ok {
			t.Fatal("GetT() failed for class entry at index 2")
		}
		if name, _ := d.GetText(entry.NameIndex); name != "test/Thing" {
			t.Errorf("name = %q, want %q", name, "test/Thing")
		}
	})

	t.Run("mismatched kind", func(t *testing.T) {
		if _, ok := GetT(d, classfile.Utf8Index(2)); ok {
			t.Error("GetT() resolved a class entry through a utf8-typed index")
		}
	})

	t.Run("out of range", func(t *testing.T) {
		if _, ok := GetT(d, classfile.Utf8Index(50)); ok {
			t.Error("GetT() resolved an out-of-range index")
		}
	})

	t.Run("mutation is visible to later lookups", func(t *testing.T) {
		entry, ok := GetT(d, classfile.Utf8Index(7))
		if !ok {
			t.Fatal("GetT() failed for utf8 at index 7")
		}
		entry.Value = "walk"
		if got, _ := d.GetText(classfile.Utf8Index(7)); got != "walk" {
			t.Errorf("GetText(7) after mutation = %q, want %q", got, "walk")
		}
	})
}

func TestGetMethod(t *testing.T) {
	d := thingData()

	m, ok := d.GetMethod(0)
	if !ok {
		t.Fatal("GetMethod(0) absent")
	}
	if name, _ := d.GetText(m.NameIndex); name != "<init>" {
		t.Errorf("method 0 name = %q, want %q", name, "<init>")
	}

	if _, ok := d.GetMethod(2); ok {
		t.Error("GetMethod(2) present, want absent")
	}
	if _, ok := d.GetMethod(-1); ok {
		t.Error("GetMethod(-1) present, want absent")
	}

	if got := len(d.Methods()); got != 2 {
		t.Errorf("len(Methods()) = %d, want 2", got)
	}
}

func TestThisClassName(t *testing.T) {
	t.Run("resolves", func(t *testing.T) {
		name, err := thingData().ThisClassName()
		if err != nil {
			t.Fatalf("ThisClassName() error: %v", err)
		}
		if name != "test/Thing" {
			t.Errorf("ThisClassName() = %q, want %q", name, "test/Thing")
		}
	})

	t.Run("bad this-class index", func(t *testing.T) {
		cf := thingClassFile()
		cf.ThisClass = 50
		d := NewClassFileData(id.ClassID{}, "", cf)
		if _, err := d.ThisClassName(); !errors.Is(err, ErrInvalidThisClassIndex) {
			t.Errorf("error = %v, want ErrInvalidThisClassIndex", err)
		}
	})

	t.Run("bad name index", func(t *testing.T) {
		cf := thingClassFile()
		cf.ConstantPool[1] = &classfile.ConstantClassInfo{NameIndex: 50}
		d := NewClassFileData(id.ClassID{}, "", cf)
		if _, err := d.ThisClassName(); !errors.Is(err, ErrInvalidThisClassNameIndex) {
			t.Errorf("error = %v, want ErrInvalidThisClassNameIndex", err)
		}
	})
}

func TestSuperClassName(t *testing.T) {
	t.Run("resolves", func(t *testing.T) {
		name, ok, err := thingData().SuperClassName()
		if err != nil || !ok {
			t.Fatalf("SuperClassName() = (%q, %v, %v)", name, ok, err)
		}
		if name != "java/lang/Object" {
			t.Errorf("SuperClassName() = %q, want %q", name, "java/lang/Object")
		}
	})

	t.Run("zero index means no superclass", func(t *testing.T) {
		cf := thingClassFile()
		cf.SuperClass = 0
		d := NewClassFileData(id.ClassID{}, "", cf)
		name, ok, err := d.SuperClassName()
		if err != nil {
			t.Fatalf("SuperClassName() error: %v", err)
		}
		if ok || name != "" {
			t.Errorf("SuperClassName() = (%q, %v), want absent", name, ok)
		}
	})

	t.Run("unresolvable index is an error, not absent", func(t *testing.T) {
		cf := thingClassFile()
		cf.SuperClass = 50
		d := NewClassFileData(id.ClassID{}, "", cf)
		_, ok, err := d.SuperClassName()
		if !errors.Is(err, ErrInvalidSuperClassIndex) {
			t.Errorf("error = %v, want ErrInvalidSuperClassIndex", err)
		}
		if ok {
			t.Error("ok = true alongside error")
		}
	})

	t.Run("bad name index", func(t *testing.T) {
		cf := thingClassFile()
		cf.ConstantPool[3] = &classfile.ConstantClassInfo{NameIndex: 50}
		d := NewClassFileData(id.ClassID{}, "", cf)
		if _, _, err := d.SuperClassName(); !errors.Is(err, ErrInvalidSuperClassNameIndex) {
			t.Errorf("error = %v, want ErrInvalidSuperClassNameIndex", err)
		}
	})
}

func TestSuperClassID(t *testing.T) {
	names := NewClassNames()
	d := thingData()

	superID, ok, err := d.SuperClassID(names)
	if err != nil || !ok {
		t.Fatalf("SuperClassID() = (%v, %v, %v)", superID, ok, err)
	}
	if superID != names.ObjectID() {
		t.Errorf("SuperClassID() = %v, want the root object id %v", superID, names.ObjectID())
	}

	t.Run("no superclass", func(t *testing.T) {
		cf := thingClassFile()
		cf.SuperClass = 0
		d := NewClassFileData(id.ClassID{}, "", cf)
		if _, ok, err := d.SuperClassID(names); ok || err != nil {
			t.Errorf("SuperClassID() = (ok=%v, err=%v), want absent", ok, err)
		}
	})
}

func TestInterfaceIndices(t *testing.T) {
	d := thingData()

	collect := func() []classfile.ClassIndex {
		var out []classfile.ClassIndex
		for idx := range d.InterfaceIndices() {
			out = append(out, idx)
		}
		return out
	}

	first := collect()
	if len(first) != 1 || first[0] != 9 {
		t.Fatalf("InterfaceIndices() = %v, want [9]", first)
	}

	// Each call yields a fresh sequence.
	second := collect()
	if len(second) != len(first) || second[0] != first[0] {
		t.Errorf("second iteration = %v, want %v", second, first)
	}

	entry, ok := GetT(d, first[0])
	if !ok {
		t.Fatal("interface index did not resolve to a class entry")
	}
	if name, _ := d.GetText(entry.NameIndex); name != "java/lang/Runnable" {
		t.Errorf("interface name = %q, want %q", name, "java/lang/Runnable")
	}
}
