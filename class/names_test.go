package class

import (
	"errors"
	"testing"

	"github.com/MinusGix/RhoJVM/id"
)

func TestClassNamesIntern(t *testing.T) {
	names := NewClassNames()

	first := names.GCIDFromString("test/Thing")
	second := names.GCIDFromString("test/Thing")
	if first != second {
		t.Errorf("interning the same name twice gave %v and %v", first, second)
	}

	other := names.GCIDFromString("test/Other")
	if other == first {
		t.Error("distinct names share an id")
	}

	name, err := names.NameFromGCID(first)
	if err != nil {
		t.Fatalf("NameFromGCID() error: %v", err)
	}
	if name.Path() != "test/Thing" {
		t.Errorf("NameFromGCID() = %q, want %q", name.Path(), "test/Thing")
	}
	if name.IsArray() {
		t.Error("IsArray() = true for an ordinary class name")
	}
}

func TestClassNamesObjectPreInterned(t *testing.T) {
	names := NewClassNames()

	objectID := names.ObjectID()
	if got := names.GCIDFromString(ObjectClassName); got != objectID {
		t.Errorf("GCIDFromString(%q) = %v, want the pre-interned %v", ObjectClassName, got, objectID)
	}

	name, err := names.NameFromGCID(objectID)
	if err != nil {
		t.Fatalf("NameFromGCID() error: %v", err)
	}
	if name.Path() != ObjectClassName {
		t.Errorf("object name = %q, want %q", name.Path(), ObjectClassName)
	}
}

func TestNameFromGCIDUnknown(t *testing.T) {
	names := NewClassNames()
	bogus := id.NewClassIDUnchecked(9999)

	_, err := names.NameFromGCID(bogus)
	var badID *BadIDError
	if !errors.As(err, &badID) {
		t.Fatalf("error = %v, want *BadIDError", err)
	}
	if badID.ID != bogus {
		t.Errorf("BadIDError.ID = %v, want %v", badID.ID, bogus)
	}
}

func TestArrayNameIntern(t *testing.T) {
	names := NewClassNames()

	arrayID := names.GCIDFromString("[[Ljava/lang/String;")
	name, err := names.NameFromGCID(arrayID)
	if err != nil {
		t.Fatalf("NameFromGCID() error: %v", err)
	}
	if !name.IsArray() {
		t.Error("IsArray() = false for an array descriptor name")
	}
	if name.String() != "[[Ljava/lang/String;" {
		t.Errorf("String() = %q", name.String())
	}
}

func TestPackageIntern(t *testing.T) {
	names := NewClassNames()

	lang := names.PackageIDFromPath("java/lang")
	if got := names.PackageIDFromPath("java/lang"); got != lang {
		t.Errorf("interning the same path twice gave %v and %v", lang, got)
	}
	util := names.PackageIDFromPath("java/util")
	if util == lang {
		t.Error("distinct paths share an id")
	}

	path, ok := names.PackagePath(lang)
	if !ok || path != "java/lang" {
		t.Errorf("PackagePath() = (%q, %v), want (%q, true)", path, ok, "java/lang")
	}

	if _, ok := names.PackagePath(id.NewPackageIDUnchecked(9999)); ok {
		t.Error("PackagePath() resolved an id this registry never issued")
	}
}
