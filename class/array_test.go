package class

import (
	"errors"
	"testing"

	"github.com/MinusGix/RhoJVM/classfile"
	"github.com/MinusGix/RhoJVM/id"
)

func TestPrimitiveComponentDescriptors(t *testing.T) {
	cases := []struct {
		prim PrimitiveType
		want string
	}{
		{PrimitiveByte, "B"},
		{PrimitiveUnsignedByte, "B"},
		{PrimitiveShort, "S"},
		{PrimitiveUnsignedShort, "S"},
		{PrimitiveInt, "I"},
		{PrimitiveLong, "J"},
		{PrimitiveFloat, "F"},
		{PrimitiveDouble, "D"},
		{PrimitiveChar, "C"},
		{PrimitiveBoolean, "Z"},
	}

	names := NewClassNames()
	for _, tc := range cases {
		ct := PrimitiveComponent(tc.prim)
		if !ct.IsPrimitive() {
			t.Errorf("PrimitiveComponent(%v).IsPrimitive() = false", tc.prim)
		}
		if _, ok := ct.ClassID(); ok {
			t.Errorf("PrimitiveComponent(%v) carries a class id", tc.prim)
		}
		got, err := ct.DescString(names)
		if err != nil {
			t.Fatalf("DescString(%v) error: %v", tc.prim, err)
		}
		if got != tc.want {
			t.Errorf("DescString(%v) = %q, want %q", tc.prim, got, tc.want)
		}
	}
}

func TestUnsignedPrimitivesCollapse(t *testing.T) {
	if PrimitiveComponent(PrimitiveByte) != PrimitiveComponent(PrimitiveUnsignedByte) {
		t.Error("signed and unsigned byte map to distinct components")
	}
	if PrimitiveComponent(PrimitiveShort) != PrimitiveComponent(PrimitiveUnsignedShort) {
		t.Error("signed and unsigned short map to distinct components")
	}
}

func TestComponentForDescriptor(t *testing.T) {
	for _, c := range []byte{'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z'} {
		ct, ok := ComponentForDescriptor(c)
		if !ok {
			t.Fatalf("ComponentForDescriptor(%q) absent", c)
		}
		if got, _ := ct.DescString(nil); got != string(c) {
			t.Errorf("DescString() = %q, want %q", got, string(c))
		}
	}
	for _, c := range []byte{'L', '[', 'V', 'x', 0} {
		if _, ok := ComponentForDescriptor(c); ok {
			t.Errorf("ComponentForDescriptor(%q) present, want absent", c)
		}
	}
}

func TestClassComponentDescString(t *testing.T) {
	names := NewClassNames()

	t.Run("reference is wrapped", func(t *testing.T) {
		stringID := names.GCIDFromString("java/lang/String")
		ct := ClassComponent(stringID)
		if ct.IsPrimitive() {
			t.Error("IsPrimitive() = true for reference component")
		}
		if got, ok := ct.ClassID(); !ok || got != stringID {
			t.Errorf("ClassID() = (%v, %v), want (%v, true)", got, ok, stringID)
		}
		desc, err := ct.DescString(names)
		if err != nil {
			t.Fatalf("DescString() error: %v", err)
		}
		if desc != "Ljava/lang/String;" {
			t.Errorf("DescString() = %q, want %q", desc, "Ljava/lang/String;")
		}
	})

	t.Run("array name passes through", func(t *testing.T) {
		arrayID := names.GCIDFromString("[I")
		desc, err := ClassComponent(arrayID).DescString(names)
		if err != nil {
			t.Fatalf("DescString() error: %v", err)
		}
		if desc != "[I" {
			t.Errorf("DescString() = %q, want %q", desc, "[I")
		}
	})

	t.Run("unknown id fails", func(t *testing.T) {
		bogus := id.NewClassIDUnchecked(9999)
		_, err := ClassComponent(bogus).DescString(names)
		var badID *BadIDError
		if !errors.As(err, &badID) {
			t.Fatalf("error = %v, want *BadIDError", err)
		}
		if badID.ID != bogus {
			t.Errorf("BadIDError.ID = %v, want %v", badID.ID, bogus)
		}
	})
}

func TestArrayClass(t *testing.T) {
	names := NewClassNames()
	arrayID := names.GCIDFromString("[I")
	ct, _ := ComponentForDescriptor('I')
	flags := classfile.AccPublic | classfile.AccFinal | classfile.AccAbstract

	a := NewArrayClassUnchecked(arrayID, "[I", ct, names.ObjectID(), flags)
	if a.ID() != arrayID {
		t.Errorf("ID() = %v, want %v", a.ID(), arrayID)
	}
	if a.Name() != "[I" {
		t.Errorf("Name() = %q, want %q", a.Name(), "[I")
	}
	if a.ComponentType() != ct {
		t.Errorf("ComponentType() = %v, want %v", a.ComponentType(), ct)
	}
	if a.SuperID() != names.ObjectID() {
		t.Errorf("SuperID() = %v, want root object id", a.SuperID())
	}
	if !a.AccessFlags().IsFinal() {
		t.Error("AccessFlags() not final")
	}
}

func TestClassVariant(t *testing.T) {
	names := NewClassNames()
	superID := names.ObjectID()

	classID := names.GCIDFromString("test/Thing")
	cls := NewClass(classID, &superID, nil, classfile.AccPublic, 2)

	arrayID := names.GCIDFromString("[I")
	ct, _ := ComponentForDescriptor('I')
	arr := NewArrayClassUnchecked(arrayID, "[I", ct, superID, classfile.AccPublic|classfile.AccFinal)

	t.Run("class variant", func(t *testing.T) {
		v := VariantOfClass(cls)
		if v.ID() != cls.ID() {
			t.Errorf("ID() = %v, want %v", v.ID(), cls.ID())
		}
		if got, ok := v.SuperID(); !ok || got != superID {
			t.Errorf("SuperID() = (%v, %v), want (%v, true)", got, ok, superID)
		}
		if v.AccessFlags() != cls.AccessFlags() {
			t.Error("AccessFlags() differs from the wrapped class")
		}
		if got, ok := v.AsClass(); !ok || got != cls {
			t.Error("AsClass() did not return the wrapped class")
		}
		if _, ok := v.AsArray(); ok {
			t.Error("AsArray() present for class variant")
		}
	})

	t.Run("array variant", func(t *testing.T) {
		v := VariantOfArray(arr)
		if v.ID() != arr.ID() {
			t.Errorf("ID() = %v, want %v", v.ID(), arr.ID())
		}
		if got, ok := v.SuperID(); !ok || got != superID {
			t.Errorf("SuperID() = (%v, %v), want (%v, true)", got, ok, superID)
		}
		if v.AccessFlags() != arr.AccessFlags() {
			t.Error("AccessFlags() differs from the wrapped array class")
		}
		if got, ok := v.AsArray(); !ok || got != arr {
			t.Error("AsArray() did not return the wrapped array class")
		}
		if _, ok := v.AsClass(); ok {
			t.Error("AsClass() present for array variant")
		}
	})
}
