package classfile

import "testing"

func TestParseFieldDescriptor(t *testing.T) {
	cases := []struct {
		desc     string
		want     string
		wantCode byte
	}{
		{"I", "int", 'I'},
		{"Z", "boolean", 'Z'},
		{"Ljava/lang/String;", "java.lang.String", 0},
		{"[I", "[]int", 'I'},
		{"[[Ljava/util/List;", "[][]java.util.List", 0},
	}

	for _, tc := range cases {
		ft := ParseFieldDescriptor(tc.desc)
		if ft == nil {
			t.Fatalf("ParseFieldDescriptor(%q) = nil", tc.desc)
		}
		if got := ft.String(); got != tc.want {
			t.Errorf("ParseFieldDescriptor(%q) = %q, want %q", tc.desc, got, tc.want)
		}
		if ft.Code != tc.wantCode {
			t.Errorf("ParseFieldDescriptor(%q).Code = %q, want %q", tc.desc, ft.Code, tc.wantCode)
		}
	}

	t.Run("malformed", func(t *testing.T) {
		// A field descriptor is the whole string; trailing bytes are not
		// ignored.
		for _, desc := range []string{"Q", "", "[", "[II", "Ix", "Lfoo", "java/lang/Object"} {
			if ft := ParseFieldDescriptor(desc); ft != nil {
				t.Errorf("ParseFieldDescriptor(%q) = %v, want nil", desc, ft)
			}
		}
	})
}

func TestParseMethodDescriptor(t *testing.T) {
	t.Run("void no args", func(t *testing.T) {
		md := ParseMethodDescriptor("()V")
		if md == nil {
			t.Fatal("ParseMethodDescriptor returned nil")
		}
		if len(md.Parameters) != 0 || md.ReturnType != nil {
			t.Errorf("got %d parameters, return %v", len(md.Parameters), md.ReturnType)
		}
	})

	t.Run("mixed parameters", func(t *testing.T) {
		md := ParseMethodDescriptor("(ILjava/lang/String;[J)Z")
		if md == nil {
			t.Fatal("ParseMethodDescriptor returned nil")
		}
		if len(md.Parameters) != 3 {
			t.Fatalf("got %d parameters, want 3", len(md.Parameters))
		}
		wantParams := []string{"int", "java.lang.String", "[]long"}
		for i, want := range wantParams {
			if got := md.Parameters[i].String(); got != want {
				t.Errorf("parameter %d = %q, want %q", i, got, want)
			}
		}
		if md.ReturnType == nil || md.ReturnType.String() != "boolean" {
			t.Errorf("return type = %v, want boolean", md.ReturnType)
		}
		if got := md.String(); got != "(int, java.lang.String, []long) boolean" {
			t.Errorf("String() = %q", got)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		for _, desc := range []string{"", "I", "(Q)V", "(I", "(Ljava/lang/String)V", "()", "()II", "()VV"} {
			if md := ParseMethodDescriptor(desc); md != nil {
				t.Errorf("ParseMethodDescriptor(%q) = %v, want nil", desc, md)
			}
		}
	})
}

func TestNameConversion(t *testing.T) {
	if got := InternalToSourceName("java/util/List"); got != "java.util.List" {
		t.Errorf("InternalToSourceName() = %q", got)
	}
	if got := SourceToInternalName("java.util.List"); got != "java/util/List" {
		t.Errorf("SourceToInternalName() = %q", got)
	}
}
