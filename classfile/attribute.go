package classfile

import "encoding/binary"

// AttributeInfo is a raw attribute: its name index and undecoded payload.
// A handful of attribute kinds that later stages need are decoded eagerly
// into Parsed; everything else stays available as bytes.
type AttributeInfo struct {
	NameIndex Utf8Index
	Info      []byte
	Parsed    any
}

type CodeAttribute struct {
	MaxStack       uint16
	MaxLocals      uint16
	Code           []byte
	ExceptionTable []ExceptionTableEntry
}

type ExceptionTableEntry struct {
	StartPC   uint16
	EndPC     uint16
	HandlerPC uint16
	CatchType ClassIndex
}

type SourceFileAttribute struct {
	SourceFileIndex Utf8Index
}

type ConstantValueAttribute struct {
	// Index of an Integer, Float, Long, Double, or String entry; the kind
	// depends on the field's type, so the index stays raw.
	ConstantValueIndex uint16
}

type ExceptionsAttribute struct {
	ExceptionIndexTable []ClassIndex
}

type SignatureAttribute struct {
	SignatureIndex Utf8Index
}

func (a *AttributeInfo) Name(cp ConstantPool) string {
	return cp.Utf8(a.NameIndex)
}

func (a *AttributeInfo) AsCode() *CodeAttribute {
	code, _ := a.Parsed.(*CodeAttribute)
	return code
}

func (a *AttributeInfo) AsSourceFile() *SourceFileAttribute {
	sf, _ := a.Parsed.(*SourceFileAttribute)
	return sf
}

func (a *AttributeInfo) AsConstantValue() *ConstantValueAttribute {
	cv, _ := a.Parsed.(*ConstantValueAttribute)
	return cv
}

func (a *AttributeInfo) AsExceptions() *ExceptionsAttribute {
	ex, _ := a.Parsed.(*ExceptionsAttribute)
	return ex
}

func (a *AttributeInfo) AsSignature() *SignatureAttribute {
	sig, _ := a.Parsed.(*SignatureAttribute)
	return sig
}

// byteReader walks an attribute payload. Reads past the end return zero;
// ok goes false and stays false.
type byteReader struct {
	data []byte
	pos  int
	ok   bool
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data, ok: true}
}

func (r *byteReader) u2() uint16 {
	if !r.ok || r.pos+2 > len(r.data) {
		r.ok = false
		return 0
	}
	v := binary.BigEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v
}

func (r *byteReader) u4() uint32 {
	if !r.ok || r.pos+4 > len(r.data) {
		r.ok = false
		return 0
	}
	v := binary.BigEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v
}

func (r *byteReader) bytes(n int) []byte {
	if !r.ok || n < 0 || r.pos+n > len(r.data) {
		r.ok = false
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

func parseCodeAttribute(info []byte) *CodeAttribute {
	r := newByteReader(info)
	code := &CodeAttribute{
		MaxStack:  r.u2(),
		MaxLocals: r.u2(),
	}
	codeLength := r.u4()
	code.Code = r.bytes(int(codeLength))

	exceptionCount := r.u2()
	for i := uint16(0); i < exceptionCount && r.ok; i++ {
		code.ExceptionTable = append(code.ExceptionTable, ExceptionTableEntry{
			StartPC:   r.u2(),
			EndPC:     r.u2(),
			HandlerPC: r.u2(),
			CatchType: ClassIndex(r.u2()),
		})
	}
	if !r.ok {
		return nil
	}
	// Nested attributes (LineNumberTable etc.) are left undecoded.
	return code
}

func parseSourceFileAttribute(info []byte) *SourceFileAttribute {
	r := newByteReader(info)
	attr := &SourceFileAttribute{SourceFileIndex: Utf8Index(r.u2())}
	if !r.ok {
		return nil
	}
	return attr
}

func parseConstantValueAttribute(info []byte) *ConstantValueAttribute {
	r := newByteReader(info)
	attr := &ConstantValueAttribute{ConstantValueIndex: r.u2()}
	if !r.ok {
		return nil
	}
	return attr
}

func parseExceptionsAttribute(info []byte) *ExceptionsAttribute {
	r := newByteReader(info)
	count := r.u2()
	attr := &ExceptionsAttribute{}
	for i := uint16(0); i < count && r.ok; i++ {
		attr.ExceptionIndexTable = append(attr.ExceptionIndexTable, ClassIndex(r.u2()))
	}
	if !r.ok {
		return nil
	}
	return attr
}

func parseSignatureAttribute(info []byte) *SignatureAttribute {
	r := newByteReader(info)
	attr := &SignatureAttribute{SignatureIndex: Utf8Index(r.u2())}
	if !r.ok {
		return nil
	}
	return attr
}
