package token

// PrimitiveKind is the closed enumeration of primitive type names. Type
// is a closed grammar (PrimitiveIdent | '*' 'const'? Type): there is no
// user-defined-type-reference production, so every bare identifier in
// type position must name one of these.
type PrimitiveKind int

const (
	Void PrimitiveKind = iota
	Bool

	U8
	U16
	U32
	U64
	U128
	USize

	I8
	I16
	I32
	I64
	I128
	ISize

	F16
	F32
	F64
	F128

	Char
	Str
)

// primitiveNames maps a primitive kind to its canonical source spelling.
var primitiveNames = map[PrimitiveKind]string{
	Void:  "void",
	Bool:  "bool",
	U8:    "u8",
	U16:   "u16",
	U32:   "u32",
	U64:   "u64",
	U128:  "u128",
	USize: "usize",
	I8:    "i8",
	I16:   "i16",
	I32:   "i32",
	I64:   "i64",
	I128:  "i128",
	ISize: "isize",
	F16:   "f16",
	F32:   "f32",
	F64:   "f64",
	F128:  "f128",
	Char:  "char",
	Str:   "str",
}

// String returns the primitive's canonical source spelling.
func (p PrimitiveKind) String() string { return primitiveNames[p] }

// primitivesByName is the reverse lookup used by the parser to classify
// an identifier in type position.
var primitivesByName = map[string]PrimitiveKind{
	"void":  Void,
	"bool":  Bool,
	"u8":    U8,
	"u16":   U16,
	"u32":   U32,
	"u64":   U64,
	"u128":  U128,
	"usize": USize,
	"i8":    I8,
	"i16":   I16,
	"i32":   I32,
	"i64":   I64,
	"i128":  I128,
	"isize": ISize,
	"f16":   F16,
	"f32":   F32,
	"f64":   F64,
	"f128":  F128,
	"char":  Char,
	"str":   Str,
}

// LookupPrimitive classifies word as a primitive type name, returning
// ok=false if it names no primitive.
func LookupPrimitive(word string) (kind PrimitiveKind, ok bool) {
	kind, ok = primitivesByName[word]
	return kind, ok
}
