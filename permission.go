package strspan

// SourceKind classifies what a view can be built from.
type SourceKind uint8

const (
	// SourceLiteral is a string literal spelled with its terminator: FromLiteral.
	SourceLiteral SourceKind = iota
	// SourceConstArray is read-only character storage such as a Go string: FromString.
	SourceConstArray
	// SourceArray is a writable slice or array: New, NewConst.
	SourceArray
	// SourceConstPointer is a pointer into read-only storage plus a length: ConstFromPtr.
	SourceConstPointer
	// SourcePointer is a pointer into writable storage plus a length: FromPtr, ConstFromPtr.
	SourcePointer
	// SourceString is an immutable string object: FromString.
	SourceString
	// SourceBuffer is an owning, resizable string object: FromBuffer, FromBuilder.
	SourceBuffer
	// SourceContainer is a named slice type held by reference: New, NewConst.
	SourceContainer
	// SourceGenericSpan is a span.Span: FromSpan, ConstFromSpan.
	SourceGenericSpan
	// SourceGenericView is a read-only span.View: ConstFromView.
	SourceGenericView
	// SourceCharSpan is another Span: copy it, or Span.Const.
	SourceCharSpan
	// SourceCharCSpan is another CSpan: copy it.
	SourceCharCSpan
)

var sourceNames = [...]string{
	SourceLiteral:      "literal",
	SourceConstArray:   "const array",
	SourceArray:        "array",
	SourceConstPointer: "const pointer",
	SourcePointer:      "pointer",
	SourceString:       "string",
	SourceBuffer:       "buffer",
	SourceContainer:    "container",
	SourceGenericSpan:  "generic span",
	SourceGenericView:  "generic view",
	SourceCharSpan:     "span",
	SourceCharCSpan:    "cspan",
}

func (k SourceKind) String() string {
	if int(k) < len(sourceNames) {
		return sourceNames[k]
	}
	return "unknown"
}

// writable lists the kinds that have a constructor for a writable view. Every kind
// has one for a read-only view.
var writable = [...]bool{
	SourceArray:       true,
	SourcePointer:     true,
	SourceContainer:   true,
	SourceGenericSpan: true,
	SourceCharSpan:    true,
}

// Permitted reports whether a view of the requested mutability can be built from a
// source of kind k. It mirrors the constructor set and is never consulted by it.
func Permitted(k SourceKind, mutable bool) bool {
	if int(k) >= len(sourceNames) {
		return false
	}
	if !mutable {
		return true
	}
	return int(k) < len(writable) && writable[k]
}
