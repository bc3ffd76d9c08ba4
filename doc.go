/*
Package strspan provides non-owning, bounds-checked views over runs of characters.

A view replaces the legacy "pointer plus a length or a terminator convention" with a
checked value: it records where the characters start and how many there are, validates
every index, and never copies or resizes the storage it points at.

# View types

  - [Span] grants read and write access to its characters.
  - [CSpan] grants read access only. A Span narrows to a CSpan with [Span.Const]; there is
    no way back.
  - [ZSpan] and [CZSpan] are views proven to end with a zero terminator. The proof is
    established once, when the view is built, and is what makes [ZSpan.AssumeZ] safe to
    hand to an API expecting a C string.

Characters are any of byte, uint16 (UTF-16 code units) or rune (wide characters); see
[Char]. Aliases such as [CStringSpan] and [WStringSpan] name the common instantiations.

# Construction

Which source may build which view is fixed by the constructor set, so a forbidden
combination does not compile. Read-only sources (strings, string literals, resizable
buffers, read-only generic views) only have CSpan constructors:

	s := strspan.FromLiteral("Hello\x00") // length 5, literal terminator trimmed
	b := []byte("Hello")
	m := strspan.New(b)                    // writable
	c := m.Const()                         // read-only, same characters

[SourceKind] and [Permitted] describe the same table as data.

# Terminators

[Scan] finds the first terminator of a bounded run; [ScanPtr] walks an unbounded pointer
like strlen. The Ensure* family wraps the scan and returns the content before the
terminator without ever writing one. [MakeZ] validates a declared length and fails with
[ErrNotTerminated] when the last element is not a terminator:

	buf := []byte{'t', 'm', 'p', 0}
	z, err := strspan.NewZ(strspan.New(buf))
	if err != nil {
		return err
	}
	legacyAPI(z.AssumeZ())

# Comparison

[Equal] and [Compare] order views lexicographically by element. Every other source is
adapted into a CSpan first, which never copies:

	strspan.Equal(m.Const(), strspan.FromString("Hello")) // true

Views hold no locks and do not allocate. Concurrent reads through views are safe; writes
through a Span follow the same rules as writes to the underlying slice.
*/
package strspan
