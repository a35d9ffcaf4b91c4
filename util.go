package ofx

import (
	"bytes"
	"unicode/utf8"
)

var (
	// XML escape sequences.
	escQuot = []byte("&#34;") // shorter than "&quot;"
	escApos = []byte("&#39;") // shorter than "&apos;"
	escAmp  = []byte("&amp;")
	escLt   = []byte("&lt;")
	escGt   = []byte("&gt;")
	escTab  = []byte("&#x9;")
	escNl   = []byte("&#xA;")
	escCr   = []byte("&#xD;")
	escFffd = []byte("�") // Unicode replacement character
)

// Decide whether the given rune is in the XML Character Range, per
// the Char production of http://www.xml.com/axml/testaxml.htm,
// Section 2.2 Characters.
func isInCharacterRange(r rune) (inrange bool) {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xDF77 ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// escapeString returns properly escaped XML equivalent of the plain text data s.
func escapeString(s string) string {
	var (
		result bytes.Buffer
		esc    []byte
		last   = 0
	)
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		i += width
		switch r {
		case '"':
			esc = escQuot
		case '\'':
			esc = escApos
		case '&':
			esc = escAmp
		case '<':
			esc = escLt
		case '>':
			esc = escGt
		case '\t':
			esc = escTab
		case '\n':
			esc = escNl
		case '\r':
			esc = escCr
		default:
			if !isInCharacterRange(r) || (r == 0xFFFD && width == 1) {
				esc = escFffd
				break
			}
			continue
		}
		result.WriteString(s[last : i-width])
		result.Write(esc)
		last = i
	}
	result.WriteString(s[last:])
	return result.String()
}

// writeStartTag writes an opening tag for name to the given buffer.
func writeStartTag(name string, buff *bytes.Buffer) {
	buff.WriteByte('<')
	buff.WriteString(name)
	buff.WriteByte('>')
}

// writeEndTag writes a closing tag for name to the given buffer.
func writeEndTag(name string, buff *bytes.Buffer) {
	buff.WriteString("</")
	buff.WriteString(name)
	buff.WriteByte('>')
}

// writeElement writes a complete element with the given text content to the
// given buffer.
func writeElement(name, data string, buff *bytes.Buffer) {
	writeStartTag(name, buff)
	buff.WriteString(escapeString(data))
	writeEndTag(name, buff)
}
