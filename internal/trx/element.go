package trx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"unicode/utf8"
)

type attr struct {
	name  string
	value string
}

// Element is a node of the append-only document tree. Attribute order is
// preserved on output.
type Element struct {
	name     string
	attrs    []attr
	text     string
	children []*Element
}

func NewElement(name string) *Element {
	return &Element{name: name}
}

// Ele appends a child element and returns it.
func (e *Element) Ele(name string) *Element {
	child := NewElement(name)
	e.children = append(e.children, child)
	return child
}

// Att sets an attribute, replacing an existing value of the same name.
func (e *Element) Att(name, value string) *Element {
	for i := range e.attrs {
		if e.attrs[i].name == name {
			e.attrs[i].value = value
			return e
		}
	}
	e.attrs = append(e.attrs, attr{name: name, value: value})
	return e
}

func (e *Element) SetText(text string) *Element {
	e.text = text
	return e
}

func (e *Element) Name() string { return e.name }
func (e *Element) Text() string { return e.text }

func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

func (e *Element) Children() []*Element {
	return append([]*Element(nil), e.children...)
}

// ResultNode is the handle post-process hooks receive for a UnitTestResult.
// It only allows appending children.
type ResultNode struct {
	el *Element
}

func (n ResultNode) Ele(name string) *Element {
	return n.el.Ele(name)
}

// MarshalXML writes the element with its attributes in insertion order.
// Characters that are not allowed in XML are dropped.
func (e *Element) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: e.name}}
	for _, a := range e.attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.name}, Value: stripInvalidChars(a.value)})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.text != "" {
		if err := enc.EncodeToken(xml.CharData(stripInvalidChars(e.text))); err != nil {
			return err
		}
	}
	for _, child := range e.children {
		if err := child.MarshalXML(enc, xml.StartElement{}); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Serialize renders the tree as an indented UTF-8 document with an XML declaration.
func (e *Element) Serialize() (string, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(e); err != nil {
		return "", fmt.Errorf("encode %s: %w", e.name, err)
	}
	return buf.String(), nil
}

func stripInvalidChars(s string) string {
	clean := true
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || !isXMLChar(r) {
			clean = false
			break
		}
		i += size
	}
	if clean {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if (r == utf8.RuneError && size == 1) || !isXMLChar(r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// https://www.w3.org/TR/xml/#charsets
func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}
