package confedit

import "fmt"

var (
	sectionTpl    = "[%s]"
	subsectionTpl = "[%s %q]"
	keyValueTpl   = "\t%s = %s"
	keyTpl        = "\t%s"
)

// Line is one structural line of a config file. The concrete types are
// BlankLine, CommentLine, SectionLine and VarLine; the set is closed.
type Line interface {
	// Text returns the exact serialization of the line, without the
	// trailing newline. For lines read from a file this is the original
	// text, byte for byte.
	Text() string

	line()
}

// BlankLine is an empty line. The zero value is usable.
type BlankLine struct {
	raw string
}

func (b *BlankLine) Text() string { return b.raw }

func (*BlankLine) line() {}

// CommentLine is a full-line comment (first non-whitespace character is
// '#' or ';'). The text is opaque and preserved verbatim.
type CommentLine struct {
	raw string
}

func (c *CommentLine) Text() string { return c.raw }

func (*CommentLine) line() {}

// SectionLine is a `[section]` or `[section "subsection"]` header. The
// section name matches case-insensitively but is stored as written. The
// subsection is case-sensitive; empty means no subsection.
type SectionLine struct {
	section    string
	subsection string
	raw        string
}

// NewSectionLine returns a header line rendered in the canonical form.
func NewSectionLine(section, subsection string) *SectionLine {
	l := &SectionLine{section: section, subsection: subsection}
	if subsection == "" {
		l.raw = fmt.Sprintf(sectionTpl, section)
	} else {
		l.raw = fmt.Sprintf(subsectionTpl, section, subsection)
	}

	return l
}

func (s *SectionLine) Text() string { return s.raw }

// Section returns the section name as written in the file.
func (s *SectionLine) Section() string { return s.section }

// Subsection returns the subsection name, or "" if the header has none.
func (s *SectionLine) Subsection() string { return s.subsection }

func (*SectionLine) line() {}

// VarLine is a `name = value` line, or a bare `name` for boolean-style
// flags. The name matches exactly. The parser records where the value
// token sits inside the raw text so that SetValue can replace just that
// token and leave the surrounding bytes untouched.
type VarLine struct {
	name  string
	value string
	raw   string

	// value token span within raw, valStart < 0 when raw carries no value
	valStart int
	valEnd   int
}

// NewVarLine returns a variable line rendered in the canonical form. An
// empty value yields a bare flag line.
func NewVarLine(name, value string) *VarLine {
	v := &VarLine{name: name, valStart: -1}
	v.SetValue(value)

	return v
}

func (v *VarLine) Text() string { return v.raw }

// Name returns the variable name as written in the file.
func (v *VarLine) Name() string { return v.name }

// Value returns the value, or "" for a bare flag.
func (v *VarLine) Value() string { return v.value }

// SetValue replaces the value in place. If the line already carried a
// value token only that token is rewritten, indentation and spacing around
// it stay as they were. Lines that gain or lose their value are re-rendered
// in the canonical form.
func (v *VarLine) SetValue(value string) {
	switch {
	case value == "":
		v.raw = fmt.Sprintf(keyTpl, v.name)
		v.valStart, v.valEnd = -1, 0
	case v.valStart >= 0:
		v.raw = v.raw[:v.valStart] + value + v.raw[v.valEnd:]
		v.valEnd = v.valStart + len(value)
	default:
		v.raw = fmt.Sprintf(keyValueTpl, v.name, value)
		v.valEnd = len(v.raw)
		v.valStart = v.valEnd - len(value)
	}
	v.value = value
}

func (*VarLine) line() {}
