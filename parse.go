package confedit

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	// "The variable names are case-insensitive, allow only alphanumeric
	// characters and -, and must start with an alphabetic character.".
	reValidName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)
	// Section names additionally allow '.'.
	reValidSection = regexp.MustCompile(`^[a-zA-Z0-9.-]+$`)
)

// syntaxError is a grammar violation within a single line. col is the
// 1-based column of the offending character. Load wraps it with the file
// path and line number.
type syntaxError struct {
	col int
	msg string
}

// parseLine turns one raw text line into its typed form. The raw text is
// preserved verbatim on the returned line. Whitespace-only lines parse as
// blank.
func parseLine(raw string) (Line, *syntaxError) {
	idx := strings.IndexFunc(raw, func(r rune) bool { return !unicode.IsSpace(r) })
	if idx < 0 {
		return &BlankLine{raw: raw}, nil
	}

	switch raw[idx] {
	case '#', ';':
		return &CommentLine{raw: raw}, nil
	case '[':
		return parseSectionLine(raw, idx)
	}

	return parseVarLine(raw, idx)
}

func parseSectionLine(raw string, idx int) (Line, *syntaxError) {
	trimmed := strings.TrimRightFunc(raw, unicode.IsSpace)
	if trimmed[len(trimmed)-1] != ']' {
		return nil, &syntaxError{col: len(trimmed) + 1, msg: "unclosed section header, expected ']'"}
	}

	inner := trimmed[idx+1 : len(trimmed)-1]
	name, rest, hasSub := strings.Cut(inner, " ")
	if name == "" {
		return nil, &syntaxError{col: idx + 2, msg: "empty section name"}
	}
	if !reValidSection.MatchString(name) {
		return nil, &syntaxError{col: idx + 2, msg: fmt.Sprintf("invalid section name %q", name)}
	}

	l := &SectionLine{section: name, raw: raw}
	if !hasSub {
		return l, nil
	}

	rest = strings.TrimSpace(rest)
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return nil, &syntaxError{col: idx + len(name) + 3, msg: "subsection name must be quoted"}
	}
	// Escape sequences are dropped, matching how git reads subsection names.
	l.subsection = strings.ReplaceAll(rest[1:len(rest)-1], "\\", "")

	return l, nil
}

func parseVarLine(raw string, idx int) (Line, *syntaxError) {
	eq := strings.IndexByte(raw, '=')

	namePart := raw
	if eq >= 0 {
		namePart = raw[:eq]
	}
	name := strings.TrimSpace(namePart)
	if !reValidName.MatchString(name) {
		return nil, &syntaxError{col: idx + 1, msg: fmt.Sprintf("invalid variable name %q", name)}
	}

	v := &VarLine{name: name, raw: raw, valStart: -1}
	if eq < 0 {
		// bare flag
		return v, nil
	}

	rest := raw[eq+1:]
	lead := len(rest) - len(strings.TrimLeftFunc(rest, unicode.IsSpace))
	body := strings.TrimRightFunc(rest, unicode.IsSpace)
	if lead < len(body) {
		v.valStart = eq + 1 + lead
		v.valEnd = eq + 1 + len(body)
		v.value = raw[v.valStart:v.valEnd]
	}

	return v, nil
}
