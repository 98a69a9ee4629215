package confedit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gopasspw/gopass/pkg/debug"
)

// anyName matches every variable name in a lookup. '*' is not a valid
// variable name, so it can not collide with a real key.
const anyName = "*"

// Document holds one config file as an ordered sequence of typed lines.
// The sequence is the single source of truth: all queries and mutations
// walk it, Save serializes it. Document order is meaningful and is only
// changed where an operation explicitly inserts or removes a line.
//
// A Document is a snapshot. Changes to the underlying file after Load are
// not detected. It is not safe for concurrent use.
type Document struct {
	path  string
	level Level

	// Lines is exposed for advanced callers that need raw access to the
	// sequence. Reordering or removing lines through it is allowed; the
	// document has no state beyond it.
	Lines []Line
}

// New returns an empty document for the given path without touching the
// file system. The level is derived from the path.
func New(path string) *Document {
	return &Document{path: path, level: levelForPath(path)}
}

// Load reads and parses the file at path. A missing file yields an empty
// document; any malformed line aborts the whole load with a
// *MalformedLineError. The level is derived from the path.
func Load(path string) (*Document, error) {
	return load(path, levelForPath(path))
}

// LoadWithLevel is Load with an explicit level tag.
func LoadWithLevel(path string, lvl Level) (*Document, error) {
	return load(path, lvl)
}

// Parse reads a document from r. The document has no path, Save on it is
// an error. Mostly useful for tests and read-only consumers.
func Parse(r io.Reader) (*Document, error) {
	lines, err := parseAll(r, "")
	if err != nil {
		return nil, err
	}

	return &Document{Lines: lines}, nil
}

func load(path string, lvl Level) (*Document, error) {
	d := &Document{path: path, level: lvl}

	fh, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		debug.V(1).Log("no config at %s, starting empty", path)

		return d, nil
	}
	if err != nil {
		return nil, err
	}
	defer fh.Close() //nolint:errcheck

	lines, err := parseAll(fh, path)
	if err != nil {
		return nil, err
	}
	d.Lines = lines

	debug.V(2).Log("loaded %d lines from %s (%s)", len(lines), path, lvl)

	return d, nil
}

func parseAll(r io.Reader, path string) ([]Line, error) {
	s := bufio.NewScanner(r)

	lines := make([]Line, 0, 128)
	for n := 1; s.Scan(); n++ {
		raw := s.Text()
		if raw == "" {
			lines = append(lines, &BlankLine{})

			continue
		}

		l, serr := parseLine(raw)
		if serr != nil {
			return nil, &MalformedLineError{Path: path, Line: n, Col: serr.col, Msg: serr.msg}
		}
		lines = append(lines, l)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// Path returns the file path this document was constructed for.
func (d *Document) Path() string { return d.path }

// Level returns the level tag assigned at construction.
func (d *Document) Level() Level { return d.level }

// String returns the serialized document, one line of text per entry.
func (d *Document) String() string {
	var sb strings.Builder
	for _, l := range d.Lines {
		sb.WriteString(l.Text())
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Save serializes the full line sequence to the document's path,
// overwriting any previous content. There is no atomic rename, a failed
// write may leave the file partially written.
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoPath
	}

	if err := os.MkdirAll(filepath.Dir(d.path), 0o700); err != nil {
		return fmt.Errorf("failed to create directory %q for %q: %w", filepath.Dir(d.path), d.path, err)
	}

	fh, err := os.OpenFile(d.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer fh.Close() //nolint:errcheck

	w := bufio.NewWriter(fh)
	for _, l := range d.Lines {
		if _, err := w.WriteString(l.Text()); err != nil {
			return fmt.Errorf("failed to write config to %s: %w", d.path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write config to %s: %w", d.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write config to %s: %w", d.path, err)
	}

	debug.V(1).Log("wrote %d lines to %s", len(d.Lines), d.path)

	return fh.Close()
}

// matches yields (header index, variable index) pairs for every variable
// in the given section whose name matches, in document order. The section
// name matches case-insensitively, the subsection exactly and the name
// exactly unless it is anyName. Variables before the first header never
// match. The sequence is restartable.
func (d *Document) matches(section, subsection, name string) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		hdr := -1
		inSection := false
		for i, l := range d.Lines {
			switch l := l.(type) {
			case *SectionLine:
				hdr = i
				inSection = strings.EqualFold(l.section, section) && l.subsection == subsection
			case *VarLine:
				if hdr < 0 || !inSection {
					continue
				}
				if name != anyName && l.name != name {
					continue
				}
				if !yield(hdr, i) {
					return
				}
			}
		}
	}
}

func (d *Document) collect(section, subsection, name string) (hdrs, vars []int) {
	for hi, vi := range d.matches(section, subsection, name) {
		hdrs = append(hdrs, hi)
		vars = append(vars, vi)
	}

	return hdrs, vars
}

// Find returns all variables matching section, subsection and name as a
// lazy sequence of entries in document order. valueFilter narrows the
// result per the filter convention (see compileValueFilter); "" matches
// everything. The only error is an invalid filter expression.
func (d *Document) Find(section, subsection, name, valueFilter string) (iter.Seq[Entry], error) {
	match, err := compileValueFilter(valueFilter)
	if err != nil {
		return nil, err
	}

	return func(yield func(Entry) bool) {
		for hi, vi := range d.matches(section, subsection, name) {
			h := d.Lines[hi].(*SectionLine)
			v := d.Lines[vi].(*VarLine)
			if !match(v.value) {
				continue
			}
			if !yield(d.entryFor(h, v)) {
				return
			}
		}
	}, nil
}

// Entries yields every variable that lives under a section header, in
// document order, tagged with the document's level. Variables before the
// first header are skipped. The sequence is restartable.
func (d *Document) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		var hdr *SectionLine
		for _, l := range d.Lines {
			switch l := l.(type) {
			case *SectionLine:
				hdr = l
			case *VarLine:
				if hdr == nil {
					continue
				}
				if !yield(d.entryFor(hdr, l)) {
					return
				}
			}
		}
	}
}

func (d *Document) entryFor(h *SectionLine, v *VarLine) Entry {
	return Entry{
		Section:    h.section,
		Subsection: h.subsection,
		Name:       v.name,
		Value:      v.value,
		Level:      d.level,
	}
}

// Add appends a new variable to the section without checking for existing
// duplicates; callers wanting set-or-replace semantics use Set. The
// section header is created at the end of the document if it does not
// exist. The new line goes at the end of the section's contiguous content
// block: right before the first blank line, next header or end of
// document after the header.
func (d *Document) Add(section, subsection, name, value string) {
	hdr := d.findOrCreateSection(section, subsection)

	at := hdr + 1
	for at < len(d.Lines) && !isBoundary(d.Lines[at]) {
		at++
	}

	debug.V(3).Log("adding %s at line %d", fqKey(section, subsection, name), at+1)
	d.insertLine(at, NewVarLine(name, value))
}

// Set replaces the value of the single variable matching the key, leaving
// every other line untouched. With more than one match it fails with
// *MultipleValuesError and the document stays unchanged. With no match
// the variable is inserted: right after the section header, unless any
// non-header line follows the header in the remainder of the document, in
// which case right after the first such line. That scan runs over the
// whole remainder, so an empty section immediately followed by a
// populated one receives the new line inside the later block.
func (d *Document) Set(section, subsection, name, value string) error {
	_, vars := d.collect(section, subsection, name)
	switch len(vars) {
	case 0:
		// no match, insert below
	case 1:
		debug.V(3).Log("set %s to %q in place", fqKey(section, subsection, name), value)
		d.Lines[vars[0]].(*VarLine).SetValue(value)

		return nil
	default:
		return &MultipleValuesError{Key: fqKey(section, subsection, name)}
	}

	hdr := d.findOrCreateSection(section, subsection)

	at := hdr + 1
	for i := hdr + 1; i < len(d.Lines); i++ {
		if _, ok := d.Lines[i].(*SectionLine); !ok {
			at = i + 1

			break
		}
	}

	debug.V(3).Log("inserting %s at line %d", fqKey(section, subsection, name), at+1)
	d.insertLine(at, NewVarLine(name, value))

	return nil
}

// UnSet removes the single variable matching the key and collapses the
// owning section header if that leaves the section empty. No match is a
// no-op; more than one match fails with *MultipleValuesError and the
// document stays unchanged.
func (d *Document) UnSet(section, subsection, name string) error {
	hdrs, vars := d.collect(section, subsection, name)
	switch len(vars) {
	case 0:
		return nil
	case 1:
	default:
		return &MultipleValuesError{Key: fqKey(section, subsection, name)}
	}

	debug.V(3).Log("removing %s", fqKey(section, subsection, name))
	d.removeLine(vars[0])
	d.collapseSection(hdrs[0])

	return nil
}

// SetAll overwrites the value of every variable matching the key and the
// value filter. No lines are inserted or removed, a key with no matches
// is a no-op.
func (d *Document) SetAll(section, subsection, name, value, valueFilter string) error {
	match, err := compileValueFilter(valueFilter)
	if err != nil {
		return err
	}

	for _, vi := range d.matches(section, subsection, name) {
		v := d.Lines[vi].(*VarLine)
		if !match(v.value) {
			continue
		}
		v.SetValue(value)
	}

	return nil
}

// UnSetAll removes every variable matching the key and the value filter,
// then collapses each owning section header that was left empty.
func (d *Document) UnSetAll(section, subsection, name, valueFilter string) error {
	match, err := compileValueFilter(valueFilter)
	if err != nil {
		return err
	}

	var removed []int
	var owners []*SectionLine // distinct, in first-seen order
	for hi, vi := range d.matches(section, subsection, name) {
		v := d.Lines[vi].(*VarLine)
		if !match(v.value) {
			continue
		}
		removed = append(removed, vi)
		h := d.Lines[hi].(*SectionLine)
		if !slices.Contains(owners, h) {
			owners = append(owners, h)
		}
	}

	for i := len(removed) - 1; i >= 0; i-- {
		d.removeLine(removed[i])
	}

	// Removals shifted the remaining lines, find each owner again by
	// identity before deciding whether it collapsed.
	for _, h := range owners {
		if at := slices.IndexFunc(d.Lines, func(l Line) bool { return l == Line(h) }); at >= 0 {
			d.collapseSection(at)
		}
	}

	return nil
}

// collapseSection removes the header at hdr if its section no longer has
// any content. A header that became the last line of the document is
// always removed. Otherwise the lines after it decide: a variable or
// comment keeps the header, another header with only blank lines in
// between removes it (the blanks stay), and reaching the end of the
// document keeps it.
func (d *Document) collapseSection(hdr int) {
	if hdr == len(d.Lines)-1 {
		d.removeLine(hdr)

		return
	}

	for i := hdr + 1; i < len(d.Lines); i++ {
		switch d.Lines[i].(type) {
		case *VarLine, *CommentLine:
			return
		case *SectionLine:
			d.removeLine(hdr)

			return
		}
	}
}

func (d *Document) findSection(section, subsection string) int {
	for i, l := range d.Lines {
		if h, ok := l.(*SectionLine); ok && strings.EqualFold(h.section, section) && h.subsection == subsection {
			return i
		}
	}

	return -1
}

func (d *Document) findOrCreateSection(section, subsection string) int {
	if i := d.findSection(section, subsection); i >= 0 {
		return i
	}

	debug.V(3).Log("creating section [%s %q]", section, subsection)
	d.Lines = append(d.Lines, NewSectionLine(section, subsection))

	return len(d.Lines) - 1
}

func (d *Document) insertLine(at int, l Line) {
	d.Lines = slices.Insert(d.Lines, at, l)
}

func (d *Document) removeLine(at int) {
	d.Lines = slices.Delete(d.Lines, at, at+1)
}

// isBoundary reports whether l ends a section's contiguous content block.
func isBoundary(l Line) bool {
	switch l.(type) {
	case *BlankLine, *SectionLine:
		return true
	default:
		return false
	}
}
