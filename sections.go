package confedit

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/gopasspw/gopass/pkg/set"
)

// Sections returns a sorted list of all distinct section names, lowercased
// since section names match case-insensitively.
func (d *Document) Sections() []string {
	names := make([]string, 0, 16)
	for _, l := range d.Lines {
		if h, ok := l.(*SectionLine); ok {
			names = append(names, strings.ToLower(h.section))
		}
	}

	return set.Sorted(names)
}

// Subsections returns a sorted list of all distinct subsections of the
// given section. Headers without a subsection are not listed.
func (d *Document) Subsections(section string) []string {
	subs := make([]string, 0, 16)
	for _, l := range d.Lines {
		h, ok := l.(*SectionLine)
		if !ok || !strings.EqualFold(h.section, section) {
			continue
		}
		subs = append(subs, h.subsection)
	}

	return set.SortedFiltered(subs, func(s string) bool {
		return s != ""
	})
}

// SectionsMatching returns all distinct section names matching the given
// glob pattern, e.g. "remote*". Double-asterisk patterns are supported.
func (d *Document) SectionsMatching(pattern string) ([]string, error) {
	g, err := glob.Compile(pattern, '.')
	if err != nil {
		return nil, err
	}

	return set.SortedFiltered(d.Sections(), g.Match), nil
}
