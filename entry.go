package confedit

// Entry is a flattened, immutable view of a single variable: where it
// lives, what it is called and what it holds. Entries are built fresh on
// every read and do not track later mutations of the document.
type Entry struct {
	Section    string
	Subsection string
	Name       string
	Value      string
	Level      Level
}

// Key returns the fully qualified dotted key, e.g. "core.editor" or
// "remote.origin.url". Note that the subsection itself may contain dots.
func (e Entry) Key() string {
	if e.Subsection == "" {
		return e.Section + "." + e.Name
	}

	return e.Section + "." + e.Subsection + "." + e.Name
}

func fqKey(section, subsection, name string) string {
	return Entry{Section: section, Subsection: subsection, Name: name}.Key()
}
