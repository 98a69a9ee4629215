// Package confedit implements a round-trip-safe editor for git-config style
// configuration files. A file is parsed into an ordered sequence of typed
// lines (blank, comment, section header, variable) that keeps the exact text
// of every line, so loading a file and saving it again reproduces it byte for
// byte. Mutations are targeted: only the lines an operation touches change,
// unrelated lines are never reordered or reformatted.
//
// The reference for the file grammar is
// https://mirrors.edge.kernel.org/pub/software/scm/git/docs/git-config.html
//
// # Usage
//
// Load a document, query and mutate it, write it back:
//
//	doc, err := confedit.Load(".git/config")
//	if err != nil {
//		...
//	}
//
//	entries, err := doc.Find("remote", "origin", "url", "")
//	for e := range entries {
//		fmt.Println(e.Key(), "=", e.Value)
//	}
//
//	if err := doc.Set("core", "", "editor", "nano"); err != nil { ... }
//	if err := doc.Save(); err != nil { ... }
//
// Section names match case-insensitively, subsection names match exactly and
// variable names match exactly. A variable with an empty value serializes as
// a bare name (a boolean-style flag).
//
// # Ambiguous keys
//
// A key may legitimately appear multiple times in one section. Set and UnSet
// refuse to guess and fail with *MultipleValuesError; SetAll and UnSetAll
// operate on every match, optionally narrowed by a value filter. A value
// filter is a regular expression, or a regular expression prefixed with `!`
// to invert the match, or empty to match everything.
//
// # Levels
//
// Each document carries a Level (system, global or local) derived from the
// path it was loaded from, or supplied explicitly via LoadWithLevel. The
// level only tags read results; precedence between files of different levels
// is the caller's business.
//
// # Known limitations
//
//   - Values are opaque strings, no type coercion is performed.
//   - include/includeIf directives are not followed.
//   - A Document is not safe for concurrent use.
//   - Save overwrites the file in place, there is no atomic rename.
package confedit
