package confedit

import (
	"path/filepath"

	"github.com/gopasspw/gopass/pkg/appdir"
)

// Level tags a document with the well-known location it was loaded from.
// It is assigned once at construction and never re-derived.
type Level int

const (
	// Local is any path that is neither the system nor the global location.
	Local Level = iota
	// Global is the per-user config location.
	Global
	// System is the machine-wide config location.
	System
)

func (l Level) String() string {
	switch l {
	case System:
		return "system"
	case Global:
		return "global"
	default:
		return "local"
	}
}

const name = "git"

var (
	// SystemPath is the well-known machine-wide config location.
	SystemPath = "/etc/gitconfig"
	// GlobalPath is the well-known per-user config location.
	GlobalPath = globalConfigFile(name)
)

func globalConfigFile(name string) string {
	// $XDG_CONFIG_HOME/git/config
	return filepath.Join(appdir.New(name).UserConfig(), "config")
}

func levelForPath(path string) Level {
	switch path {
	case SystemPath:
		return System
	case GlobalPath:
		return Global
	default:
		return Local
	}
}
