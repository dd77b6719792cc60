package xdg

import (
	"os"
	"path/filepath"
)

// Dirs resolves XDG base directories for configuration lookup.
type Dirs struct {
	configHome string
	configDirs []string
}

// New reads the XDG environment through getenv; nil means os.Getenv.
func New(getenv func(string) string) *Dirs {
	if getenv == nil {
		getenv = os.Getenv
	}

	homeDir := getenv("HOME")
	if homeDir == "" {
		if h, err := os.UserHomeDir(); err == nil {
			homeDir = h
		}
	}

	d := &Dirs{}

	// XDG_CONFIG_HOME: user-specific configuration files
	d.configHome = getenv("XDG_CONFIG_HOME")
	if d.configHome == "" || !filepath.IsAbs(d.configHome) {
		d.configHome = filepath.Join(homeDir, ".config")
	}

	// XDG_CONFIG_DIRS: preference-ordered base directories to search for configuration files
	if env := getenv("XDG_CONFIG_DIRS"); env == "" {
		d.configDirs = []string{"/etc/xdg"}
	} else {
		for _, dir := range filepath.SplitList(env) {
			if filepath.IsAbs(dir) {
				d.configDirs = append(d.configDirs, dir)
			}
		}
	}

	return d
}

// ConfigDirs returns the base directories for configuration files, most
// important first.
func (d *Dirs) ConfigDirs() []string {
	return append([]string{d.configHome}, d.configDirs...)
}

// AppConfigFiles lists name inside appName's directory under every config
// base directory, least important first so later files override earlier ones.
func (d *Dirs) AppConfigFiles(appName, name string) []string {
	dirs := d.ConfigDirs()
	files := make([]string, 0, len(dirs))
	for i := len(dirs) - 1; i >= 0; i-- {
		files = append(files, filepath.Join(dirs[i], appName, name))
	}
	return files
}
