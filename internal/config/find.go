package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appDir = "contrastcheck"

var (
	dotNames = []string{
		".contrastcheck.yaml",
		".contrastcheck.yml",
		".contrastcheck.toml",
		".contrastcheck.json",
	}
	xdgNames = []string{
		"config.yaml",
		"config.yml",
		"config.toml",
		"config.json",
	}
)

// Candidate is one place a config file may live. Source is "cwd-up", "xdg"
// or "home".
type Candidate struct {
	Path   string
	Source string
}

// Find returns the config file to load and where it came from. An explicit
// path must exist; otherwise the first existing Candidates entry wins and
// an empty path means no file was found.
func Find(startDir, explicitPath, xdgHome, home string) (string, string, error) {
	if explicit := strings.TrimSpace(explicitPath); explicit != "" {
		path, err := checkExplicit(explicit)
		if err != nil {
			return "", "", err
		}
		return path, "explicit", nil
	}
	candidates, err := Candidates(startDir, xdgHome, home)
	if err != nil {
		return "", "", err
	}
	for _, c := range candidates {
		if isRegularFile(c.Path) {
			return c.Path, c.Source, nil
		}
	}
	return "", "", nil
}

// Candidates lists every implicit config location in lookup order: dot files
// from startDir up to the root, then $XDG_CONFIG_HOME/contrastcheck, then
// dot files in home.
func Candidates(startDir, xdgHome, home string) ([]Candidate, error) {
	start := strings.TrimSpace(startDir)
	if start == "" {
		start = "."
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, err
	}
	var out []Candidate
	for {
		out = appendNames(out, dir, dotNames, "cwd-up")
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	homeDir := resolveHome(home)
	xdgRoot := strings.TrimSpace(xdgHome)
	if xdgRoot == "" && homeDir != "" {
		xdgRoot = filepath.Join(homeDir, ".config")
	}
	if xdgRoot != "" {
		out = appendNames(out, filepath.Join(xdgRoot, appDir), xdgNames, "xdg")
	}
	if homeDir != "" {
		out = appendNames(out, homeDir, dotNames, "home")
	}
	return out, nil
}

func appendNames(out []Candidate, dir string, names []string, source string) []Candidate {
	for _, name := range names {
		out = append(out, Candidate{Path: filepath.Join(dir, name), Source: source})
	}
	return out
}

func checkExplicit(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("config path %q is a directory", abs)
	}
	return abs, nil
}

func resolveHome(home string) string {
	if h := strings.TrimSpace(home); h != "" {
		return h
	}
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return ""
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
