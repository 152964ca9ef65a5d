package fonts

import (
	"os"
	"path/filepath"
	"strings"
)

// Exts are the file extensions treated as fonts.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate font directories relative to the process working directory.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns the paths of all font files under dir, relative to dir and with forward
// slashes. A missing dir yields nothing.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and drops spaces, dashes and underscores for fuzzy matching.
func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Find resolves search to a font file. search may be a path to an existing file or a
// family name such as "Inter" or "Roboto Mono", matched loosely against files under dirs.
// When several files match, one with "regular" in its path wins.
func Find(search string, dirs ...string) (string, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return "", os.ErrNotExist
	}
	if info, err := os.Stat(search); err == nil && !info.IsDir() && isFont(search) {
		return search, nil
	}
	if len(dirs) == 0 {
		dirs = BaseDirs()
	}
	norm := normalize(strings.TrimSuffix(search, filepath.Ext(search)))

	type match struct{ dir, rel string }
	var matches []match
	for _, dir := range dirs {
		list, err := ScanDir(dir)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalize(rel), norm) {
				matches = append(matches, match{dir, rel})
			}
		}
	}
	if len(matches) == 0 {
		return "", os.ErrNotExist
	}
	best := matches[0]
	for _, m := range matches {
		if strings.Contains(strings.ToLower(m.rel), "regular") {
			best = m
			break
		}
	}
	return filepath.Join(best.dir, filepath.FromSlash(best.rel)), nil
}
