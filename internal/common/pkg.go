package common

import (
	"path"
	"strings"
)

// ImportName returns the name a package is conventionally imported under
// when no alias is given: the last path element, skipping a /vN major
// version element and dropping the .vN suffix of gopkg.in paths.
// Returns empty string if pkgPath is empty.
func ImportName(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) && path.Dir(pkgPath) != "." {
		base = path.Base(path.Dir(pkgPath))
	}

	if strings.HasPrefix(pkgPath, "gopkg.in/") {
		if i := strings.LastIndex(base, ".v"); i > 0 && isMajorVersion(base[i+1:]) {
			base = base[:i]
		}
	}

	return base
}

// isMajorVersion reports whether s looks like "v2", "v10".
func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}

	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
