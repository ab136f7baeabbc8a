// Package winpath converts Windows-style paths produced by a Wine
// prefix into host filesystem paths.
package winpath

import "strings"

// ToHostPath converts a Windows-style path to the equivalent host path.
// Z:\home\user -> /home/user
//
// Three steps, in order: every backslash becomes a forward slash, a
// leading <letter>: prefix becomes the filesystem root (any drive
// letter, per the Wine convention that one drive maps to /), and a
// leading double slash collapses once. Nothing else is normalized: no
// trailing-slash trimming, no . or .. resolution, no whitespace
// handling.
//
// The result is a pure function of the input, but re-applying the
// conversion to its own output is not supported: a second pass can
// change the result again (see the leading-slash collapse, which
// removes exactly one slash per pass).
func ToHostPath(winPath string) string {
	path := strings.ReplaceAll(winPath, "\\", "/")
	if len(path) >= 2 && path[1] == ':' && isASCIILetter(path[0]) {
		path = "/" + path[2:]
	}
	if strings.HasPrefix(path, "//") {
		// Single collapse only: three or more leading slashes lose
		// exactly one.
		path = path[1:]
	}
	return path
}

// IsWindowsPath reports whether the path carries Windows-style
// markers: a drive-letter prefix or any backslash.
func IsWindowsPath(path string) bool {
	if strings.ContainsRune(path, '\\') {
		return true
	}
	return len(path) >= 2 && path[1] == ':' && isASCIILetter(path[0])
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
