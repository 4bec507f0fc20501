package vpath

import "strings"

// Normalize converts a possibly malformed, mixed-separator path into its
// canonical form. It is total: any input produces a usable output and no
// error is ever returned.
//
// The algorithm is purely lexical (segment-stack resolution):
//
//  1. Backslashes become forward slashes.
//  2. An absolute prefix ("/" or a drive letter such as "C:") is preserved
//     verbatim.
//  3. Empty and "." segments are discarded.
//  4. ".." pops the previous real segment. On an absolute path it can never
//     climb above the root. On a relative path, leading ".." segments are
//     kept as literal markers; once real segments have been consumed, an
//     excess ".." at an exhausted prefix restores the bottom segment instead
//     of emitting a new marker.
//  5. An empty relative result is "."; an empty absolute result is "/".
func Normalize(path string) string {
	s := strings.ReplaceAll(path, "\\", "/")

	prefix := ""
	absolute := false
	if len(s) >= 2 && s[1] == ':' && isDriveLetter(s[0]) {
		prefix = s[:2]
		s = s[2:]
		absolute = true
	}
	if strings.HasPrefix(s, "/") {
		absolute = true
	}

	segments := strings.Split(s, "/")
	stack := make([]string, 0, len(segments))
	lastPopped := ""
	for _, seg := range segments {
		switch seg {
		case "", ".":
			// collapses repeated separators and no-op segments

		case "..":
			switch {
			case len(stack) > 0 && stack[len(stack)-1] != "..":
				lastPopped = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			case absolute:
				// cannot go above root
			case lastPopped != "" && len(stack) == 0:
				// exhausted prefix: the bottom segment survives
				stack = append(stack, lastPopped)
			default:
				stack = append(stack, "..")
			}

		default:
			stack = append(stack, seg)
		}
	}

	joined := strings.Join(stack, "/")
	if absolute {
		return prefix + "/" + joined
	}
	if joined == "" {
		return "."
	}
	return joined
}

func isDriveLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
