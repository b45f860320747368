package dview

import (
	"strings"
	"unicode"
)

// splitArgs separates key=value loader parameters from source paths.
// A key must look like an identifier, so paths containing '=' stay paths.
func splitArgs(args []string) (paths []string, params map[string]string) {
	params = make(map[string]string)
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if ok && isParamKey(key) {
			params[key] = value
			continue
		}
		paths = append(paths, arg)
	}
	return paths, params
}

func isParamKey(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}
