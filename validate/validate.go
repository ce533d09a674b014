// Package validate provides format checks for storefront identifiers.
package validate

import "regexp"

var moduleNameRE = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ModuleName reports whether name is a well-formed module folder name:
// non-empty, alphanumerics, underscore and dash only.
func ModuleName(name string) bool {
	return moduleNameRE.MatchString(name)
}
