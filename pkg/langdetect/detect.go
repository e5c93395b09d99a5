// Package langdetect classifies files during discovery. It uses go-enry
// to decide whether a path holds Java source worth linting and to skip
// vendored or generated trees.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const languageJava = "Java"

// IsJavaFile reports whether the path names a Java source file.
// Detection is by extension; content is consulted only when the
// extension is ambiguous or missing.
func IsJavaFile(path string, content []byte) bool {
	if strings.EqualFold(filepath.Ext(path), ".java") {
		return true
	}
	if len(content) == 0 {
		return false
	}
	for _, lang := range enry.GetLanguages(path, content) {
		if lang == languageJava {
			return true
		}
	}
	return false
}

// IsVendored reports whether the path sits in a vendored dependency tree
// such as node_modules or a checked-in third-party directory.
func IsVendored(path string) bool {
	return enry.IsVendor(filepath.ToSlash(path))
}

// IsGenerated reports whether the file looks machine-generated. Build
// outputs and annotation-processor products carry marker comments that
// enry recognizes.
func IsGenerated(path string, content []byte) bool {
	return enry.IsGenerated(filepath.ToSlash(path), content)
}

// ShouldLint combines the checks discovery applies to every candidate:
// Java source that is neither vendored nor generated.
func ShouldLint(path string, content []byte) bool {
	return IsJavaFile(path, content) && !IsVendored(path) && !IsGenerated(path, content)
}
