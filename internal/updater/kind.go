package updater

import (
	"path/filepath"
	"strings"
)

// Kind classifies how a file stores its version. It is determined once
// from the file name and carried through extraction and mutation.
type Kind string

const (
	// KindJSON is for JSON documents with a top-level "version" field.
	KindJSON Kind = "json"

	// KindPlain is for files whose entire trimmed content is the version
	// (a VERSION file).
	KindPlain Kind = "plain"

	// KindPattern is for files containing an embedded VERSION marker
	// followed by a semantic-version token.
	KindPattern Kind = "pattern"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid returns true if the kind is a known file kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindJSON, KindPlain, KindPattern:
		return true
	default:
		return false
	}
}

// KindForFile classifies a file path:
//   - base name "VERSION" (any extension, e.g. VERSION.txt) -> KindPlain
//   - extension ".json" -> KindJSON
//   - everything else -> KindPattern
func KindForFile(path string) Kind {
	base := filepath.Base(path)
	if name, _, _ := strings.Cut(base, "."); name == "VERSION" {
		return KindPlain
	}
	if strings.EqualFold(filepath.Ext(base), ".json") {
		return KindJSON
	}
	return KindPattern
}
