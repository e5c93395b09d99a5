package javacst

import (
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// kindTable maps grammar kind names to the set of numeric symbols sharing
// that name. Several symbols can share one name (a token may exist in both
// named and anonymous variants), so the value is a slice.
//
// The table is built once per process from the Java grammar and is
// read-only afterwards. This is the only process-global state the CST
// layer carries.
//
//nolint:gochecknoglobals // Once-built read-only lookup table is intentional
var (
	kindTable     map[string][]uint16
	kindTableOnce sync.Once
)

func buildKindTable() {
	lang := java.GetLanguage()
	count := lang.SymbolCount()

	kindTable = make(map[string][]uint16, count)
	for sym := uint32(0); sym < count; sym++ {
		name := lang.SymbolName(sitter.Symbol(sym))
		kindTable[name] = append(kindTable[name], uint16(sym))
	}
}

// KindIDs returns the numeric symbols for a kind name.
//
// Unknown names return an empty slice, never an error: configurations must
// survive grammar evolution, so a rule naming a kind the grammar no longer
// has simply never fires for that name.
func KindIDs(name string) []uint16 {
	kindTableOnce.Do(buildKindTable)
	return kindTable[name]
}

// KnownKind reports whether the grammar defines any symbol with this name.
func KnownKind(name string) bool {
	kindTableOnce.Do(buildKindTable)
	_, ok := kindTable[name]
	return ok
}
