package javacst

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// ErrParse indicates the parser could not produce a syntax tree.
// This is file-scoped and recoverable; other files continue processing.
var ErrParse = errors.New("parse failure")

// Tree holds a parsed Java syntax tree together with the source it was
// parsed from. Trees own C-side memory; call Close when done.
type Tree struct {
	tree *sitter.Tree
	src  []byte
}

// Parse parses Java source into a syntax tree.
//
// Source with syntax errors still produces a tree; error nodes appear in
// the CST and rules see them. Only a total parser failure returns ErrParse.
func Parse(ctx context.Context, content []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if tree == nil || tree.RootNode() == nil {
		return nil, ErrParse
	}

	return &Tree{tree: tree, src: content}, nil
}

// Root returns the root node of the tree.
func (t *Tree) Root() Node {
	return Node{n: t.tree.RootNode(), src: t.src}
}

// Source returns the source text the tree was parsed from.
func (t *Tree) Source() []byte {
	return t.src
}

// HasError reports whether the tree contains any parse error nodes.
func (t *Tree) HasError() bool {
	return t.tree.RootNode().HasError()
}

// Close releases the tree's native resources.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}
