package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/javacst"
	"github.com/yaklabco/javalint/pkg/lint"
)

// EmptyBlock policies.
const (
	emptyBlockStatement = "statement"
	emptyBlockText      = "text"
)

// emptyBlockParents are the constructs whose bodies EmptyBlock inspects.
// Catch clauses belong to EmptyCatchBlock.
var emptyBlockParents = map[string]bool{
	"if_statement":           true,
	"for_statement":          true,
	"enhanced_for_statement": true,
	"while_statement":        true,
	"do_statement":           true,
	"finally_clause":         true,
	"synchronized_statement": true,
	"static_initializer":     true,
	"labeled_statement":      true,
}

// EmptyBlockViolation reports an empty block.
type EmptyBlockViolation struct {
	Construct string
}

func (v EmptyBlockViolation) Message() string {
	return fmt.Sprintf("Must have at least one statement in %s block.", v.Construct)
}

func (v EmptyBlockViolation) Availability() lint.FixAvailability {
	return lint.FixNever
}

// EmptyBlock checks for empty blocks in control-flow constructs.
type EmptyBlock struct {
	requireText bool
}

// NewEmptyBlock constructs the rule from its properties. The option
// property is "statement" (default: the block must contain a statement)
// or "text" (a comment is enough).
func NewEmptyBlock(props config.Properties) (lint.Rule, error) {
	option := props.GetString("option", emptyBlockStatement)
	switch option {
	case emptyBlockStatement, emptyBlockText:
	default:
		return nil, fmt.Errorf("property %q: unknown option %q (want statement or text)", "option", option)
	}
	return &EmptyBlock{requireText: option == emptyBlockText}, nil
}

func (r *EmptyBlock) Name() string { return "EmptyBlock" }

func (r *EmptyBlock) RelevantKinds() []string { return []string{"block"} }

func (r *EmptyBlock) Check(_ *lint.Context, node javacst.Node) []lint.Diagnostic {
	parent, ok := node.Parent()
	if !ok || !emptyBlockParents[parent.Kind()] {
		return nil
	}

	if r.requireText {
		if blockInnerText(node) != "" {
			return nil
		}
	} else if blockHasStatement(node) {
		return nil
	}

	construct := strings.TrimSuffix(parent.Kind(), "_statement")
	construct = strings.ReplaceAll(construct, "_", " ")
	return []lint.Diagnostic{lint.NewDiagnostic(EmptyBlockViolation{Construct: construct}, node.Range())}
}

// blockHasStatement reports whether a block contains any named child that
// is not a comment.
func blockHasStatement(block javacst.Node) bool {
	for i := 0; i < block.NamedChildCount(); i++ {
		c, ok := block.NamedChild(i)
		if !ok {
			continue
		}
		if !isComment(c.Kind()) {
			return true
		}
	}
	return false
}

// blockInnerText returns the trimmed text between a block's braces.
func blockInnerText(block javacst.Node) string {
	text := block.Text()
	text = strings.TrimPrefix(text, "{")
	text = strings.TrimSuffix(text, "}")
	return strings.TrimSpace(text)
}

func isComment(kind string) bool {
	return kind == "line_comment" || kind == "block_comment"
}

// EmptyCatchBlockViolation reports an empty catch block.
type EmptyCatchBlockViolation struct{}

func (v EmptyCatchBlockViolation) Message() string {
	return "Empty catch block."
}

func (v EmptyCatchBlockViolation) Availability() lint.FixAvailability {
	return lint.FixNever
}

// EmptyCatchBlock checks for catch blocks with no statements. A catch is
// exempt when its comment matches commentFormat or its exception variable
// matches exceptionVariableName.
type EmptyCatchBlock struct {
	commentFormat *regexp.Regexp
	variableName  *regexp.Regexp
}

// NewEmptyCatchBlock constructs the rule from its properties.
func NewEmptyCatchBlock(props config.Properties) (lint.Rule, error) {
	commentFormat, err := props.GetRegexp("commentFormat", regexp.MustCompile(".*"))
	if err != nil {
		return nil, err
	}
	variableName, err := props.GetRegexp("exceptionVariableName", regexp.MustCompile("^$"))
	if err != nil {
		return nil, err
	}
	return &EmptyCatchBlock{commentFormat: commentFormat, variableName: variableName}, nil
}

func (r *EmptyCatchBlock) Name() string { return "EmptyCatchBlock" }

func (r *EmptyCatchBlock) RelevantKinds() []string { return []string{"catch_clause"} }

func (r *EmptyCatchBlock) Check(_ *lint.Context, node javacst.Node) []lint.Diagnostic {
	body, ok := node.ChildByField("body")
	if !ok || blockHasStatement(body) {
		return nil
	}

	if comment, ok := firstComment(body); ok && r.commentFormat.MatchString(commentText(comment)) {
		return nil
	}

	if name, ok := catchVariableName(node); ok && r.variableName.MatchString(name) {
		return nil
	}

	return []lint.Diagnostic{lint.NewDiagnostic(EmptyCatchBlockViolation{}, body.Range())}
}

func firstComment(block javacst.Node) (javacst.Node, bool) {
	for i := 0; i < block.NamedChildCount(); i++ {
		c, ok := block.NamedChild(i)
		if ok && isComment(c.Kind()) {
			return c, true
		}
	}
	return javacst.Node{}, false
}

// commentText strips comment delimiters and surrounding whitespace.
func commentText(comment javacst.Node) string {
	text := comment.Text()
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimPrefix(text, "/*")
	text = strings.TrimSuffix(text, "*/")
	return strings.TrimSpace(text)
}

// catchVariableName returns the exception variable of a catch clause.
func catchVariableName(catch javacst.Node) (string, bool) {
	param, ok := javacst.FindFirst(catch, func(n javacst.Node) bool {
		return n.Kind() == "catch_formal_parameter"
	})
	if !ok {
		return "", false
	}
	// The identifier is the parameter's last named child.
	for i := param.NamedChildCount() - 1; i >= 0; i-- {
		c, ok := param.NamedChild(i)
		if ok && c.Kind() == "identifier" {
			return c.Text(), true
		}
	}
	return "", false
}

// AvoidNestedBlocksViolation reports a freestanding nested block.
type AvoidNestedBlocksViolation struct{}

func (v AvoidNestedBlocksViolation) Message() string {
	return "Avoid nested blocks."
}

func (v AvoidNestedBlocksViolation) Availability() lint.FixAvailability {
	return lint.FixNever
}

// AvoidNestedBlocks checks for blocks used freely inside other blocks.
type AvoidNestedBlocks struct {
	allowInSwitchCase bool
}

// NewAvoidNestedBlocks constructs the rule from its properties.
func NewAvoidNestedBlocks(props config.Properties) (lint.Rule, error) {
	allow, err := props.GetBool("allowInSwitchCase", false)
	if err != nil {
		return nil, err
	}
	return &AvoidNestedBlocks{allowInSwitchCase: allow}, nil
}

func (r *AvoidNestedBlocks) Name() string { return "AvoidNestedBlocks" }

func (r *AvoidNestedBlocks) RelevantKinds() []string { return []string{"block"} }

func (r *AvoidNestedBlocks) Check(_ *lint.Context, node javacst.Node) []lint.Diagnostic {
	parent, ok := node.Parent()
	if !ok {
		return nil
	}

	switch parent.Kind() {
	case "block", "constructor_body":
	case "switch_block_statement_group":
		if r.allowInSwitchCase {
			return nil
		}
	default:
		return nil
	}

	return []lint.Diagnostic{lint.NewDiagnostic(AvoidNestedBlocksViolation{}, node.Range())}
}
