package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/fix"
	"github.com/yaklabco/javalint/pkg/javacst"
	"github.com/yaklabco/javalint/pkg/lint"
)

// whitespaceAfterTokens maps checkstyle token names to CST kind names.
var whitespaceAfterTokens = map[string]string{
	"COMMA":    ",",
	"SEMI":     ";",
	"TYPECAST": "cast_expression",
}

// WhitespaceAfterViolation reports a token not followed by whitespace.
type WhitespaceAfterViolation struct {
	Token string
}

func (v WhitespaceAfterViolation) Message() string {
	return fmt.Sprintf("'%s' is not followed by whitespace.", v.Token)
}

func (v WhitespaceAfterViolation) Availability() lint.FixAvailability {
	return lint.FixAlways
}

func (v WhitespaceAfterViolation) FixTitle() string {
	return fmt.Sprintf("Insert a space after '%s'", v.Token)
}

// WhitespaceAfter checks that commas, semicolons, and typecasts are
// followed by whitespace.
type WhitespaceAfter struct {
	kinds []string
}

// NewWhitespaceAfter constructs the rule from its properties.
// The tokens property accepts a comma-separated subset of
// COMMA, SEMI, TYPECAST.
func NewWhitespaceAfter(props config.Properties) (lint.Rule, error) {
	kinds, err := tokenKinds(props, whitespaceAfterTokens, []string{",", ";", "cast_expression"})
	if err != nil {
		return nil, err
	}
	return &WhitespaceAfter{kinds: kinds}, nil
}

func (r *WhitespaceAfter) Name() string { return "WhitespaceAfter" }

func (r *WhitespaceAfter) RelevantKinds() []string { return r.kinds }

func (r *WhitespaceAfter) Check(ctx *lint.Context, node javacst.Node) []lint.Diagnostic {
	target := node
	if node.Kind() == "cast_expression" {
		// The space belongs after the closing paren of the cast.
		paren, ok := castCloseParen(node)
		if !ok {
			return nil
		}
		target = paren
	}

	end := target.EndByte()
	if ctx.IsWhitespaceAfter(end) {
		return nil
	}
	// Empty for-loop clauses and closing parens are not flagged.
	if b, ok := ctx.ByteAt(end); ok && (b == ';' || b == ')') {
		return nil
	}

	token := target.Text()
	if node.Kind() == "cast_expression" {
		token = "typecast"
	}

	d := lint.NewDiagnostic(WhitespaceAfterViolation{Token: token}, target.Range())
	return []lint.Diagnostic{d.WithFix(fix.SafeEdit(fix.Insertion(end, " ")))}
}

// castCloseParen finds the ")" token of a cast expression.
func castCloseParen(cast javacst.Node) (javacst.Node, bool) {
	for i := 0; i < cast.ChildCount(); i++ {
		c, ok := cast.Child(i)
		if ok && c.Kind() == ")" {
			return c, true
		}
	}
	return javacst.Node{}, false
}

// noWhitespaceBeforeTokens maps checkstyle token names to CST kind names.
var noWhitespaceBeforeTokens = map[string]string{
	"COMMA":    ",",
	"SEMI":     ";",
	"POST_INC": "++",
	"POST_DEC": "--",
}

// NoWhitespaceBeforeViolation reports a token preceded by whitespace.
type NoWhitespaceBeforeViolation struct {
	Token string
}

func (v NoWhitespaceBeforeViolation) Message() string {
	return fmt.Sprintf("'%s' is preceded with whitespace.", v.Token)
}

func (v NoWhitespaceBeforeViolation) Availability() lint.FixAvailability {
	return lint.FixSometimes
}

func (v NoWhitespaceBeforeViolation) FixTitle() string {
	return fmt.Sprintf("Remove the whitespace before '%s'", v.Token)
}

// NoWhitespaceBefore checks that separators are not preceded by
// whitespace.
type NoWhitespaceBefore struct {
	kinds           []string
	allowLineBreaks bool
}

// NewNoWhitespaceBefore constructs the rule from its properties.
func NewNoWhitespaceBefore(props config.Properties) (lint.Rule, error) {
	kinds, err := tokenKinds(props, noWhitespaceBeforeTokens, []string{",", ";"})
	if err != nil {
		return nil, err
	}
	allowLineBreaks, err := props.GetBool("allowLineBreaks", false)
	if err != nil {
		return nil, err
	}
	return &NoWhitespaceBefore{kinds: kinds, allowLineBreaks: allowLineBreaks}, nil
}

func (r *NoWhitespaceBefore) Name() string { return "NoWhitespaceBefore" }

func (r *NoWhitespaceBefore) RelevantKinds() []string { return r.kinds }

func (r *NoWhitespaceBefore) Check(ctx *lint.Context, node javacst.Node) []lint.Diagnostic {
	ws := ctx.WhitespaceRunBefore(node.StartByte())
	if ws.IsEmpty() {
		return nil
	}

	atLineStart := ws.StartOffset == ctx.Lines.LineStart(ctx.Lines.LineOf(node.StartByte()))
	if atLineStart {
		// The run is the line's indentation; the token was wrapped.
		if r.allowLineBreaks {
			return nil
		}
		// Deleting indentation alone would not rejoin the lines, so no
		// fix is offered for wrapped tokens.
		return []lint.Diagnostic{lint.NewDiagnostic(NoWhitespaceBeforeViolation{Token: node.Text()}, node.Range())}
	}

	d := lint.NewDiagnostic(NoWhitespaceBeforeViolation{Token: node.Text()}, node.Range())
	return []lint.Diagnostic{d.WithFix(fix.SafeEdit(fix.Deletion(ws.StartOffset, ws.EndOffset)))}
}

// ParenPad policies.
const (
	parenPadNoSpace = "nospace"
	parenPadSpace   = "space"
)

// ParenPadViolation reports paren padding that disagrees with the policy.
type ParenPadViolation struct {
	Token    string
	Followed bool
	Policy   string
}

func (v ParenPadViolation) Message() string {
	if v.Policy == parenPadSpace {
		if v.Followed {
			return fmt.Sprintf("'%s' is not followed by whitespace.", v.Token)
		}
		return fmt.Sprintf("'%s' is not preceded with whitespace.", v.Token)
	}
	if v.Followed {
		return fmt.Sprintf("'%s' is followed by whitespace.", v.Token)
	}
	return fmt.Sprintf("'%s' is preceded with whitespace.", v.Token)
}

func (v ParenPadViolation) Availability() lint.FixAvailability {
	return lint.FixAlways
}

func (v ParenPadViolation) FixTitle() string {
	return "Adjust padding inside parentheses"
}

// ParenPad checks the padding policy inside parentheses.
type ParenPad struct {
	space bool
}

// NewParenPad constructs the rule from its properties. The option property
// is "nospace" (default) or "space".
func NewParenPad(props config.Properties) (lint.Rule, error) {
	option := props.GetString("option", parenPadNoSpace)
	switch option {
	case parenPadNoSpace, parenPadSpace:
	default:
		return nil, fmt.Errorf("property %q: unknown option %q (want nospace or space)", "option", option)
	}
	return &ParenPad{space: option == parenPadSpace}, nil
}

func (r *ParenPad) Name() string { return "ParenPad" }

func (r *ParenPad) RelevantKinds() []string { return []string{"(", ")"} }

func (r *ParenPad) Check(ctx *lint.Context, node javacst.Node) []lint.Diagnostic {
	policy := parenPadNoSpace
	if r.space {
		policy = parenPadSpace
	}

	if node.Kind() == "(" {
		run := ctx.WhitespaceRunAfter(node.EndByte())
		inner, innerOK := ctx.ByteAt(run.EndOffset)
		atLineEnd := !innerOK || inner == '\n'

		if r.space {
			if run.IsEmpty() && !atLineEnd && inner != ')' {
				d := lint.NewDiagnostic(ParenPadViolation{Token: "(", Followed: true, Policy: policy}, node.Range())
				return []lint.Diagnostic{d.WithFix(fix.SafeEdit(fix.Insertion(node.EndByte(), " ")))}
			}
			return nil
		}
		if !run.IsEmpty() && !atLineEnd {
			d := lint.NewDiagnostic(ParenPadViolation{Token: "(", Followed: true, Policy: policy}, node.Range())
			return []lint.Diagnostic{d.WithFix(fix.SafeEdit(fix.Deletion(run.StartOffset, run.EndOffset)))}
		}
		return nil
	}

	run := ctx.WhitespaceRunBefore(node.StartByte())
	atLineStart := run.StartOffset == ctx.Lines.LineStart(ctx.Lines.LineOf(node.StartByte()))
	prev, prevOK := ctx.ByteAt(run.StartOffset - 1)

	if r.space {
		if run.IsEmpty() && prevOK && prev != '(' {
			d := lint.NewDiagnostic(ParenPadViolation{Token: ")", Followed: false, Policy: policy}, node.Range())
			return []lint.Diagnostic{d.WithFix(fix.SafeEdit(fix.Insertion(node.StartByte(), " ")))}
		}
		return nil
	}
	if !run.IsEmpty() && !atLineStart {
		d := lint.NewDiagnostic(ParenPadViolation{Token: ")", Followed: false, Policy: policy}, node.Range())
		return []lint.Diagnostic{d.WithFix(fix.SafeEdit(fix.Deletion(run.StartOffset, run.EndOffset)))}
	}
	return nil
}

// FileTabCharacterViolation reports a tab character in the file.
type FileTabCharacterViolation struct {
	EachLine bool
}

func (v FileTabCharacterViolation) Message() string {
	if v.EachLine {
		return "Line contains a tab character."
	}
	return "File contains tab characters (this is the first instance)."
}

func (v FileTabCharacterViolation) Availability() lint.FixAvailability {
	return lint.FixNever
}

// FileTabCharacter checks that the file contains no tab characters.
type FileTabCharacter struct {
	eachLine bool
}

// NewFileTabCharacter constructs the rule from its properties.
func NewFileTabCharacter(props config.Properties) (lint.Rule, error) {
	eachLine, err := props.GetBool("eachLine", false)
	if err != nil {
		return nil, err
	}
	return &FileTabCharacter{eachLine: eachLine}, nil
}

func (r *FileTabCharacter) Name() string { return "FileTabCharacter" }

func (r *FileTabCharacter) RelevantKinds() []string { return []string{"program"} }

func (r *FileTabCharacter) Check(ctx *lint.Context, node javacst.Node) []lint.Diagnostic {
	if _, hasParent := node.Parent(); hasParent {
		return nil
	}

	var diags []lint.Diagnostic
	for line := 1; line <= ctx.Lines.LineCount(); line++ {
		text := ctx.LineText(line)
		col := strings.IndexByte(text, '\t')
		if col < 0 {
			continue
		}
		offset := ctx.Lines.LineStart(line) + col
		rng := javacst.Range{StartOffset: offset, EndOffset: offset + 1}
		diags = append(diags, lint.NewDiagnostic(FileTabCharacterViolation{EachLine: r.eachLine}, rng))
		if !r.eachLine {
			break
		}
	}
	return diags
}

// tokenKinds resolves a checkstyle tokens property into CST kind names.
func tokenKinds(props config.Properties, known map[string]string, def []string) ([]string, error) {
	raw, ok := props["tokens"]
	if !ok {
		return def, nil
	}

	var kinds []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		kind, ok := known[tok]
		if !ok {
			return nil, fmt.Errorf("property %q: unknown token %q", "tokens", tok)
		}
		kinds = append(kinds, kind)
	}
	if len(kinds) == 0 {
		return def, nil
	}
	return kinds, nil
}
