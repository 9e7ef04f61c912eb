// Package literal extracts the literal prefix of a compiled pattern for use
// as a prefilter. It plays the same role as the much larger
// github.com/coregx/coregex/literal package (which extracts prefix/suffix/
// inner literal sets from a full regexp/syntax AST for Teddy multi-literal
// acceleration) cut down to this dialect's needs: with no
// capture groups, anchors, or bounded repetition, the only literal shape
// that is both cheap to compute and safe to use as a prefilter is the
// longest run of plain characters the match must start with.
package literal

import "github.com/yuzuki-re/tinyregex/syntax"

// Prefix returns the longest sequence of literal scalars that every match of
// root must begin with, or "" if root can match starting with something
// other than a fixed literal (e.g. it starts with a class, a dot, a union,
// or a repeat).
//
// Only the left spine of Concat nodes is walked: a Concat's right side
// contributes to the prefix only once its left side is exhausted of plain
// Char nodes, and a Union, Repeat, NegChar, or Empty node anywhere along
// that spine ends the prefix at the characters collected so far. This
// mirrors an OpConcat literal-prefix walk, minus the
// cross-product expansion through character classes it performs (this
// keeps this a single literal, not a Seq of candidates).
func Prefix(root *syntax.Node) string {
	var runes []rune
	collectPrefix(root, &runes)
	return string(runes)
}

func collectPrefix(n *syntax.Node, out *[]rune) (complete bool) {
	if n == nil {
		return true
	}
	switch n.Kind {
	case syntax.KindChar:
		*out = append(*out, n.Ch)
		return true
	case syntax.KindConcat:
		if !collectPrefix(n.Left, out) {
			return false
		}
		return collectPrefix(n.Right, out)
	default:
		// KindEmpty, KindUnion, KindRepeat, KindNegChar: none of these
		// guarantee a fixed leading scalar, so the prefix stops here.
		return false
	}
}
