//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package reader converts a parser grammar tree into Lispy runtime values
// (spec.md §4.1).
package reader

import (
	"strconv"
	"strings"

	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/parser"
)

// Option configures a reader. Modeled on the nesting/list guards the
// teacher's rune-based reader exposes, adapted to bound a grammar tree
// instead of a rune stream.
type Option func(*options)

type options struct {
	nestingLimit int
	listLimit    int
}

// WithNestingLimit bounds how deeply sexpr/qexpr nodes may nest before the
// reader refuses to descend further.
func WithNestingLimit(n int) Option {
	return func(o *options) { o.nestingLimit = n }
}

// WithListLimit bounds how many elements a single sexpr/qexpr node may
// contain.
func WithListLimit(n int) Option {
	return func(o *options) { o.listLimit = n }
}

// ReadString parses text (named name, for error messages) and reads every
// top-level form into Values.
func ReadString(name, text string, opts ...Option) ([]lispy.Value, error) {
	tree, err := parser.Parse(name, text)
	if err != nil {
		return nil, err
	}
	return readForms(tree, opts...)
}

// ReadFile parses the named file and reads every top-level form into
// Values.
func ReadFile(path string, opts ...Option) ([]lispy.Value, error) {
	tree, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return readForms(tree, opts...)
}

func readForms(tree *parser.Node, opts ...Option) ([]lispy.Value, error) {
	o := &options{nestingLimit: 0, listLimit: 0}
	for _, opt := range opts {
		opt(o)
	}
	forms := make([]lispy.Value, 0, len(tree.Children))
	for _, child := range tree.Children {
		v, err := read(child, o, 0)
		if err != nil {
			return nil, err
		}
		forms = append(forms, v)
	}
	return forms, nil
}

// read implements the reader rules of spec.md §4.1 for a single node.
func read(n *parser.Node, o *options, depth int) (lispy.Value, error) {
	switch {
	case strings.Contains(n.Tag, parser.TagFNumber):
		f, err := strconv.ParseFloat(n.Contents, 64)
		if err != nil {
			return lispy.MakeErr("invalid number"), nil
		}
		return lispy.Float(f), nil
	case strings.Contains(n.Tag, parser.TagNumber):
		i, err := strconv.ParseInt(n.Contents, 10, 64)
		if err != nil {
			return lispy.MakeErr("invalid number"), nil
		}
		return lispy.Int(i), nil
	case strings.Contains(n.Tag, parser.TagString):
		return lispy.Str(unescape(n.Contents)), nil
	case strings.Contains(n.Tag, parser.TagSymbol):
		return lispy.Sym(n.Contents), nil
	case strings.Contains(n.Tag, parser.TagSExpr), n.Tag == parser.TagProgram:
		children, err := readChildren(n, o, depth)
		if err != nil {
			return nil, err
		}
		return lispy.MakeSExpr(children...), nil
	case strings.Contains(n.Tag, parser.TagQExpr):
		children, err := readChildren(n, o, depth)
		if err != nil {
			return nil, err
		}
		return lispy.MakeQExpr(children...), nil
	default:
		return lispy.MakeErr("invalid syntax"), nil
	}
}

func readChildren(n *parser.Node, o *options, depth int) ([]lispy.Value, error) {
	if o.nestingLimit > 0 && depth+1 > o.nestingLimit {
		return nil, lispy.MakeErr("nesting too deep")
	}
	if o.listLimit > 0 && len(n.Children) > o.listLimit {
		return nil, lispy.MakeErr("list too long")
	}
	children := make([]lispy.Value, 0, len(n.Children))
	for _, c := range n.Children {
		v, err := read(c, o, depth+1)
		if err != nil {
			return nil, err
		}
		children = append(children, v)
	}
	return children, nil
}

// unescape processes the backslash escapes spec.md §4.1 requires: \n, \t,
// \\, \".
func unescape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			default:
				sb.WriteByte(s[i])
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
