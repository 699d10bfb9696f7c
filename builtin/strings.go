//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package builtin

import "github.com/lispy-lang/lispy"

// StrHead implements `strhead`: single-character Str, or "" on empty input.
func StrHead(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkArity("strhead", elems, 1); err != nil {
		return nil, err
	}
	s, err := getStr("strhead", elems, 0)
	if err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return lispy.Str(""), nil
	}
	r := []rune(string(s))
	return lispy.Str(string(r[0])), nil
}

// StrTail implements `strtail`: s without its first character, or "" on
// empty input.
func StrTail(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkArity("strtail", elems, 1); err != nil {
		return nil, err
	}
	s, err := getStr("strtail", elems, 0)
	if err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return lispy.Str(""), nil
	}
	r := []rune(string(s))
	return lispy.Str(string(r[1:])), nil
}

// StrJoin implements `strjoin`: concatenation of all string arguments.
func StrJoin(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	result := ""
	for i := range elems {
		s, err := getStr("strjoin", elems, i)
		if err != nil {
			return nil, err
		}
		result += string(s)
	}
	return lispy.Str(result), nil
}
