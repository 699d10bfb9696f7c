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

// Not implements `!`: unary, coerces to Bool and negates.
func Not(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkArity("!", elems, 1); err != nil {
		return nil, err
	}
	b, err := lispy.Truthy(elems[0])
	if err != nil {
		return nil, err
	}
	return lispy.Bool(!b), nil
}

// And implements `&&`: variadic, short-circuits on the first falsy value
// and returns it; otherwise returns the last truthiness-value computed
// (spec.md §4.5, property 7).
func And(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkMinArity("&&", elems, 1); err != nil {
		return nil, err
	}
	var last lispy.Value
	for _, v := range elems {
		ok, err := lispy.Truthy(v)
		if err != nil {
			return nil, err
		}
		last = v
		if !ok {
			return v, nil
		}
	}
	return last, nil
}

// Or implements `||`: variadic, short-circuits on the first truthy value.
func Or(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkMinArity("||", elems, 1); err != nil {
		return nil, err
	}
	var last lispy.Value
	for _, v := range elems {
		ok, err := lispy.Truthy(v)
		if err != nil {
			return nil, err
		}
		last = v
		if ok {
			return v, nil
		}
	}
	return last, nil
}
