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

import (
	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/eval"
)

// List implements `list`: wrap the arguments as a QExpr.
func List(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	return lispy.MakeQExpr(args.Elements()...), nil
}

// Head implements `head`: a QExpr containing only q's first element.
func Head(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkArity("head", elems, 1); err != nil {
		return nil, err
	}
	q, err := getQExpr("head", elems, 0)
	if err != nil {
		return nil, err
	}
	if err := requireNonEmpty("head", q); err != nil {
		return nil, err
	}
	return lispy.MakeQExpr(q.Elements()[0]), nil
}

// Tail implements `tail`: q without its first element.
func Tail(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkArity("tail", elems, 1); err != nil {
		return nil, err
	}
	q, err := getQExpr("tail", elems, 0)
	if err != nil {
		return nil, err
	}
	if err := requireNonEmpty("tail", q); err != nil {
		return nil, err
	}
	return lispy.MakeQExpr(q.Elements()[1:]...), nil
}

// Init implements `init`: q without its last element.
func Init(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkArity("init", elems, 1); err != nil {
		return nil, err
	}
	q, err := getQExpr("init", elems, 0)
	if err != nil {
		return nil, err
	}
	if err := requireNonEmpty("init", q); err != nil {
		return nil, err
	}
	qe := q.Elements()
	return lispy.MakeQExpr(qe[:len(qe)-1]...), nil
}

// Join implements `join`: concatenation of all QExprs.
func Join(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	var joined []lispy.Value
	for i := range elems {
		q, err := getQExpr("join", elems, i)
		if err != nil {
			return nil, err
		}
		joined = append(joined, q.Elements()...)
	}
	return lispy.MakeQExpr(joined...), nil
}

// Cons implements `cons`: QExpr formed by prepending v to q.
func Cons(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkArity("cons", elems, 2); err != nil {
		return nil, err
	}
	q, err := getQExpr("cons", elems, 1)
	if err != nil {
		return nil, err
	}
	result := append([]lispy.Value{elems[0]}, q.Elements()...)
	return lispy.MakeQExpr(result...), nil
}

// Len implements `len`: the Int length of q.
func Len(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkArity("len", elems, 1); err != nil {
		return nil, err
	}
	q, err := getQExpr("len", elems, 0)
	if err != nil {
		return nil, err
	}
	return lispy.Int(q.Len()), nil
}

// Eval implements `eval`: retype q as SExpr and evaluate it.
func Eval(env *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkArity("eval", elems, 1); err != nil {
		return nil, err
	}
	q, err := getQExpr("eval", elems, 0)
	if err != nil {
		return nil, err
	}
	return eval.Eval(env, q.ToSExpr())
}
