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
	"math"

	"github.com/lispy-lang/lispy"
)

// numArg returns args[i] as a number or a type-mismatch Err.
func numArg(name string, args []lispy.Value, i int) (lispy.Value, error) {
	if !lispy.IsNumber(args[i]) {
		return nil, lispy.MakeErr("'%s' passed incorrect type for argument %d. Got %s, Expected %s.", name, i+1, args[i].TypeName(), "Number")
	}
	return args[i], nil
}

// foldArith implements the shared shape of +, -, *: unary identity/negation
// for a single operand, left-fold over two or more (spec.md §4.5).
func foldArith(name string, args []lispy.Value, unary func(lispy.Value) lispy.Value, binary func(x, y lispy.Value) lispy.Value) (lispy.Value, error) {
	if err := checkMinArity(name, args, 1); err != nil {
		return nil, err
	}
	acc, err := numArg(name, args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		if unary == nil {
			return nil, lispy.MakeErr("'%s' requires at least 2 arguments", name)
		}
		return unary(acc), nil
	}
	for i := 1; i < len(args); i++ {
		operand, err := numArg(name, args, i)
		if err != nil {
			return nil, err
		}
		acc = binary(acc, operand)
		if errVal, ok := acc.(lispy.Err); ok {
			return errVal, nil
		}
	}
	return acc, nil
}

// Add implements `+`: unary identity, else left-folded addition.
func Add(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	return foldArith("+", args.Elements(), func(x lispy.Value) lispy.Value { return x }, lispy.NumAdd)
}

// Sub implements `-`: unary negation, else left-folded subtraction.
func Sub(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	return foldArith("-", args.Elements(), lispy.NumNeg, lispy.NumSub)
}

// Mul implements `*`: no unary form, else left-folded multiplication.
func Mul(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	return foldArith("*", args.Elements(), nil, lispy.NumMul)
}

// Div implements `/`: no unary form; errors on a zero divisor.
func Div(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	return foldArith("/", args.Elements(), nil, func(x, y lispy.Value) lispy.Value {
		return numDiv(x, y)
	})
}

// numDiv divides x by y. If both are Int, the result is truncating integer
// division and stays Int (spec.md §8 property 3; the original's eval_div,
// parsing.c, does the same C-integer truncation) — it is promoted to Float
// only when an operand is actually Float.
func numDiv(x, y lispy.Value) lispy.Value {
	if lispy.AsFloat(y) == 0 {
		return lispy.MakeErr("Division by zero.")
	}
	if xi, xok := x.(lispy.Int); xok {
		if yi, yok := y.(lispy.Int); yok {
			return xi / yi
		}
	}
	return lispy.Float(lispy.AsFloat(x) / lispy.AsFloat(y))
}

// Mod implements `%`: integer modulo; both operands must be Int.
func Mod(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkMinArity("%", elems, 2); err != nil {
		return nil, err
	}
	acc, err := intArg("%", elems, 0)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(elems); i++ {
		y, err := intArg("%", elems, i)
		if err != nil {
			return nil, err
		}
		if y == 0 {
			return lispy.MakeErr("Division by zero."), nil
		}
		acc = acc % y
	}
	return acc, nil
}

func intArg(name string, args []lispy.Value, i int) (lispy.Int, error) {
	v, err := numArg(name, args, i)
	if err != nil {
		return 0, err
	}
	n, ok := v.(lispy.Int)
	if !ok {
		return 0, lispy.MakeErr("float modulo.")
	}
	return n, nil
}

// Pow implements `^`: left-folded exponentiation.
func Pow(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	elems := args.Elements()
	if err := checkMinArity("^", elems, 1); err != nil {
		return nil, err
	}
	acc, err := numArg("^", elems, 0)
	if err != nil {
		return nil, err
	}
	if len(elems) == 1 {
		return acc, nil
	}
	for i := 1; i < len(elems); i++ {
		y, err := numArg("^", elems, i)
		if err != nil {
			return nil, err
		}
		acc = numPow(acc, y)
	}
	return acc, nil
}

func numPow(x, y lispy.Value) lispy.Value {
	if xi, xok := x.(lispy.Int); xok {
		if yi, yok := y.(lispy.Int); yok && yi >= 0 {
			result := lispy.Int(1)
			for n := lispy.Int(0); n < yi; n++ {
				result *= xi
			}
			return result
		}
	}
	base, exp := lispy.AsFloat(x), lispy.AsFloat(y)
	return lispy.Float(math.Pow(base, exp))
}

// Min implements `min`: left-folded minimum, Float if any operand is Float.
func Min(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	return foldArith("min", args.Elements(), func(x lispy.Value) lispy.Value { return x }, func(x, y lispy.Value) lispy.Value {
		_, xf := x.(lispy.Float)
		_, yf := y.(lispy.Float)
		if lispy.NumCmp(x, y) > 0 {
			x = y
		}
		if xf || yf {
			return lispy.Float(lispy.AsFloat(x))
		}
		return x
	})
}

// Max implements `max`: left-folded maximum, Float if any operand is Float.
func Max(_ *lispy.Environment, args *lispy.SExpr) (lispy.Value, error) {
	return foldArith("max", args.Elements(), func(x lispy.Value) lispy.Value { return x }, func(x, y lispy.Value) lispy.Value {
		_, xf := x.(lispy.Float)
		_, yf := y.(lispy.Float)
		if lispy.NumCmp(x, y) < 0 {
			x = y
		}
		if xf || yf {
			return lispy.Float(lispy.AsFloat(x))
		}
		return x
	})
}
