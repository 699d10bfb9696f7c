//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package eval implements Lispy's tree-walking evaluator: symbol lookup,
// S-Expression reduction, and lambda/builtin application, including
// currying and variadic argument binding.
package eval

import (
	"fmt"

	"github.com/lispy-lang/lispy"
)

// Eval evaluates v in env (spec.md §4.4):
//   - a Sym looks itself up; an unbound symbol yields an Err value
//   - an SExpr reduces via evalSExpr
//   - anything else (atoms, QExpr, Builtin, Lambda) passes through unchanged
func Eval(env *lispy.Environment, v lispy.Value) (lispy.Value, error) {
	switch val := v.(type) {
	case lispy.Sym:
		found, err := env.Get(string(val))
		if errVal, ok := err.(lispy.Err); ok {
			return errVal, nil
		}
		return found, err
	case *lispy.SExpr:
		return evalSExpr(env, val)
	default:
		return v, nil
	}
}

// evalSExpr implements the state machine of spec.md §4.6:
// EvaluatingChildren → PropagatingError? → Empty? → Unwrap? → ResolvingHead →
// TypeCheckingHead → Applying → Done.
func evalSExpr(env *lispy.Environment, s *lispy.SExpr) (lispy.Value, error) {
	elems := s.Elements()
	evaluated := make([]lispy.Value, len(elems))
	for i, child := range elems {
		v, err := Eval(env, child)
		if err != nil {
			return nil, err
		}
		if errVal, ok := v.(lispy.Err); ok {
			return errVal, nil
		}
		evaluated[i] = v
	}

	switch len(evaluated) {
	case 0:
		return lispy.MakeSExpr(), nil
	case 1:
		return evaluated[0], nil
	}

	head, rest := evaluated[0], evaluated[1:]
	switch fn := head.(type) {
	case *lispy.Builtin:
		return Apply(env, fn, rest)
	case *lispy.Lambda:
		return Apply(env, fn, rest)
	default:
		return lispy.MakeErr("S-Expression starts with incorrect type. Got: %s, Expected: Function.", head.TypeName()), nil
	}
}

// Apply invokes a callable value against already-evaluated arguments. The
// caller's environment is used as a lambda's dynamic parent link on full
// application (spec.md §4.4, §9).
func Apply(env *lispy.Environment, callable lispy.Value, args []lispy.Value) (lispy.Value, error) {
	var v lispy.Value
	var err error
	switch fn := callable.(type) {
	case *lispy.Builtin:
		v, err = fn.Fn(env, lispy.MakeSExpr(args...))
	case *lispy.Lambda:
		v, err = applyLambda(env, fn, args)
	default:
		return nil, fmt.Errorf("%s is not callable", callable.TypeName())
	}
	// A builtin may report failure as a Go error instead of constructing an
	// Err value itself; normalize it here so every caller above this point
	// only ever sees errors-as-values (spec.md §7).
	if err != nil {
		if errVal, ok := err.(lispy.Err); ok {
			return errVal, nil
		}
		return lispy.MakeErr("%s", err.Error()), nil
	}
	return v, nil
}

// applyLambda binds args against fn's formals, implementing currying and
// the variadic "&" contract (spec.md §4.4).
//
// fn.Env itself is never bound into directly: every application forks it
// first, so recursive calls (which look fn back up and apply it again
// while an outer call is still in progress) and reuse of a curried partial
// application each get their own independent bindings instead of fighting
// over the one stored environment.
func applyLambda(callerEnv *lispy.Environment, fn *lispy.Lambda, args []lispy.Value) (lispy.Value, error) {
	formals := fn.Formals.Elements()
	body := fn.Body
	callEnv := fn.Env.Fork()

	i := 0
	for i < len(formals) {
		formal, ok := formals[i].(lispy.Sym)
		if !ok {
			return nil, fmt.Errorf("lambda formal is not a symbol")
		}
		if formal == "&" {
			if i+1 >= len(formals) {
				return lispy.MakeErr("Function format invalid. Symbol '&' not followed by single symbol."), nil
			}
			rest, ok := formals[i+1].(lispy.Sym)
			if !ok {
				return lispy.MakeErr("Function format invalid. Symbol '&' not followed by single symbol."), nil
			}
			var remaining []lispy.Value
			if len(args) > 0 {
				remaining = args
			}
			callEnv.Put(string(rest), lispy.MakeQExpr(remaining...))
			i += 2
			args = nil
			continue
		}
		if len(args) == 0 {
			// Formals remain unfilled and no variadic "&" consumed: curry.
			return copyCurried(callEnv, formals[i:], body), nil
		}
		callEnv.Put(string(formal), args[0])
		args = args[1:]
		i++
	}

	if len(args) > 0 {
		return lispy.MakeErr("Function passed too many arguments: Got %d, Expected %d.", len(formals)+len(args), len(formals)), nil
	}

	callEnv.SetParent(callerEnv)
	return Eval(callEnv, body.ToSExpr())
}

// copyCurried builds the partially-applied Lambda returned when formals
// remain unfilled (spec.md §4.4, "Currying / partial application"). env is
// the forked, already-partially-bound environment from this application;
// it is distinct from the original fn.Env, so later calls against either
// the original or the curried lambda stay independent.
func copyCurried(env *lispy.Environment, residualFormals []lispy.Value, body *lispy.QExpr) lispy.Value {
	return &lispy.Lambda{
		Env:     env,
		Formals: lispy.MakeQExpr(residualFormals...),
		Body:    body,
	}
}
