//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package eval_test

import (
	"testing"

	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/builtin"
	"github.com/lispy-lang/lispy/eval"
)

func newTestEnv() *lispy.Environment {
	env := lispy.NewRootEnvironment()
	builtin.BindAll(env)
	return env
}

func TestEvalEmptySExprIsLegal(t *testing.T) {
	t.Parallel()

	v, err := eval.Eval(newTestEnv(), lispy.MakeSExpr())
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if v.(*lispy.SExpr).Len() != 0 {
		t.Error("expected the empty SExpr back")
	}
}

func TestEvalSingleChildUnwraps(t *testing.T) {
	t.Parallel()

	v, err := eval.Eval(newTestEnv(), lispy.MakeSExpr(lispy.Int(5)))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if v != lispy.Int(5) {
		t.Errorf("Eval(%v) = %v, want Int(5)", lispy.Int(5), v)
	}
}

func TestEvalArithmetic(t *testing.T) {
	t.Parallel()

	expr := lispy.MakeSExpr(lispy.Sym("+"), lispy.Int(1), lispy.Int(2), lispy.Int(3))
	v, err := eval.Eval(newTestEnv(), expr)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if v != lispy.Int(6) {
		t.Errorf("Eval(+ 1 2 3) = %v, want Int(6)", v)
	}
}

func TestEvalErrorPropagates(t *testing.T) {
	t.Parallel()

	inner := lispy.MakeSExpr(lispy.Sym("head"), lispy.MakeQExpr())
	outer := lispy.MakeSExpr(lispy.Sym("+"), inner, lispy.Int(1))
	v, err := eval.Eval(newTestEnv(), outer)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if _, ok := v.(lispy.Err); !ok {
		t.Errorf("expected an Err value, got %T(%v)", v, v)
	}
}

func TestEvalApplicationTypeError(t *testing.T) {
	t.Parallel()

	expr := lispy.MakeSExpr(lispy.Int(1), lispy.Int(2))
	v, err := eval.Eval(newTestEnv(), expr)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	errVal, ok := v.(lispy.Err)
	if !ok {
		t.Fatalf("expected an Err value, got %T(%v)", v, v)
	}
	want := "S-Expression starts with incorrect type. Got: Number, Expected: Function."
	if errVal.Msg != want {
		t.Errorf("Msg = %q, want %q", errVal.Msg, want)
	}
}

func TestLambdaApplicationAndCurrying(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	lambda, err := eval.Eval(env, lispy.MakeSExpr(
		lispy.Sym("\\"),
		lispy.MakeQExpr(lispy.Sym("a"), lispy.Sym("b")),
		lispy.MakeQExpr(lispy.Sym("+"), lispy.Sym("a"), lispy.Sym("b")),
	))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	env.Def("add", lambda)

	curried, err := eval.Eval(env, lispy.MakeSExpr(lispy.Sym("add"), lispy.Int(1)))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if _, ok := curried.(*lispy.Lambda); !ok {
		t.Fatalf("expected a curried Lambda, got %T", curried)
	}

	full, err := eval.Eval(env, lispy.MakeSExpr(lispy.Sym("add"), lispy.Int(1), lispy.Int(2)))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if full != lispy.Int(3) {
		t.Errorf("(add 1 2) = %v, want Int(3)", full)
	}
}

func TestLambdaVariadic(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	lambda, err := eval.Eval(env, lispy.MakeSExpr(
		lispy.Sym("\\"),
		lispy.MakeQExpr(lispy.Sym("a"), lispy.Sym("&"), lispy.Sym("rest")),
		lispy.MakeQExpr(lispy.Sym("rest")),
	))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	env.Def("f", lambda)

	v, err := eval.Eval(env, lispy.MakeSExpr(lispy.Sym("f"), lispy.Int(1), lispy.Int(2), lispy.Int(3)))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	q, ok := v.(*lispy.QExpr)
	if !ok {
		t.Fatalf("expected a QExpr, got %T", v)
	}
	if q.String() != "{2 3}" {
		t.Errorf("rest = %v, want {2 3}", q)
	}
}

// TestLambdaRecursionDoesNotCorruptOuterFrame exercises a recursive lambda
// where each activation must bind its own "n" independently; sharing one
// environment across calls would make the outer frame observe the inner
// call's overwritten binding after it returns.
func TestLambdaRecursionDoesNotCorruptOuterFrame(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	lambda, err := eval.Eval(env, lispy.MakeSExpr(
		lispy.Sym("\\"),
		lispy.MakeQExpr(lispy.Sym("n")),
		lispy.MakeQExpr(
			lispy.Sym("if"),
			lispy.MakeSExpr(lispy.Sym("=="), lispy.Sym("n"), lispy.Int(0)),
			lispy.MakeQExpr(lispy.Int(0)),
			lispy.MakeQExpr(lispy.Sym("+"), lispy.MakeSExpr(lispy.Sym("f"), lispy.MakeSExpr(lispy.Sym("-"), lispy.Sym("n"), lispy.Int(1))), lispy.Sym("n")),
		),
	))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	env.Def("f", lambda)

	v, err := eval.Eval(env, lispy.MakeSExpr(lispy.Sym("f"), lispy.Int(2)))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if v != lispy.Int(3) {
		t.Errorf("(f 2) = %v, want Int(3)", v)
	}
}

// TestCurriedLambdasStayIndependent exercises reuse of the same unapplied
// lambda to build two separate partial applications; each curried result
// must keep its own bound argument rather than sharing one environment.
func TestCurriedLambdasStayIndependent(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	lambda, err := eval.Eval(env, lispy.MakeSExpr(
		lispy.Sym("\\"),
		lispy.MakeQExpr(lispy.Sym("a"), lispy.Sym("b")),
		lispy.MakeQExpr(lispy.Sym("+"), lispy.Sym("a"), lispy.Sym("b")),
	))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	env.Def("add", lambda)

	inc, err := eval.Eval(env, lispy.MakeSExpr(lispy.Sym("add"), lispy.Int(1)))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	env.Def("inc", inc)
	env.Def("add5", mustEval(t, env, lispy.MakeSExpr(lispy.Sym("add"), lispy.Int(5))))

	v, err := eval.Eval(env, lispy.MakeSExpr(lispy.Sym("inc"), lispy.Int(10)))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if v != lispy.Int(11) {
		t.Errorf("(inc 10) = %v, want Int(11); add5's activation must not have overwritten inc's bound argument", v)
	}
}

func mustEval(t *testing.T, env *lispy.Environment, v lispy.Value) lispy.Value {
	t.Helper()
	got, err := eval.Eval(env, v)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	return got
}

// TestLambdaBodyFallsBackToCallerEnvironment exercises the dynamic parent
// link set at application time (spec.md §4.4, §9): a name unbound in the
// lambda's own captured environment resolves against the caller's current
// environment, not the environment in effect when the lambda was built.
func TestLambdaBodyFallsBackToCallerEnvironment(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	lambda, err := eval.Eval(env, lispy.MakeSExpr(
		lispy.Sym("\\"),
		lispy.MakeQExpr(lispy.Sym("x")),
		lispy.MakeQExpr(lispy.Sym("+"), lispy.Sym("x"), lispy.Sym("k")),
	))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	env.Def("addk", lambda)
	env.Def("k", lispy.Int(10))

	v, err := eval.Eval(env, lispy.MakeSExpr(lispy.Sym("addk"), lispy.Int(5)))
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if v != lispy.Int(15) {
		t.Errorf("(addk 5) = %v, want Int(15)", v)
	}
}
