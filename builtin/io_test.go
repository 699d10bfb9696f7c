//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package builtin_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/builtin"
)

func withCapturedStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := builtin.Stdout
	var buf bytes.Buffer
	builtin.Stdout = &buf
	defer func() { builtin.Stdout = old }()
	fn()
	return buf.String()
}

func TestPrintWritesSpaceSeparatedWithNewline(t *testing.T) {
	t.Parallel()

	out := withCapturedStdout(t, func() {
		if _, err := builtin.Print(nil, lispy.MakeSExpr(lispy.Int(1), lispy.Str("a"))); err != nil {
			t.Fatalf("Print error: %v", err)
		}
	})
	if out != "1 \"a\"\n" {
		t.Errorf("Print output = %q, want %q", out, "1 \"a\"\n")
	}
}

func TestShowWritesBareStringNoNewline(t *testing.T) {
	t.Parallel()

	out := withCapturedStdout(t, func() {
		if _, err := builtin.Show(nil, lispy.MakeSExpr(lispy.Str("hi"))); err != nil {
			t.Fatalf("Show error: %v", err)
		}
	})
	if out != "hi" {
		t.Errorf("Show output = %q, want %q", out, "hi")
	}
}

func TestErrorBuiltinConstructsErrValue(t *testing.T) {
	t.Parallel()

	got, err := builtin.Error(nil, lispy.MakeSExpr(lispy.Str("boom")))
	if err != nil {
		t.Fatalf("Error error: %v", err)
	}
	errVal, ok := got.(lispy.Err)
	if !ok || errVal.Msg != "boom" {
		t.Errorf("Error(boom) = %v, want Err(boom)", got)
	}
}

func TestReadParsesIntoQExpr(t *testing.T) {
	t.Parallel()

	got, err := builtin.Read(nil, lispy.MakeSExpr(lispy.Str("(+ 1 2)")))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	q, ok := got.(*lispy.QExpr)
	if !ok {
		t.Fatalf("Read result is %T, want *QExpr", got)
	}
	if q.Len() != 1 {
		t.Fatalf("Read parsed %d forms, want 1", q.Len())
	}
}

func TestExitBuiltinInvokesExitSeam(t *testing.T) {
	t.Parallel()

	oldExit := builtin.Exit
	var gotCode int
	builtin.Exit = func(code int) { gotCode = code }
	defer func() { builtin.Exit = oldExit }()

	if _, err := builtin.ExitBuiltin(nil, lispy.MakeSExpr(lispy.Int(3))); err != nil {
		t.Fatalf("ExitBuiltin error: %v", err)
	}
	if gotCode != 3 {
		t.Errorf("Exit called with %d, want 3", gotCode)
	}
}

func TestLoadPrintsErrorsButContinues(t *testing.T) {
	t.Parallel()

	env := lispy.NewRootEnvironment()
	builtin.BindAll(env)

	dir := t.TempDir()
	path := dir + "/prog.lispy"
	content := "(error \"bad\")\n(def {x} 5)\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	out := withCapturedStdout(t, func() {
		if _, err := builtin.Load(env, lispy.MakeSExpr(lispy.Str(path))); err != nil {
			t.Fatalf("Load error: %v", err)
		}
	})
	if !strings.Contains(out, "bad") {
		t.Errorf("Load output = %q, want it to contain the Err message", out)
	}

	v, err := env.Get("x")
	if err != nil {
		t.Fatalf("Get(x) error: %v", err)
	}
	if v != lispy.Int(5) {
		t.Errorf("x = %v, want Int(5); Load should continue after an Err form", v)
	}
}
