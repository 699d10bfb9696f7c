//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of sx.
//
// sx is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Command lispy is the REPL / file-loader driver for the Lispy interpreter
// (spec.md §6).
package main

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/builtin"
	"github.com/lispy-lang/lispy/eval"
	"github.com/lispy-lang/lispy/internal/replhist"
	"github.com/lispy-lang/lispy/reader"
)

const (
	banner       = "Lispy Version 0.0.0.0.0.1"
	bannerSubtle = "Press Ctrl+c to exit"
	prompt       = "lispy> "
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lispy [file...]",
		Short: "A read-eval-print interpreter for the Lispy language",
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args)
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log evaluator diagnostics to stderr")
	return cmd
}

func newLogger() zerolog.Logger {
	level := zerolog.DebugLevel
	if !verbose {
		level = zerolog.Disabled
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func run(files []string) error {
	log := newLogger()
	env := lispy.NewRootEnvironment()
	builtin.BindAll(env)
	log.Info().Msg("root environment initialized")

	if len(files) > 0 {
		return runFiles(env, &log, files)
	}
	return runREPL(env, &log)
}

func runFiles(env *lispy.Environment, log *zerolog.Logger, files []string) error {
	for _, path := range files {
		log.Info().Str("file", path).Msg("loading")
		args := lispy.MakeSExpr(lispy.Str(path))
		result, err := builtin.Load(env, args)
		if err != nil {
			return err
		}
		if errVal, ok := result.(lispy.Err); ok {
			fmt.Fprintln(os.Stderr, errVal.String())
		}
	}
	return nil
}

func runREPL(env *lispy.Environment, log *zerolog.Logger) error {
	fmt.Println(banner)
	fmt.Println(bannerSubtle)

	historyFile := replhist.DefaultPath()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		if line == "" {
			continue
		}
		evalLine(env, log, line)
	}
	return nil
}

func evalLine(env *lispy.Environment, log *zerolog.Logger, line string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n", r)
		}
	}()

	forms, err := reader.ReadString("repl", line)
	if err != nil {
		fmt.Println(lispy.MakeErr("%s", err.Error()).String())
		return
	}
	for _, form := range forms {
		log.Debug().Str("form", form.String()).Msg("evaluating")
		result, err := eval.Eval(env, form)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(result)
	}
}
