// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"py2smt/internal/config"
	"py2smt/internal/errors"
	"py2smt/internal/sexpr"
	"py2smt/internal/translate"
)

func main() {
	typeShorthand := flag.String("t", "", "SMT sort for parameters and return value")
	paramType := flag.String("param-type", "", "SMT sort for every parameter (default Int)")
	returnType := flag.String("return-type", "", "SMT sort for the return value (defaults to the parameter sort)")
	strict := flag.Bool("strict", false, "reject output shapes that are not valid SMT-LIB2")
	check := flag.Bool("check", false, "re-read the output and warn about non-solver shapes")
	configPath := flag.String("config", "", "path to a py2smt.toml (default: next to the input)")
	outPath := flag.String("o", "", "write output to this file instead of stdout")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: py2smt [flags] <file.py>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	startTime := time.Now()
	path := flag.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	opts, destination, err := resolveOptions(path, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Command-line flags win over the config file. The -t shorthand sets
	// both sorts; the specific flags win over it in turn.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["t"] {
		opts.ParamType = *typeShorthand
		opts.ReturnType = *typeShorthand
	}
	if set["param-type"] {
		opts.ParamType = *paramType
	}
	if set["return-type"] {
		opts.ReturnType = *returnType
	}
	if set["strict"] {
		opts.Strict = *strict
	}
	if set["o"] {
		destination = *outPath
	}

	result := translate.ConvertSource(path, string(source), opts)

	reporter := errors.NewReporter(path, string(source))
	fmt.Fprint(os.Stderr, reporter.FormatAll(result))

	duration := formatDuration(time.Since(startTime))

	if result.HasErrors() {
		color.Red("Conversion failed after %s", duration)
		os.Exit(1)
	}

	if *check {
		warnNonSolverShapes(result.Output)
	}

	if destination != "" {
		if err := os.WriteFile(destination, []byte(result.Output+"\n"), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write output: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println(result.Output)
	}

	color.Green("Converted %d function(s) from %s in %s", result.ParseCount, path, duration)
}

func resolveOptions(inputPath, configPath string) (translate.Options, string, error) {
	var cfg *config.File
	var err error

	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.Discover(inputPath)
	}
	if err != nil {
		return translate.Options{}, "", err
	}

	return cfg.Options(), cfg.Output.Path, nil
}

// warnNonSolverShapes re-reads the emitted text and prints a warning for
// every define-fun whose body did not collapse to a single expression.
// The extra siblings are the compatibility encoding of sequential
// statements; a solver will reject them.
func warnNonSolverShapes(output string) {
	forms, err := sexpr.Read(output)
	if err != nil {
		color.Yellow("warning[%s]: output is not well-formed s-expression text: %v",
			errors.WarningNonSolverOutput, err)
		return
	}

	for _, form := range forms {
		list, ok := form.(sexpr.List)
		if !ok || len(list) < 2 || list[0] != sexpr.Symbol("define-fun") {
			continue
		}
		if len(list) > 5 {
			color.Yellow("warning[%s]: %s: body has %d sibling forms; a solver expects one",
				errors.WarningNonSolverOutput, list[1], len(list)-4)
		}
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
