// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"py2smt/internal/errors"
	"py2smt/internal/translate"
)

const PROMPT = ">> "
const CONTINUATION = ".. "

// Start reads function definitions line by line and converts each one
// once a blank line closes it. Indented bodies make single-line entry
// impossible, so the loop accumulates until the definition is complete.
func Start(in io.Reader, out io.Writer, opts translate.Options) {
	scanner := bufio.NewScanner(in)
	var buffer []string

	fmt.Fprint(out, PROMPT)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.TrimSpace(line) != "" {
			buffer = append(buffer, line)
			fmt.Fprint(out, CONTINUATION)
			continue
		}

		if len(buffer) > 0 {
			convert(out, strings.Join(buffer, "\n"), opts)
			buffer = buffer[:0]
		}
		fmt.Fprint(out, PROMPT)
	}

	if len(buffer) > 0 {
		convert(out, strings.Join(buffer, "\n"), opts)
	}
}

func convert(out io.Writer, source string, opts translate.Options) {
	result := translate.ConvertSource("<repl>", source, opts)

	if result.HasErrors() {
		reporter := errors.NewReporter("<repl>", source)
		fmt.Fprint(out, reporter.FormatAll(result))
	}
	if result.Output != "" {
		fmt.Fprintln(out, result.Output)
	}
}
