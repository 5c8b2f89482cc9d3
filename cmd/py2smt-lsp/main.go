// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"py2smt/internal/lsp"
	"py2smt/internal/translate"
)

const lsName = "py2smt"

var handler protocol.Handler

func main() {
	paramType := flag.String("param-type", "", "SMT sort for every parameter (default Int)")
	returnType := flag.String("return-type", "", "SMT sort for the return value")
	strict := flag.Bool("strict", false, "diagnose output shapes that are not valid SMT-LIB2")
	flag.Parse()

	// Debug-level logging to the default backend.
	commonlog.Configure(1, nil)

	converterHandler := lsp.NewHandler(translate.Options{
		ParamType:  *paramType,
		ReturnType: *returnType,
		Strict:     *strict,
	})

	handler = protocol.Handler{
		Initialize:                     converterHandler.Initialize,
		Initialized:                    converterHandler.Initialized,
		Shutdown:                       converterHandler.Shutdown,
		SetTrace:                       converterHandler.SetTrace,
		TextDocumentDidOpen:            converterHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           converterHandler.TextDocumentDidClose,
		TextDocumentDidChange:          converterHandler.TextDocumentDidChange,
		TextDocumentCompletion:         converterHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: converterHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting py2smt LSP server...")

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting py2smt LSP server:", err)
		os.Exit(1)
	}
}
