// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/user"

	"py2smt/internal/translate"
	"py2smt/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the py2smt REPL, %s!\n", currentUser.Username)
	fmt.Println("Enter a function definition and finish it with a blank line.")
	repl.Start(os.Stdin, os.Stdout, translate.Options{})
}
