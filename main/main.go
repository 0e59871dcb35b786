/*
File    : lumen/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Lumen interpreter.
It provides two modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute a Lumen source file from the command line

The interpreter uses a lexer-parser-evaluator pipeline to process Lumen code.
*/
package main

import (
	"os"

	"github.com/akashmaji946/lumen/evaluator"
	"github.com/akashmaji946/lumen/object"
	"github.com/akashmaji946/lumen/parser"
	"github.com/akashmaji946/lumen/repl"
	"github.com/fatih/color"
)

// VERSION represents the current version of the Lumen interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "lumen >>> "

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
    ▄▄▄▄                   ▄▄▄  ▄▄▄     ██    ▄▄▄▄    ▄▄▄▄▄  ▄▄▄▄▄▄
   █  ▀▀  █   ██          ███  ███     ▀▀     ▀▀ █    ██     ██   ██
   █      █  ████   ▄▄▄▄  ████████   ████        █    ████   ██▄▄██▀
   █▄▄▄▄▄▄█   ██   ██▄▄██ ██ ██ ██     ██         █    ██     ██  ▀█▄
    ▀▀▀▀      ██    ▀▀▀▀  ██    ██  ▄▄▄██▄▄▄  ▄▄▄▄█    ▄▄▄▄▄  ██   ▀▀
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for file execution output
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the Lumen interpreter.
// It determines the operating mode based on command-line arguments:
//
// Usage:
//
//	lumen              - Start in REPL (interactive) mode
//	lumen <filename>   - Execute the specified Lumen source file
//	lumen --help       - Display help information
//	lumen --version    - Display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		runFile(arg)
	} else {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	}
}

// showHelp displays the help information for the Lumen interpreter
func showHelp() {
	cyanColor.Println("Lumen - A small interpreted scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lumen                    Start interactive REPL mode")
	yellowColor.Println("  lumen <path-to-file>     Execute a Lumen file (.lm)")
	yellowColor.Println("  lumen --help             Display this help message")
	yellowColor.Println("  lumen --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                    Exit the REPL")
}

// showVersion displays the version information for the Lumen interpreter
func showVersion() {
	cyanColor.Println("Lumen - A small interpreted scripting language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a Lumen source file.
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	executeFileWithRecovery(string(fileContent))
}

// executeFileWithRecovery runs source through the lexer, parser, and
// evaluator, reporting parse errors or a runtime error object and exiting
// non-zero on either.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	p := parser.NewParser(source)
	program := p.Parse()

	if errs := p.GetErrors(); len(errs) != 0 {
		for _, msg := range errs {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", msg)
		}
		os.Exit(1)
	}

	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)

	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}

	if result.Type() != object.NULL_OBJ {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
	}
}
