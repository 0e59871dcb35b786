/*
File    : lumen/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop (REPL) for the Lumen
interpreter. The REPL provides an interactive environment where users can:
- Enter Lumen code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the parser and evaluator to execute user input.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/lumen/evaluator"
	"github.com/akashmaji946/lumen/object"
	"github.com/akashmaji946/lumen/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results and version info
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates all the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "lumen >>> ")
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Lumen!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop, evaluating each line against a single
// shared environment so that `let` bindings and function definitions
// persist across lines within one session.
//
// The loop continues until:
// - User types '.exit'
// - EOF is encountered (Ctrl+D)
// - An error occurs in readline
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")

		if line == "" {
			continue
		}

		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)

		r.evalLineWithRecovery(writer, line, env)
	}
}

// evalLineWithRecovery lexes, parses, and evaluates a single line,
// recovering from any host-level panic so the session survives it.
//
// Unlike file execution mode, the REPL continues running after errors,
// allowing users to correct mistakes and try again.
func (r *Repl) evalLineWithRecovery(writer io.Writer, line string, env *object.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	p := parser.NewParser(line)
	program := p.Parse()

	if errs := p.GetErrors(); len(errs) != 0 {
		for _, msg := range errs {
			redColor.Fprintf(writer, "[PARSE ERROR] %s\n", msg)
		}
		return
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}

	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
