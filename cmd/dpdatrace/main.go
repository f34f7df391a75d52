package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/pushdown/dpda"
	"github.com/npillmayer/pushdown/format"
	"github.com/npillmayer/pushdown/languages/anbn"
	"github.com/npillmayer/pushdown/languages/dyck"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// language bundles a rule set with its sample inputs.
type language struct {
	name      string
	automaton func(...dpda.Option) (*dpda.Automaton, error)
	samples   []string
}

var languages = map[string]language{
	"anbn": {name: "aⁿbⁿ$", automaton: anbn.Automaton, samples: anbn.Inputs},
	"dyck": {name: "balanced parentheses", automaton: dyck.Automaton, samples: dyck.Inputs},
}

// main() starts an interactive CLI, where users select one of the sample inputs
// by number or type an input of their own. The automaton's trace for the input
// is printed as a table.
//
//    1..n    run sample input #n
//    all     run all sample inputs concurrently and print a summary
//    rules   print the rule set
//    0       quit (as does <ctrl>D)
//
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	lang := flag.String("lang", "anbn", "Language [anbn|dyck]")
	maxSteps := flag.Int("maxsteps", dpda.DefaultMaxSteps, "Step limit per run")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo)
	pterm.Info.Println("Welcome to DPDA trace")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	l, ok := languages[*lang]
	if !ok {
		pterm.Error.Printf("unknown language %q\n", *lang)
		os.Exit(2)
	}
	A, err := l.automaton(dpda.MaxSteps(*maxSteps))
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	setTraceLevel(*tlevel)
	A.Rules().Dump() // only visible in debug mode
	intp := &Intp{A: A, lang: l}
	//
	// inputs as arguments are run without entering interactive mode
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		if err := intp.run(input); err != nil {
			os.Exit(1)
		}
		return
	}
	repl, err := readline.New("dpda> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	A    *dpda.Automaton
	lang language
	repl *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	intp.menu()
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

func (intp *Intp) menu() {
	pterm.Info.Printf("Select an input to run (1-%d), or 0 to quit:\n", len(intp.lang.samples))
	for i, s := range intp.lang.samples {
		pterm.Printf("%d: %s\n", i+1, s)
	}
	pterm.Println("Any other text is run as input for " + intp.lang.name)
}

// Eval executes a command line.
func (intp *Intp) Eval(line string) (bool, error) {
	switch line {
	case "0", "quit":
		return true, nil
	case "all":
		return false, intp.runAll()
	case "rules":
		intp.printRules()
		return false, nil
	case "help", "?":
		intp.menu()
		return false, nil
	}
	if n, err := strconv.Atoi(line); err == nil {
		if n < 1 || n > len(intp.lang.samples) {
			pterm.Error.Println("Invalid choice. Try again.")
			return false, fmt.Errorf("invalid choice %d", n)
		}
		line = intp.lang.samples[n-1]
	}
	return false, intp.run(line)
}

func (intp *Intp) run(input string) error {
	pterm.Info.Printf("===== Input: %s =====\n", input)
	result, err := intp.A.Run(input)
	if err != nil {
		pterm.Error.Println(err.Error())
		if result == nil {
			return err
		}
	}
	if err := format.Text(os.Stdout, result.Trace); err != nil {
		tracer().Errorf(err.Error())
	}
	if result.Accepted {
		pterm.Success.Println(format.Summary(input, result))
	} else if err == nil {
		pterm.Error.Println(format.Summary(input, result))
		return result.Err()
	}
	return err
}

func (intp *Intp) runAll() error {
	results, err := intp.A.RunAll(intp.lang.samples...)
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	rows := [][]string{{"Input", "Outcome", "Steps", "Fingerprint"}}
	for i, r := range results {
		if r == nil {
			continue
		}
		outcome := "accepted"
		if !r.Accepted {
			outcome = "rejected: " + r.Reason.String()
		}
		rows = append(rows, []string{intp.lang.samples[i], outcome,
			strconv.Itoa(r.Step), r.Trace.Fingerprint()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	return err
}

func (intp *Intp) printRules() {
	pterm.DefaultSection.Println("Rule set " + intp.A.Rules().Name())
	if err := format.Table(os.Stdout, format.RuleRows(intp.A.Rules())); err != nil {
		tracer().Errorf(err.Error())
	}
}

func setTraceLevel(l string) {
	level := tracing.TraceLevelFromString(l)
	tracer().SetTraceLevel(level)
	tracing.Select("pushdown.dpda").SetTraceLevel(level)
	tracing.Select("pushdown.scanner").SetTraceLevel(level)
}
