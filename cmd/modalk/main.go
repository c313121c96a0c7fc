/*
Command modalk is a small CLI front end to the modalk decision procedure. It
supports a one-shot mode ("modalk decide <formula>") and an interactive REPL,
both grounded on the same Parse/Decide facade the library exposes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2019–2026 The modalk Authors

*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/ravndal/modalk"
)

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	timeout := flag.Duration("timeout", 5*time.Second, "per-decision timeout")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))

	args := flag.Args()
	if len(args) >= 1 && args[0] == "decide" {
		runOnce(strings.Join(args[1:], " "), *timeout)
		return
	}
	if len(args) >= 1 {
		runOnce(strings.Join(args, " "), *timeout)
		return
	}
	runREPL(*timeout)
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{Text: "  >>", Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)}
	pterm.Error.Prefix = pterm.Prefix{Text: "  Error", Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack)}
	pterm.Success.Prefix = pterm.Prefix{Text: "  OK", Style: pterm.NewStyle(pterm.BgGreen, pterm.FgBlack)}
}

func tracer() tracing.Trace {
	return tracing.Select("modalk.cmd")
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

func runOnce(src string, timeout time.Duration) {
	if strings.TrimSpace(src) == "" {
		pterm.Error.Println("usage: modalk decide \"<formula>\"")
		os.Exit(2)
	}
	if err := report(src, timeout); err != nil {
		os.Exit(1)
	}
}

func runREPL(timeout time.Duration) {
	pterm.Info.Println("Welcome to modalk — enter a formula, <ctrl>D to quit")
	repl, err := readline.New("modalk> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF on <ctrl>D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		report(line, timeout)
	}
	pterm.Info.Println("Good bye!")
}

// report parses and decides src, printing a colored summary. It returns the
// error (if any) purely so callers can set an exit code.
func report(src string, timeout time.Duration) error {
	phi, err := modalk.Parse(src)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	res, err := modalk.Decide(ctx, phi)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	pterm.Info.Printfln("%s", phi.String())
	pterm.Success.Printfln("valid: %v   satisfiable: %v", res.Valid, res.Satisfiable)
	if res.Satisfiable && len(res.Valuation) > 0 {
		root := pterm.TreeNode{Text: "witness"}
		for _, v := range res.Valuation {
			label := fmt.Sprintf("%s: true=%v false=%v", v.World, v.True, v.False)
			root.Children = append(root.Children, pterm.TreeNode{Text: label})
		}
		pterm.DefaultTree.WithRoot(root).Render()
	}
	return nil
}
