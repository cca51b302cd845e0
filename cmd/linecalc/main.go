package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/linecalc"
)

const (
	historyFile = ".linecalc_history"
	banner      = "Enter expressions or assignments (e.g., x = 3 + 4). Type 'exit' to quit."
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("linecalc: ")
	var (
		inname, defs, hist       string
		with                     [][2]string
		strict, zero, checked, q bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=expr", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file, or - for non-interactive stdin (default interactive stdin)")
	flag.StringVar(&defs, "defs", "", "YAML file mapping variable names to integer values")
	flag.Func("given", "name=expr variable definition (any number of times)", addwith)
	flag.BoolVar(&strict, "strict", false, "reject text following a complete statement")
	flag.BoolVar(&zero, "zero", false, "evaluate a missing number as 0")
	flag.BoolVar(&checked, "checked", false, "report integer overflow as an error")
	flag.StringVar(&hist, "history", defaultHistory(), "interactive history file, empty to disable")
	flag.BoolVar(&q, "q", false, "don't print the banner")
	flag.Parse()

	var opts []linecalc.Option
	if strict {
		opts = append(opts, linecalc.RequireEnd())
	}
	if zero {
		opts = append(opts, linecalc.EmptyNumberZero())
	}
	if checked {
		opts = append(opts, linecalc.CheckOverflow())
	}
	it := linecalc.New(opts...)

	if defs != "" {
		vars, err := readDefsFile(defs)
		if err != nil {
			log.Fatal(err)
		}
		for _, v := range vars {
			it.Set(v.Name, v.Value)
		}
	}
	for _, d := range with {
		if err := define(it, d[0], d[1]); err != nil {
			log.Fatal(err)
		}
	}

	if err := session(it, inname, hist, q); err != nil {
		log.Fatal(err)
	}
}

// session runs the read loop on the selected input.
func session(it *linecalc.Interpreter, inname, hist string, quiet bool) error {
	if inname != "" {
		f := os.Stdin
		if inname != "-" {
			var err error
			f, err = os.Open(inname)
			if err != nil {
				return err
			}
			defer f.Close()
		}
		return run(newFileReader(f), os.Stdout, os.Stderr, it)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			f, err := os.Create(hist)
			if err != nil {
				log.Printf("saving history: %v", err)
				return
			}
			ln.WriteHistory(f)
			f.Close()
		}()
	}
	if !quiet {
		fmt.Println(banner)
	}
	return run(ln, os.Stdout, os.Stderr, it)
}

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}
