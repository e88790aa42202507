// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/bfpp/config"
	"github.com/ezrec/bfpp/engine"
	"github.com/ezrec/bfpp/runner"
)

// Version of the interpreter.
const Version = "1.3"

// listFlag collects repeated string flags.
type listFlag []string

func (lf *listFlag) String() string {
	return strings.Join(*lf, ",")
}

func (lf *listFlag) Set(value string) error {
	*lf = append(*lf, value)
	return nil
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Brainfuck++ Interpreter v%v\n\n", Version)
	fmt.Fprintf(out, "Usage: %v [options] [file.bf ...]\n", os.Args[0])
	fmt.Fprintf(out, "\nRuns each -e program, then each file, in order.\n\nOptions:\n")
	flag.PrintDefaults()
	fmt.Fprintf(out, "\nSettings for -config and -D:\n")
	for name := range config.Names() {
		fmt.Fprintf(out, "  %v\n", name)
	}
}

func main() {
	var exprs listFlag
	var defines listFlag
	var configFile string
	var input string
	var output string
	var verbose bool

	cfg := engine.DefaultConfig()

	flag.Usage = usage
	flag.Var(&exprs, "e", "Program text to run (repeatable)")
	flag.Var(&defines, "D", "Setting override, name=expression (repeatable)")
	flag.StringVar(&configFile, "config", "", ".toml or .star configuration file")
	flag.IntVar(&cfg.MaxStackDepth, "s", cfg.MaxStackDepth, "Maximum subroutine call depth")
	flag.IntVar(&cfg.CellCount, "c", cfg.CellCount, "Initial tape cell count")
	flag.BoolVar(&cfg.AbortOnError, "f", cfg.AbortOnError, "Abort on tape, input and tag errors")
	flag.BoolVar(&cfg.AllowTapeGrowth, "g", cfg.AllowTapeGrowth, "Grow the tape past its end")
	flag.StringVar(&input, "i", "-", "Program input")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if len(exprs) == 0 && flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Configuration file settings override the flags, and are
	// overridden by the -D settings.
	if len(configFile) != 0 {
		err := config.Load(&cfg, configFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	for _, define := range defines {
		err := config.Set(&cfg, define)
		if err != nil {
			log.Fatalf("-D %v: %v", define, err)
		}
	}

	err := cfg.Validate()
	if err != nil {
		log.Fatal(err)
	}

	if verbose {
		for name, value := range config.All(cfg) {
			log.Printf("bfpp: %v = %v", name, value)
		}
	}

	rn := runner.NewRunner(cfg)
	rn.Verbose = verbose

	if input == "-" {
		rn.Stream.Input = bufio.NewReader(os.Stdin)
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatal(err)
		}
		defer inf.Close()
		rn.Stream.Input = bufio.NewReader(inf)
	}

	var writer *bufio.Writer
	if output == "-" {
		rn.Stream.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatal(err)
		}
		defer ouf.Close()
		writer = bufio.NewWriter(ouf)
		rn.Stream.Output = writer
	}

	err = rn.Run(runner.Sources(exprs, flag.Args()))

	if writer != nil {
		if ferr := writer.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}

	if err != nil {
		log.Fatal(err)
	}
}
