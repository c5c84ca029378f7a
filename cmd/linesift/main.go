package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/patrickward/linesift"
)

const (
	appName    = "linesift"
	appVersion = "0.1.0"
)

// getCaseInsensitive determines whether matching ignores letter case:
// 1. The command-line flag (-ignore-case) takes the highest precedence.
// 2. Environment variable IGNORE_CASE if a flag is not set. Any value,
//    including an empty one, enables it; only absence leaves it off.
func getCaseInsensitive(flagValue bool) bool {
	if flagValue {
		return true
	}

	_, present := os.LookupEnv("IGNORE_CASE")
	return present
}

func main() {
	var ignoreCase bool
	var lineNumbers bool
	var logFile string
	var showVersion bool

	flagSet := flag.NewFlagSet(appName, flag.ExitOnError)
	flagSet.BoolVar(&ignoreCase, "ignore-case", false, "Match lines without regard to letter case.")
	flagSet.BoolVar(&ignoreCase, "i", false, "Match lines without regard to letter case.")
	flagSet.BoolVar(&lineNumbers, "line-numbers", false, "Prefix each match with its line number.")
	flagSet.BoolVar(&lineNumbers, "n", false, "Prefix each match with its line number.")
	flagSet.StringVar(&logFile, "log", "", "Append diagnostics to a rotating log file at the given path.")
	flagSet.BoolVar(&showVersion, "version", false, "Show application version.")
	flagSet.BoolVar(&showVersion, "v", false, "Show application version.")

	flagSet.Usage = func() {
		_, _ = fmt.Fprintf(flagSet.Output(), "%s - print the lines of a file that contain a query\n\n", appName)
		_, _ = fmt.Fprintf(flagSet.Output(), "Usage:\n")
		_, _ = fmt.Fprintf(flagSet.Output(), "  %s [flags] <query> <file>\n\n", appName)
		_, _ = fmt.Fprintf(flagSet.Output(), "Examples:\n")
		_, _ = fmt.Fprintf(flagSet.Output(), "  # Case-sensitive search:\n")
		_, _ = fmt.Fprintf(flagSet.Output(), "  %s three poem.txt\n\n", appName)
		_, _ = fmt.Fprintf(flagSet.Output(), "  # Case-insensitive search via flag or environment:\n")
		_, _ = fmt.Fprintf(flagSet.Output(), "  %s -i rust poem.txt\n", appName)
		_, _ = fmt.Fprintf(flagSet.Output(), "  IGNORE_CASE=1 %s rust poem.txt\n\n", appName)
		_, _ = fmt.Fprintf(flagSet.Output(), "Options:\n")
		flagSet.PrintDefaults()
	}

	// Parse the flags
	err := flagSet.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing flags: %v\n", err)
		os.Exit(2)
	}

	if showVersion {
		fmt.Printf("%s version %s\n", appName, appVersion)
		os.Exit(0)
		return
	}

	// Diagnostics go to the log file when requested; results always go to
	// stdout untouched, so without -log the logger is silenced entirely.
	if logFile != "" {
		if err := SetupLogging(DefaultLogConfig(logFile)); err != nil {
			fmt.Fprintf(os.Stderr, "error setting up logging: %v\n", err)
			os.Exit(1)
		}
	} else {
		log.SetOutput(io.Discard)
	}

	// Rebuild an argv-shaped slice so the config resolver sees the program
	// name followed by the positional arguments, with flags stripped.
	args := append([]string{appName}, flagSet.Args()...)

	cfg, err := linesift.NewConfig(args, getCaseInsensitive(ignoreCase))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <query> <file>\n", appName)
		os.Exit(2)
	}

	log.Printf("searching %s for %q (case insensitive: %t)", cfg.FilePath, cfg.Query, cfg.CaseInsensitive)

	run := linesift.Run
	if lineNumbers {
		run = linesift.RunNumbered
	}

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)

		var cfgErr *linesift.ConfigError
		if errors.As(err, &cfgErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	log.Printf("search of %s complete", cfg.FilePath)
}
