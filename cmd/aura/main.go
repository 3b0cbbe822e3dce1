// Command aura animates a seeded geometric aura in the terminal or exports it as PNG frames
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/aura/core"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "aura: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aura: %v\n", err)
		os.Exit(2)
	}

	a := newApp(cfg, opts)
	if opts.headless() {
		err = runHeadless(a, opts, os.Stdout)
	} else {
		err = runInteractive(a)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "aura: %v\n", err)
		os.Exit(1)
	}
}
