package main

import (
	"fmt"
	"os"

	"github.com/blockkit/delimiter/internal/delimiter"
	"github.com/blockkit/delimiter/internal/editor"
	"github.com/blockkit/delimiter/internal/logger"
)

func main() {
	log, err := logger.New(logger.Options{Level: "info", HumanReadable: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	registry := editor.NewRegistry(log)
	if err := delimiter.Register(registry, log); err != nil {
		fmt.Fprintf(os.Stderr, "failed to register tools: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(registry, log).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
