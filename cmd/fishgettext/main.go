package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"fishgettext/internal/application"
	"fishgettext/internal/config"
	"fishgettext/internal/domain"
	"fishgettext/internal/infrastructure/catalog"
	"fishgettext/internal/ports/output"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run wires config -> catalog -> resolver and prints the resolved string.
// Translation availability never changes the exit status; only operand-count
// misuse does.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: fishgettext STRING")
		return 2
	}

	cfg := config.Load()

	logger := log.New(io.Discard, "", 0)
	if cfg.Debug {
		logger = log.New(stderr, "fishgettext: ", 0)
	}

	var cat output.Catalog = catalog.Disabled{}
	if !cfg.Disabled {
		cat = catalog.New(domain.Domain, cfg.LocaleDir, logger)
	}

	locale := domain.NewLocaleContext(cfg.Lang, cfg.LCMessages)
	resolver := application.NewTranslationService(cat, locale)

	fmt.Fprintln(stdout, resolver.Resolve(args[0]))
	return 0
}
