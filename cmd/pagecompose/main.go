package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/pagecompose/cmd/pagecompose/commands"
	cerrors "git.home.luguber.info/inful/pagecompose/internal/errors"
	"git.home.luguber.info/inful/pagecompose/internal/version"
)

func main() {
	// Optional .env overlay; a missing file is not an error.
	_ = godotenv.Load()

	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("pagecompose"),
		kong.Description("Page-layout composition engine for static documentation sites."),
		kong.Vars{"version": version.Version},
	)

	if err := ctx.Run(&commands.Global{}, cli); err != nil {
		fmt.Fprintf(os.Stderr, "pagecompose: %v\n", err)
		if cerrors.IsCategory(err, cerrors.CategoryConfig) || cerrors.IsCategory(err, cerrors.CategoryValidation) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
