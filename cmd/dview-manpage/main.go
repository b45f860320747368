package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dview/cmd/dview"
	"github.com/arthur-debert/dview/internal/version"
	"github.com/arthur-debert/dview/pkg/config"
	"github.com/arthur-debert/dview/pkg/core"
)

func main() {
	app := core.MustInitialize(config.Options{SkipUser: true})
	rootCmd := dview.NewRootCmd(app)

	header := &doc.GenManHeader{
		Title:   "DVIEW",
		Section: "1",
		Source:  "dview " + version.Version,
		Manual:  "dview manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
