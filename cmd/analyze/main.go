// Command analyze submits a PDF to a running PDF Whisperer backend and
// prints the analysis.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pdf-whisperer/backend/internal/client"
)

func main() {
	var (
		server    = flag.String("server", client.DefaultBaseURL, "backend base URL")
		model     = flag.String("model", "llama3", "model identifier")
		language  = flag.String("language", "", "response language code (e.g. fr)")
		aType     = flag.String("type", "", "analysis type: summary, detailed or extraction")
		precision = flag.Int("precision", 0, "detail level 1-10 (0 = default)")
		tables    = flag.Bool("tables", false, "describe tables found in the document")
		keywords  = flag.Bool("keywords", false, "append keywords to the analysis")
		timeout   = flag.Duration("timeout", 0, "request timeout (0 = none)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <file.pdf>\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		fatal("failed to read %s: %v", path, err)
	}

	sel := client.NewSelection()
	if err := sel.SetFile(filepath.Base(path), data); err != nil {
		fatal("%v", err)
	}
	sel.SetModel(*model)

	merge := func(key string, value interface{}) {
		if err := sel.MergeParameter(key, value); err != nil {
			fatal("%v", err)
		}
	}
	if *language != "" {
		merge("language", *language)
	}
	if *aType != "" {
		merge("analysisType", *aType)
	}
	if *precision != 0 {
		merge("precision", *precision)
	}
	if *tables {
		merge("extractTables", true)
	}
	if *keywords {
		merge("generateKeywords", true)
	}

	c := client.New(*server)
	if *timeout > 0 {
		c.HTTPClient.Timeout = *timeout
	}

	ctrl := client.NewController(c, sel, sel, sel)

	fmt.Fprintf(os.Stderr, "Analyzing %s with %s...\n", filepath.Base(path), *model)
	start := time.Now()

	if !ctrl.Submit(context.Background()) {
		fatal("nothing to submit: select a file and a model")
	}

	out := ctrl.Outcome()
	if !out.Succeeded() {
		fatal("analysis failed: %s", out.Err)
	}

	report := out.Report
	fmt.Fprintf(os.Stderr, "Done in %s (%d pages, %d chars sent)\n\n",
		time.Since(start).Round(time.Millisecond), report.Pages, report.CharsSent)
	fmt.Println(report.Summary)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
