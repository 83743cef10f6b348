package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/eqtex-org/eqtex/chain"
	"github.com/eqtex-org/eqtex/display"
)

// ============================================================================
// EQTEX CLI — typeset equation chains from the command line
// ============================================================================

const version = "0.1.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	relation := flag.String("relation", "=", "Relation joined between terms (=, \\approx, \\equiv, ...)")
	block := flag.Bool("block", false, "Use display-math delimiters ($$) instead of inline ($)")
	validate := flag.Bool("validate", false, "Parse each fragment and reject malformed LaTeX")
	format := flag.String("format", "latex", "Output format: latex, json, html")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	stdin := flag.Bool("stdin", false, "Read terms from stdin, one per line")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `eqtex — typeset equation chains

Usage:
  eqtex [flags] TERM [TERM...]
  eqtex --stdin [flags] < terms.txt

Each TERM is literal LaTeX source. Terms are joined by the relation into
one typeset-math string, e.g.:

  eqtex '\boldsymbol{r}' 'x\hat{n}_x + y\hat{n}_y'
  → $\boldsymbol{r}$ $\, = \,$ $x\hat{n}_x + y\hat{n}_y$

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Formats:
  latex     Raw typeset-math string (default)
  json      Jupyter display_data MIME bundle
  html      Self-contained MathJax page

Examples:
  eqtex --format json 'E' 'mc^2'
  eqtex --format html --out eq.html --relation '\approx' '\pi' '22/7'
  eqtex --validate '\frac{1}{2}mv^2' 'E_k'
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("eqtex %s\n", version)
		os.Exit(0)
	}

	// ── Collect terms ─────────────────────────────────────────────────────
	terms := collectTerms(*stdin)
	if len(terms) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one term is required")
		flag.Usage()
		os.Exit(1)
	}

	// ── Output writer ─────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	// ── Options ───────────────────────────────────────────────────────────
	opts := []chain.Option{chain.WithRelation(*relation)}
	if *block {
		opts = append(opts, chain.WithDisplayMath())
	}
	if *validate {
		opts = append(opts, chain.WithValidation())
	}

	// ── Render ────────────────────────────────────────────────────────────
	var sink chain.Sink
	var htmlSink *display.HTMLSink

	switch *format {
	case "latex":
		sink = display.NewWriterSink(writer)
	case "json":
		sink = display.NewNotebookSink(writer)
	case "html":
		htmlSink = display.NewHTMLSink(writer)
		sink = htmlSink
	default:
		fatalf("Unknown format %q (want latex, json, or html)", *format)
	}

	if err := chain.Display(sink, terms, opts...); err != nil {
		fatalf("%v", err)
	}
	if htmlSink != nil {
		if err := htmlSink.Close(); err != nil {
			fatalf("%v", err)
		}
	}

	if *outFile != "" {
		log.Printf("📄 Typeset %d terms to %s", len(terms), *outFile)
	}
}

// collectTerms gathers terms from argv or stdin.
func collectTerms(fromStdin bool) []interface{} {
	var terms []interface{}
	if fromStdin {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if line != "" {
				terms = append(terms, line)
			}
		}
		if err := scanner.Err(); err != nil {
			fatalf("Failed to read stdin: %v", err)
		}
		return terms
	}
	for _, arg := range flag.Args() {
		terms = append(terms, arg)
	}
	return terms
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
