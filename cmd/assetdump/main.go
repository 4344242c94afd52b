// Command assetdump decodes an asset dump file, prints the document in a
// structured format and optionally evaluates check expressions against it.
//
// Usage:
//
//	assetdump [-format json|yaml|none] [-check EXPR]... [-quiet] <file>
//
// Files ending in .snappy are decompressed before decoding. Exit status is
// 0 on success, 1 when a check expression fails and 2 when the input cannot
// be decoded.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/golang/snappy"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	assetdump "github.com/assetforge/assetdump"
	"github.com/assetforge/assetdump/check"
)

type exprList []string

func (l *exprList) String() string { return strings.Join(*l, ", ") }

func (l *exprList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	var (
		format = flag.String("format", "json", "Output format: json, yaml or none")
		quiet  = flag.Bool("quiet", false, "Only log check results and errors")
		checks exprList
	)
	flag.Var(&checks, "check", "Expression to evaluate against the document, may be repeated")
	flag.Parse()

	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = time.TimeOnly
	})).With().Timestamp().Logger()
	if *quiet {
		logger = logger.Level(zerolog.WarnLevel)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: assetdump [-format json|yaml|none] [-check EXPR]... [-quiet] <file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error().Err(err).Str("file", path).Msg("cannot read input")
		os.Exit(2)
	}
	if strings.HasSuffix(path, ".snappy") {
		data, err = snappy.Decode(nil, data)
		if err != nil {
			logger.Error().Err(err).Str("file", path).Msg("cannot decompress input")
			os.Exit(2)
		}
	}

	start := time.Now()
	doc, err := assetdump.Parse(data)
	if err != nil {
		logger.Error().Err(err).Str("file", path).Msg("decode failed")
		os.Exit(2)
	}
	logger.Info().
		Str("file", path).
		Str("root", doc.TypeName).
		Int("bytes", len(data)).
		Dur("elapsed", time.Since(start)).
		Msg("document decoded")

	switch *format {
	case "json":
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			logger.Error().Err(err).Msg("cannot render document as json")
			os.Exit(2)
		}
		fmt.Printf("%s\n", out)
	case "yaml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			logger.Error().Err(err).Msg("cannot render document as yaml")
			os.Exit(2)
		}
		os.Stdout.Write(out)
	case "none":
	default:
		logger.Error().Str("format", *format).Msg("unknown output format")
		os.Exit(2)
	}

	if len(checks) == 0 {
		return
	}

	checker, err := check.New(checks...)
	if err != nil {
		logger.Error().Err(err).Msg("invalid check expression")
		os.Exit(2)
	}
	failed := 0
	for _, res := range checker.Evaluate(doc) {
		switch {
		case res.Err != nil:
			failed++
			logger.Error().Err(res.Err).Str("check", res.Source).Msg("check errored")
		case !res.Pass:
			failed++
			logger.Warn().Str("check", res.Source).Msg("check failed")
		default:
			logger.Info().Str("check", res.Source).Msg("check passed")
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
