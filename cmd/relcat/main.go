package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/relcat-io/relcat/catalog"
	"github.com/relcat-io/relcat/output"
	"github.com/relcat-io/relcat/query"
)

var (
	manifestFlag = flag.String("m", "", "Dataset manifest (YAML)")
	tableFlag    = flag.String("t", "", "Base table to filter")
	queryFlag    = flag.String("q", "", "Filter query (e.g., \"orders.amount > 1000\")")
	formatFlag   = flag.String("f", "jsonl", "Output format: jsonl, csv, table")
	signedFlag   = flag.Bool("signed", false, "Accept negative numeric literals")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -m <manifest.yaml> -t <table> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to filter linked parquet datasets with a relational query language.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -m dataset.yaml -t customers -q \"age > 30\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -m dataset.yaml -t customers -q \"orders.amount > 1000\" -f csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -m dataset.yaml -t customers -q \"(age > 30 | age < 20) & orders.amount > 1000\" -f table\n", os.Args[0])
	}

	flag.Parse()

	if *manifestFlag == "" || *tableFlag == "" {
		fmt.Fprintf(os.Stderr, "Error: -m and -t are required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	formatter, ok := output.New(*formatFlag, os.Stdout)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q (want jsonl, csv, or table)\n", *formatFlag)
		os.Exit(1)
	}

	cat, err := catalog.Load(*manifestFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		os.Exit(1)
	}

	logger, err := catalog.NewLogger(cat.Manifest.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	base, ok := cat.Table(*tableFlag)
	if !ok {
		logger.Error("table not declared in manifest", "table", *tableFlag)
		os.Exit(1)
	}
	logger.Debug("dataset loaded", "tables", cat.TableNames(), "rows", base.NumRows())

	result := base
	if *queryFlag != "" {
		var opts []query.Option
		if *signedFlag {
			opts = append(opts, query.SignedNumbers())
		}

		result, err = query.Filter(base, *queryFlag, opts...)
		if err != nil {
			logger.Error("filter failed", "query", *queryFlag, "error", err)
			os.Exit(1)
		}
		logger.Debug("filter applied", "query", *queryFlag, "matched", result.NumRows())
	}

	if err := formatter.Format(result); err != nil {
		logger.Error("output failed", "error", err)
		os.Exit(1)
	}
}
