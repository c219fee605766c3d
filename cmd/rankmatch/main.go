package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lintang-b-s/rankmatch/pkg/logger"
	"github.com/lintang-b-s/rankmatch/pkg/matching"
	"github.com/lintang-b-s/rankmatch/pkg/prefparser"
	"github.com/lintang-b-s/rankmatch/pkg/util"
	"go.uber.org/zap"
)

var (
	validate = flag.Bool("validate", false, "check flow conservation and the matching after every run")
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [-validate] file1 [file2 ...]\n", os.Args[0])
		os.Exit(2)
	}

	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	status := run(flag.Args(), *validate, log, os.Stdout, os.Stderr)
	_ = log.Sync()
	os.Exit(status)
}

// run processes every file independently and returns the process exit code.
func run(files []string, validate bool, log *zap.Logger, stdout, stderr io.Writer) int {
	parser := prefparser.NewParser(log)
	status := 0

	for _, file := range files {
		if err := processFile(parser, file, validate, log, stdout); err != nil {
			fmt.Fprintf(stderr, "%v\nFile '%s' will not be processed.\n", err, file)
			status = 1
		}
	}
	return status
}

func processFile(parser *prefparser.Parser, file string, validate bool, log *zap.Logger, stdout io.Writer) error {
	start := time.Now()

	result, err := parser.ParseFile(file)
	if err != nil {
		return err
	}
	if skipped := result.SkippedLines(); len(skipped) > 0 {
		log.Warn("skipped malformed lines", zap.String("file", file), zap.Int("count", len(skipped)))
	}

	m, err := matching.FindMatching(result.Table, log, validate)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s\n", file)
	if err := m.Report(stdout); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Elapsed time: %s\n\n", time.Since(start))
	return nil
}
