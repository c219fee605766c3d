package prefparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	da "github.com/lintang-b-s/rankmatch/pkg/datastructure"
	"github.com/lintang-b-s/rankmatch/pkg/util"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const BZIP2_EXTENSION = ".bz2"

type ParseResult struct {
	Table *da.PreferenceTable
	// Skipped holds one ParseError per malformed line that was ignored, combined with multierr.
	Skipped error
}

func (r *ParseResult) SkippedLines() []error {
	return multierr.Errors(r.Skipped)
}

type Parser struct {
	log *zap.Logger
}

func NewParser(log *zap.Logger) *Parser {
	return &Parser{log: log}
}

// ParseFile reads a preference file. files ending in .bz2 are decompressed on the fly.
func (p *Parser) ParseFile(path string) (*ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newParseError(path, 0, ErrInputNotFound)
		}
		return nil, newParseError(path, 0, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, BZIP2_EXTENSION) {
		bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
		if err != nil {
			return nil, newParseError(path, 0, err)
		}
		defer bz.Close()
		r = bz
	}

	return p.Parse(r, path)
}

/*
Parse reads

	name: choice1,choice2,...,choiceN

lines for partition 1, a blank line, then the same for partition 2. lines that do not split into exactly one
name and one ranking list are skipped. a ranking list whose length differs from the first one seen, or
partitions of different sizes, abort the parse.
*/
func (p *Parser) Parse(r io.Reader, name string) (*ParseResult, error) {
	var (
		partition int
		n         = -1
		skipped   error
		names     = [2][]string{make([]string, 0), make([]string, 0)}
		rankings  = make(map[string][]string)
		lineNum   int
	)

	br := bufio.NewReader(r)
	for {
		line, err := readLine(br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, newParseError(name, lineNum, err)
		}
		lineNum++
		line = strings.TrimSpace(line)

		if line == "" {
			if partition == 0 && len(names[0]) > 0 {
				if len(names[0]) != n {
					return nil, newParseError(name, lineNum, fmt.Errorf("%w: there are %d items in partition 1 but each one provided %d rankings",
						ErrRankCountMismatch, len(names[0]), n))
				}
				partition = 1
			}
			continue
		}

		vertexName, choices, ok := splitLine(line)
		if !ok {
			lineErr := newParseError(name, lineNum, fmt.Errorf("%w: expected 'name: choice1,...,choiceN', got %q", ErrMalformedLine, line))
			p.log.Warn("skipping malformed line", zap.String("file", name), zap.Int("line", lineNum))
			skipped = multierr.Append(skipped, lineErr)
			continue
		}

		if n == -1 {
			n = len(choices)
		} else if len(choices) != n {
			return nil, newParseError(name, lineNum, fmt.Errorf("%w: this item should specify %d rankings but specified %d",
				ErrRankCountMismatch, n, len(choices)))
		}

		if _, exists := rankings[vertexName]; exists {
			return nil, newParseError(name, lineNum, fmt.Errorf("%w: item '%s' is listed more than once", ErrInvalidRanking, vertexName))
		}
		names[partition] = append(names[partition], vertexName)
		rankings[vertexName] = choices
	}

	if len(names[0]) == 0 {
		return nil, newParseError(name, 0, fmt.Errorf("%w: no items in partition 1", ErrRankCountMismatch))
	}
	if len(names[1]) != n {
		return nil, newParseError(name, 0, fmt.Errorf("%w: each item in partition 1 provided %d rankings but there are %d items in partition 2",
			ErrRankCountMismatch, n, len(names[1])))
	}

	table, err := da.NewPreferenceTable(names[0], names[1], rankings)
	if err != nil {
		return nil, newParseError(name, 0, err)
	}

	p.log.Debug("parsed preference table", zap.String("file", name), zap.Int("n", n),
		zap.Int("skipped_lines", len(multierr.Errors(skipped))))
	return &ParseResult{Table: table, Skipped: skipped}, nil
}

func splitLine(line string) (string, []string, bool) {
	tokens := strings.Split(line, ":")
	if len(tokens) != 2 {
		return "", nil, false
	}
	vertexName := strings.TrimSpace(tokens[0])
	if vertexName == "" {
		return "", nil, false
	}
	choices := util.TrimFields(tokens[1], ",")
	for _, c := range choices {
		if c == "" {
			return "", nil, false
		}
	}
	return vertexName, choices, true
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
