package prefparser

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const validInput = `a1: b1,b2
a2: b2,b1

b1: a1,a2
b2: a2,a1
`

func TestParse(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		wantErr     error
		wantLine    int
		wantN       int
		wantSkipped int
	}{
		{
			name:  "valid",
			input: validInput,
			wantN: 2,
		},
		{
			name:  "whitespace and crlf",
			input: "a1 : b1 , b2\r\na2: b2,b1\r\n\r\nb1: a1,a2\r\nb2:a2, a1",
			wantN: 2,
		},
		{
			name:        "malformed line skipped",
			input:       "a1: b1\nthis line has no colon\n\nb1: a1\n",
			wantN:       1,
			wantSkipped: 1,
		},
		{
			name:        "extra blank lines after partition 2",
			input:       "\na1: b1\n\n\nb1: a1\n\n\n",
			wantN:       1,
			wantSkipped: 0,
		},
		{
			name:     "ranking length mismatch",
			input:    "a1: b1,b2\na2: b2\n\nb1: a1,a2\nb2: a2,a1\n",
			wantErr:  ErrRankCountMismatch,
			wantLine: 2,
		},
		{
			name:     "partition 1 too small for rankings",
			input:    "a1: b1,b2\n\nb1: a1\nb2: a1\n",
			wantErr:  ErrRankCountMismatch,
			wantLine: 2,
		},
		{
			name:    "partition 2 too small",
			input:   "a1: b1,b2\na2: b2,b1\n\nb1: a1,a2\n",
			wantErr: ErrRankCountMismatch,
		},
		{
			name:    "missing partition 2",
			input:   "a1: b1\n",
			wantErr: ErrRankCountMismatch,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrRankCountMismatch,
		},
		{
			name:    "unknown choice",
			input:   "a1: b1,b9\na2: b2,b1\n\nb1: a1,a2\nb2: a2,a1\n",
			wantErr: ErrInvalidRanking,
		},
		{
			name:     "duplicate item",
			input:    "a1: b1,b2\na1: b2,b1\n\nb1: a1,a2\nb2: a2,a1\n",
			wantErr:  ErrInvalidRanking,
			wantLine: 2,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(zap.NewNop())
			res, err := p.Parse(strings.NewReader(tt.input), "test.txt")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				var perr *ParseError
				require.True(t, errors.As(err, &perr))
				assert.Equal(t, "test.txt", perr.File)
				assert.Equal(t, tt.wantLine, perr.Line)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantN, res.Table.Size())
			assert.Len(t, res.SkippedLines(), tt.wantSkipped)
			for _, skipped := range res.SkippedLines() {
				assert.ErrorIs(t, skipped, ErrMalformedLine)
			}
		})
	}
}

func TestParseRankings(t *testing.T) {
	p := NewParser(zap.NewNop())
	res, err := p.Parse(strings.NewReader(validInput), "test.txt")
	require.NoError(t, err)

	table := res.Table
	a2, ok := table.Lookup("a2")
	require.True(t, ok)
	b2, ok := table.Lookup("b2")
	require.True(t, ok)

	first, err := table.ChoiceAt(a2, 1)
	require.NoError(t, err)
	assert.Equal(t, b2, first)

	rank, ok := table.RankOf(b2, a2)
	require.True(t, ok)
	assert.Equal(t, 1, rank)
}

func TestParseFileNotFound(t *testing.T) {
	p := NewParser(zap.NewNop())
	_, err := p.ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, ErrInputNotFound)
}

func TestWriteAndParseFile(t *testing.T) {
	p := NewParser(zap.NewNop())
	res, err := p.Parse(strings.NewReader(validInput), "test.txt")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePreferences(&buf, res.Table))
	assert.Equal(t, "a1: b1,b2\na2: b2,b1\n\nb1: a1,a2\nb2: a2,a1\n", buf.String())

	for _, filename := range []string{"prefs.txt", "prefs.txt.bz2"} {
		t.Run(filename, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), filename)
			require.NoError(t, WriteFile(path, res.Table))

			got, err := p.ParseFile(path)
			require.NoError(t, err)
			assert.Equal(t, res.Table.Size(), got.Table.Size())
			for _, v := range append(res.Table.PartitionA(), res.Table.PartitionB()...) {
				assert.Equal(t, res.Table.GetRankings(v), got.Table.GetRankings(v))
			}
		})
	}
}
