package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("a1: b1,b2\na2: b1,b2\n\nb1: a2,a1\nb2: a1,a2\n"), 0o644))

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("a1: b1,b2\n\nb1: a1,a2\n"), 0o644))

	testCases := []struct {
		name       string
		files      []string
		wantStatus int
		wantOut    []string
		wantErr    []string
	}{
		{
			name:       "single good file",
			files:      []string{good},
			wantStatus: 0,
			wantOut:    []string{"Everybody was matched with their top 2 preferences.", "a1: matched to b2 (rank 2)"},
		},
		{
			name:       "bad file does not stop the next one",
			files:      []string{bad, filepath.Join(dir, "missing.txt"), good},
			wantStatus: 1,
			wantOut:    []string{"a2: matched to b1 (rank 1)"},
			wantErr:    []string{"File '" + bad + "' will not be processed.", "missing.txt' will not be processed."},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			status := run(tc.files, true, zap.NewNop(), &stdout, &stderr)

			assert.Equal(t, tc.wantStatus, status)
			for _, want := range tc.wantOut {
				assert.Contains(t, stdout.String(), want)
			}
			for _, want := range tc.wantErr {
				assert.Contains(t, stderr.String(), want)
			}
		})
	}
}
