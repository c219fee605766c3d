package prefparser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	da "github.com/lintang-b-s/rankmatch/pkg/datastructure"
)

// WritePreferences writes table in the format read by Parser.Parse.
func WritePreferences(w io.Writer, table *da.PreferenceTable) error {
	bw := bufio.NewWriter(w)

	writePartition := func(vertices []da.Index) error {
		for _, v := range vertices {
			rankings := table.GetRankings(v)
			choices := make([]string, len(rankings))
			for i, c := range rankings {
				choices[i] = table.GetName(c)
			}
			if _, err := fmt.Fprintf(bw, "%s: %s\n", table.GetName(v), strings.Join(choices, ",")); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writePartition(table.PartitionA()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "\n"); err != nil {
		return err
	}
	if err := writePartition(table.PartitionB()); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteFile writes table to filename, bzip2 compressed when filename ends in .bz2.
func WriteFile(filename string, table *da.PreferenceTable) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if !strings.HasSuffix(filename, BZIP2_EXTENSION) {
		return WritePreferences(f, table)
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if err := WritePreferences(bz, table); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}
