package flatfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/encoding/charmap"
)

// ReadLines reads every line of a legacy flat file. The transcriptions are
// single-byte Latin-1, so the file is decoded through ISO 8859-1 rather
// than assumed to be UTF-8.
func ReadLines(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open flat file: %w", err)
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(charmap.ISO8859_1.NewDecoder().Reader(f))
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read flat file: %w", err)
	}

	return lines, nil
}

// Discover returns the files in dir matching pattern, sorted by name for
// reproducible processing order. No matching files is an error: a run
// with nothing to read should fail before producing any output.
func Discover(dir string, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("match input files: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files matching %q in %q", pattern, dir)
	}
	sort.Strings(matches)
	return matches, nil
}
