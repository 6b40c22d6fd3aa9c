package flatfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadLinesLatin1(t *testing.T) {
	// 0xE9 is é in ISO 8859-1 but an invalid byte sequence in UTF-8.
	filename := filepath.Join(t.TempDir(), "records.txt")
	if err := os.WriteFile(filename, []byte("caf\xe9\nplain\n"), 0o666); err != nil {
		t.Fatal(err)
	}

	got, err := ReadLines(filename)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}

	want := []string{"café", "plain"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "c.csv"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o666); err != nil {
			t.Fatal(err)
		}
	}

	got, err := Discover(dir, "*.txt")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverNoMatchesIsError(t *testing.T) {
	_, err := Discover(t.TempDir(), "*.txt")
	if err == nil {
		t.Fatal("Discover succeeded with no matching files")
	}
}
