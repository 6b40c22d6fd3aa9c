package codebook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/exp/slices"

	"github.com/iand/punster/logging"
)

// A Set holds the eight code books that are maintained outside the
// instrument documentation, one JSON file per book. A Set is read once at
// startup and never modified.
type Set struct {
	Institution Codebook
	County      Codebook
	Crime       Codebook
	Country     Codebook
	Psych       Codebook
	Religion    Codebook
	Sex         Codebook
	ReturnType  Codebook
}

// LoadSet reads every code book from dir. Any missing or malformed file is
// fatal: a run with a partial set of books would silently decode whole
// columns to Unknown.
func LoadSet(dir string) (*Set, error) {
	s := &Set{}
	books := []struct {
		name string
		dst  *Codebook
	}{
		{"institution_map.json", &s.Institution},
		{"county_map.json", &s.County},
		{"crime_map.json", &s.Crime},
		{"country_map.json", &s.Country},
		{"psych_map.json", &s.Psych},
		{"religion_map.json", &s.Religion},
		{"sex_map.json", &s.Sex},
		{"return_type_map.json", &s.ReturnType},
	}

	for _, b := range books {
		cb, err := LoadFile(filepath.Join(dir, b.name))
		if err != nil {
			return nil, fmt.Errorf("load code book %s: %w", b.name, err)
		}
		*b.dst = cb
	}

	return s, nil
}

// LoadFile reads one code book from a JSON object of code to label.
func LoadFile(filename string) (Codebook, error) {
	logging.Debug("reading code book", "filename", filename)
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	var cb Codebook
	d := json.NewDecoder(f)
	if err := d.Decode(&cb); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	warnNearDuplicates(filepath.Base(filename), cb)

	return cb, nil
}

// warnNearDuplicates flags pairs of labels in a book that are almost the
// same string. The external books were hand-transcribed and occasionally
// carry two spellings of one institution or county under different codes,
// which would split that category's counts.
func warnNearDuplicates(name string, cb Codebook) {
	labels := make([]string, 0, len(cb))
	for _, label := range cb {
		labels = append(labels, label)
	}
	slices.Sort(labels)

	oc := metrics.NewOverlapCoefficient()
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			if labels[i] == labels[j] {
				continue
			}
			similarity := strutil.Similarity(labels[i], labels[j], oc)
			if similarity >= 0.9 {
				logging.Warn("near-duplicate labels in code book", "book", name, "label1", labels[i], "label2", labels[j])
			}
		}
	}
}
