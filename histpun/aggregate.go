package histpun

import (
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Fixed literal values for this dataset instance.
const (
	Country      = "United States"
	State        = "New York"
	Statistic    = "prisoners"
	SourcePrefix = "NYInmateRecords"
)

// A Row is one line of the statistical table: a count of prisoners for one
// year, qualified by zero or more breakdown dimensions. Complete names the
// dimension combination this row belongs to when that combination
// exhaustively partitions the year's population; it is empty for partial
// breakdowns.
type Row struct {
	Country     string
	Year        int
	Statistic   string
	Value       int
	Source      string
	State       string
	Race        string
	Gender      string
	Age         string
	Crime       string
	Institution string
	County      string
	Complete    string
}

// Aggregate partitions records by reception year and, within each year,
// counts them along the fixed sequence of breakdowns. Years are emitted in
// ascending order; within a breakdown, categories in lexicographic order.
// Categories with an empty value are suppressed rather than emitted as an
// explicit empty category.
func Aggregate(recs []Record) []Row {
	byYear := make(map[int][]Record)
	for _, rec := range recs {
		byYear[rec.Year()] = append(byYear[rec.Year()], rec)
	}

	years := maps.Keys(byYear)
	slices.Sort(years)

	var rows []Row
	for _, year := range years {
		rows = append(rows, aggregateYear(year, byYear[year])...)
	}
	return rows
}

func aggregateYear(year int, recs []Record) []Row {
	base := func() Row {
		return Row{
			Country:   Country,
			Year:      year,
			Statistic: Statistic,
			Source:    SourcePrefix + strconv.Itoa(year),
			State:     State,
		}
	}

	var rows []Row

	// Unqualified total. Every record with a reception year counts here,
	// whatever else it is missing.
	total := base()
	total.Value = len(recs)
	rows = append(rows, total)

	// Race alone exhaustively partitions the year: every record carries a
	// race label, if only "Unknown".
	for _, g := range countBy(recs, func(r Record) string { return r.Race }) {
		row := base()
		row.Race = lower(g.key)
		row.Value = g.n
		row.Complete = "race"
		rows = append(rows, row)
	}

	for _, g := range countBy(recs, func(r Record) string { return r.Gender }) {
		row := base()
		row.Gender = lower(g.key)
		row.Value = g.n
		row.Complete = "gender"
		rows = append(rows, row)
	}

	// The table schema has no religion column, so these rows carry only
	// the count and the completeness tag. Preserved as-is from the target
	// table definition.
	for _, g := range countBy(recs, func(r Record) string { return r.Religion }) {
		row := base()
		row.Value = g.n
		row.Complete = "religion"
		rows = append(rows, row)
	}

	// Age completeness is observed, not assumed: the tag is only set when
	// both juveniles and adults actually appear in the year.
	ageGroups := countBy(recs, func(r Record) string { return r.AgeCategory() })
	ageComplete := ""
	if hasKey(ageGroups, "juvenile") && hasKey(ageGroups, "adult") {
		ageComplete = "age"
	}
	for _, g := range ageGroups {
		row := base()
		row.Age = g.key
		row.Value = g.n
		row.Complete = ageComplete
		rows = append(rows, row)
	}

	for _, g := range countBy(recs, func(r Record) string { return r.CrimeCategory() }) {
		row := base()
		row.Crime = g.key
		row.Value = g.n
		rows = append(rows, row)
	}

	for _, g := range countBy(recs, func(r Record) string { return r.Institution }) {
		row := base()
		row.Institution = lower(g.key)
		row.Value = g.n
		rows = append(rows, row)
	}

	// Race crossed with gender is always a complete partition when it is
	// produced at all.
	for _, g := range countByPair(recs, func(r Record) (string, string) { return r.Race, r.Gender }) {
		row := base()
		row.Race = lower(g.key1)
		row.Gender = lower(g.key2)
		row.Value = g.n
		row.Complete = "race,gender"
		rows = append(rows, row)
	}

	// Institution by county is never complete: records committed from
	// outside the mapped counties fall out of it.
	for _, g := range countByPair(recs, func(r Record) (string, string) { return r.Institution, r.County }) {
		row := base()
		row.Institution = lower(g.key1)
		row.County = lower(g.key2)
		row.Value = g.n
		rows = append(rows, row)
	}

	return rows
}

type group struct {
	key string
	n   int
}

// countBy counts records per key, dropping the empty key, sorted by key.
func countBy(recs []Record, key func(Record) string) []group {
	counts := make(map[string]int)
	for _, rec := range recs {
		k := key(rec)
		if k == "" {
			continue
		}
		counts[k]++
	}

	keys := maps.Keys(counts)
	slices.Sort(keys)

	groups := make([]group, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, group{key: k, n: counts[k]})
	}
	return groups
}

type pairGroup struct {
	key1 string
	key2 string
	n    int
}

// countByPair counts records per key pair, dropping pairs where either
// part is empty, sorted by the pair.
func countByPair(recs []Record, key func(Record) (string, string)) []pairGroup {
	type pair struct{ a, b string }
	counts := make(map[pair]int)
	for _, rec := range recs {
		a, b := key(rec)
		if a == "" || b == "" {
			continue
		}
		counts[pair{a, b}]++
	}

	keys := maps.Keys(counts)
	slices.SortFunc(keys, func(x, y pair) bool {
		if x.a != y.a {
			return x.a < y.a
		}
		return x.b < y.b
	})

	groups := make([]pairGroup, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, pairGroup{key1: k.a, key2: k.b, n: counts[k]})
	}
	return groups
}

func hasKey(groups []group, key string) bool {
	for _, g := range groups {
		if g.key == key {
			return true
		}
	}
	return false
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
