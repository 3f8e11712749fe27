package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/carbocation/interactomestats/graphsource"
	"github.com/carbocation/interactomestats/proteome"
	"github.com/carbocation/interactomestats/timeseries"
)

type staticSource map[string][]graphsource.Record

func (s staticSource) RunQuery(ctx context.Context, q graphsource.QuerySpec) ([]graphsource.Record, error) {
	records, exists := s[q.Name]
	if !exists {
		return nil, fmt.Errorf("no results for %s", q.Name)
	}
	return records, nil
}

type fakeFetcher map[string][]string

func (f fakeFetcher) FetchReferenceAccessions(ctx context.Context, catalogID string) (map[string]struct{}, error) {
	accs, exists := f[catalogID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", proteome.ErrLookupFailure, catalogID)
	}

	out := make(map[string]struct{}, len(accs))
	for _, acc := range accs {
		out[acc] = struct{}{}
	}
	return out, nil
}

func rec(values ...interface{}) graphsource.Record {
	return graphsource.Record{Values: values}
}

func day(y int, m int, d int) civil.Date {
	return civil.Date{Year: y, Month: time.Month(m), Day: d}
}

func TestInteractions(t *testing.T) {
	src := staticSource{
		QueryNAry:       {rec(day(2003, 8, 2), int64(2))},
		QueryBinary:     {rec(day(2003, 8, 2), int64(3), int64(1)), rec(day(2003, 8, 4), int64(1), int64(1))},
		QueryTrueBinary: {rec(day(2003, 8, 4), int64(1))},
	}

	rows, err := Interactions(context.Background(), src, day(2003, 8, 5))
	if err != nil {
		t.Fatal(err)
	}

	expected := []InteractionRow{
		{Date: day(2003, 8, 2), NAry: 2, SpokeExpanded: 3, AllInteractions: 1, BinaryExperiment: 0},
		{Date: day(2003, 8, 3), NAry: 2, SpokeExpanded: 3, AllInteractions: 1, BinaryExperiment: 0},
		{Date: day(2003, 8, 4), NAry: 2, SpokeExpanded: 4, AllInteractions: 2, BinaryExperiment: 1},
		{Date: day(2003, 8, 5), NAry: 2, SpokeExpanded: 4, AllInteractions: 2, BinaryExperiment: 1},
	}
	if len(rows) != len(expected) {
		t.Fatalf("Got %d rows, expected %d: %+v", len(rows), len(expected), rows)
	}
	for i := range expected {
		if rows[i] != expected[i] {
			t.Fatalf("Row %d: got %+v, expected %+v", i, rows[i], expected[i])
		}
	}
}

func TestInteractionsBeforeStart(t *testing.T) {
	src := staticSource{
		QueryNAry:       {rec(day(2003, 7, 1), int64(2))},
		QueryBinary:     {},
		QueryTrueBinary: {},
	}

	if _, err := Interactions(context.Background(), src, day(2003, 8, 5)); !errors.Is(err, timeseries.ErrOutOfRange) {
		t.Fatalf("Expected ErrOutOfRange, got %v", err)
	}
}

func TestPublicationsExperiments(t *testing.T) {
	src := staticSource{
		QueryPublicationExperiment: {
			rec(day(2003, 8, 2), int64(1), int64(2)),
			rec(day(2003, 8, 2), int64(1), int64(1)),
			rec(day(2004, 1, 1), int64(2), int64(3)),
		},
	}

	rows, err := PublicationsExperiments(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}

	expected := []PublicationRow{
		{Date: day(2003, 8, 2), Publications: 2, Experiments: 3},
		{Date: day(2004, 1, 1), Publications: 4, Experiments: 6},
	}
	if len(rows) != len(expected) {
		t.Fatalf("Got %d rows, expected %d: %+v", len(rows), len(expected), rows)
	}
	for i := range expected {
		if rows[i] != expected[i] {
			t.Fatalf("Row %d: got %+v, expected %+v", i, rows[i], expected[i])
		}
	}
}

func TestCurationDistribution(t *testing.T) {
	src := staticSource{
		QueryCurationRequest:  {rec(day(2003, 1, 2), int64(1))},
		QueryAuthorSubmission: {rec(day(2003, 1, 3), int64(2))},
		QueryAllCurations:     {rec(day(2003, 1, 2), int64(5)), rec(day(2003, 1, 3), int64(2))},
	}

	rows, err := CurationDistribution(context.Background(), src, day(2003, 1, 4))
	if err != nil {
		t.Fatal(err)
	}

	expected := []CurationRow{
		{Date: day(2003, 1, 2), Requested: 1, Submitted: 0, CuratorChoice: 4},
		{Date: day(2003, 1, 3), Requested: 1, Submitted: 2, CuratorChoice: 4},
		{Date: day(2003, 1, 4), Requested: 1, Submitted: 2, CuratorChoice: 4},
	}
	if len(rows) != len(expected) {
		t.Fatalf("Got %d rows, expected %d: %+v", len(rows), len(expected), rows)
	}
	for i := range expected {
		if rows[i] != expected[i] {
			t.Fatalf("Row %d: got %+v, expected %+v", i, rows[i], expected[i])
		}
	}
}

func TestCurationDistributionViolation(t *testing.T) {
	src := staticSource{
		QueryCurationRequest:  {rec(day(2003, 1, 2), int64(3))},
		QueryAuthorSubmission: {},
		QueryAllCurations:     {rec(day(2003, 1, 2), int64(1))},
	}

	if _, err := CurationDistribution(context.Background(), src, day(2003, 1, 4)); !errors.Is(err, timeseries.ErrInvariantViolation) {
		t.Fatalf("Expected ErrInvariantViolation, got %v", err)
	}
}

func TestMethodDistribution(t *testing.T) {
	src := staticSource{
		QueryMethodDistribution: {
			rec("MI:0018", "TWO HYBRID", int64(10)),
			rec("MI:0096", "pull down", int64(4)),
		},
	}

	rows, err := MethodDistribution(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}

	expected := []MethodRow{
		{MethodID: "MI:0018", Label: "Two hybrid", Amount: 10},
		{MethodID: "MI:0096", Label: "Pull down", Amount: 4},
	}
	for i := range expected {
		if rows[i] != expected[i] {
			t.Fatalf("Row %d: got %+v, expected %+v", i, rows[i], expected[i])
		}
	}
}

func TestCapitalize(t *testing.T) {
	for input, expected := range map[string]string{
		"":                 "",
		"x":                "X",
		"anti tag COIP":    "Anti tag coip",
		"éLECTRON display": "Électron display",
	} {
		if got := Capitalize(input); got != expected {
			t.Fatalf("Capitalize(%q): got %q, expected %q", input, got, expected)
		}
	}
}

func TestSpeciesCoverage(t *testing.T) {
	src := staticSource{
		QuerySpeciesCover: {
			rec(int64(2), []interface{}{"P0DTC2", "P0DTD1-1"}, "SARS-CoV-2"),
			rec(int64(1), []string{"P1"}, "Homo sapiens"),
		},
	}
	fetcher := fakeFetcher{
		"UP000005640": {"P1", "P2"},
		"UP000464024": {"P0DTC2", "P0DTD1"},
	}

	rows, err := SpeciesCoverage(context.Background(), src, proteome.ReferenceProteomes, fetcher)
	if err != nil {
		t.Fatal(err)
	}

	expected := []proteome.Coverage{
		{ShortName: "SARS-CoV-2", Reference: 2, Percentage: 100, Proteins: 2},
		{ShortName: "H. sapiens", Reference: 2, Percentage: 50, Proteins: 1},
	}
	if len(rows) != len(expected) {
		t.Fatalf("Got %d rows, expected %d: %+v", len(rows), len(expected), rows)
	}
	for i := range expected {
		if rows[i] != expected[i] {
			t.Fatalf("Row %d: got %+v, expected %+v", i, rows[i], expected[i])
		}
	}
}

func TestRelabel(t *testing.T) {
	rows, err := Relabel([]graphsource.Record{
		rec("Interactions", int64(10)),
		rec("Interaction Detection Methods", "3"),
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 2 || rows[0] != (SummaryRow{"Interactions", 10}) || rows[1] != (SummaryRow{"Interaction Detection Methods", 3}) {
		t.Fatalf("Unexpected rows %+v", rows)
	}

	if _, err := Relabel([]graphsource.Record{rec("Interactions")}); !errors.Is(err, graphsource.ErrFieldIndex) {
		t.Fatalf("Expected ErrFieldIndex, got %v", err)
	}
}

func TestQueries(t *testing.T) {
	queries, err := Queries()
	if err != nil {
		t.Fatal(err)
	}
	if len(queries) != len(queryOrder) {
		t.Fatalf("Got %d queries, expected %d", len(queries), len(queryOrder))
	}
	for _, q := range queries {
		if q.Text == "" {
			t.Fatalf("Query %s is empty", q.Name)
		}
	}

	species, err := Query(QuerySpeciesCover)
	if err != nil {
		t.Fatal(err)
	}
	if species.Params["pandemicTaxID"] != int64(PandemicTaxID) || !strings.Contains(species.Text, "$pandemicTaxID") {
		t.Fatalf("Species query is not parameterized: %+v", species)
	}

	if _, err := Query("nonexistent"); err == nil {
		t.Fatal("Expected an error for an unknown query")
	}
}

// writeExports lays out one replayable export per query.
func writeExports(t *testing.T, dir string) {
	exports := map[string]string{
		QueryNAry:                  "date\tamount\n2003-08-02\t2\n",
		QueryBinary:                "date\tspoke\tall\n2003-08-02\t3\t1\n2003-08-04\t1\t1\n",
		QueryTrueBinary:            "date\tamount\n2003-08-04\t1\n",
		QueryPublicationExperiment: "date\tpublications\texperiments\n2003-08-02\t1\t2\n2004-01-01\t2\t3\n",
		QueryCurationRequest:       "date\tamount\n2003-01-02\t1\n",
		QueryAuthorSubmission:      "",
		QueryAllCurations:          "date\tamount\n2003-01-02\t5\n",
		QueryMethodDistribution:    "method\tname\tevidence\nMI:0018\ttwo hybrid\t10\n",
		QuerySpeciesCover:          "proteins\tupGene\tname\n2\tP0DTC2|P0DTD1-1\tSARS-CoV-2\n",
		QuerySummaryTable:          "label\tcount\nInteractions\t10\n",
	}

	for name, body := range exports {
		if err := os.WriteFile(filepath.Join(dir, name+".tsv"), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestBuildAndEmit(t *testing.T) {
	ctx := context.Background()
	exports := t.TempDir()
	out := t.TempDir()
	writeExports(t, exports)

	artifacts, err := Build(ctx, Config{
		Source:  graphsource.TSVReplay{Dir: exports},
		Fetcher: fakeFetcher{"UP000464024": {"P0DTC2", "P0DTD1", "P0DTC9", "P0DTC3"}},
		Catalog: proteome.ReferenceProteomes,
		Today:   day(2003, 8, 5),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := artifacts.Emit(ctx, FileSink{Root: out}); err != nil {
		t.Fatal(err)
	}

	expected := map[string][]string{
		InteractionsFile: {
			"Date,N-ary_interactions_reports,All_interactions_after_spoke_expansion,All_interaction_reports,Binary_interaction_reports",
			"2003-08-02,2,3,1,0",
			"2003-08-03,2,3,1,0",
			"2003-08-04,2,4,2,1",
			"2003-08-05,2,4,2,1",
		},
		PublicationsFile: {
			"Date,Publications,Experiments",
			"2003-08-02,1,2",
			"2004-01-01,3,5",
		},
		MethodDistributionFile: {
			"Method_ID,label,amount",
			"MI:0018,Two hybrid,10",
		},
		SpeciesCoverFile: {
			"Organism,Reference,Percentage,Proteins",
			"SARS-CoV-2,4,50.00,2",
		},
		SummaryTableFile: {
			"Feature,Count",
			"Interactions,10",
		},
	}

	for name, lines := range expected {
		b, err := os.ReadFile(filepath.Join(out, name))
		if err != nil {
			t.Fatal(err)
		}
		got := strings.Split(strings.TrimSpace(string(b)), "\n")
		if len(got) != len(lines) {
			t.Fatalf("%s: got %d lines, expected %d:\n%s", name, len(got), len(lines), b)
		}
		for i := range lines {
			if got[i] != lines[i] {
				t.Fatalf("%s line %d: got %q, expected %q", name, i, got[i], lines[i])
			}
		}
	}

	b, err := os.ReadFile(filepath.Join(out, CurationDistributionFile))
	if err != nil {
		t.Fatal(err)
	}
	if header := strings.SplitN(string(b), "\n", 2)[0]; header != "Date,Curation_requested_by_author,Author_submitted,Curator_choice/Funding_priority" {
		t.Fatalf("Unexpected curation header %q", header)
	}
	if !strings.Contains(string(b), "2003-01-02,1,0,4\n") {
		t.Fatalf("Missing first curation row:\n%s", b)
	}
}

func TestBuildStopsOnFailure(t *testing.T) {
	_, err := Build(context.Background(), Config{
		Source:  staticSource{},
		Fetcher: fakeFetcher{},
		Catalog: proteome.ReferenceProteomes,
		Today:   day(2003, 8, 5),
	})
	if err == nil {
		t.Fatal("Expected an error when a query has no results")
	}
}

func TestFileSinkRequiresStorageForGS(t *testing.T) {
	err := FileSink{Root: "gs://bucket/prefix"}.WriteArtifact(context.Background(), SummaryTableFile, &[]SummaryRow{})
	if err == nil {
		t.Fatal("Expected an error without a storage client")
	}
}
