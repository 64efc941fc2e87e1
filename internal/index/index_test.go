package index

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/iconpack/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	tmpDir := t.TempDir()
	indexDir := filepath.Join(tmpDir, "index")

	store, err := NewStore(types.IndexConfig{IndexDir: indexDir, MaxResults: 20})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	return store, indexDir
}

func sampleRecords() []*types.Record {
	return []*types.Record{
		{
			Names:  []string{"Arch", "arch"},
			Width:  10,
			Colors: []types.Color{types.Indexed(6), types.Reset()},
			Art:    []string{"${c1}   /\\   ", "${c1}  /  \\  "},
		},
		{
			Names:  []string{"Ubuntu"},
			Width:  12,
			Colors: []types.Color{types.RGB(233, 84, 32)},
			Art:    []string{"${c1} .-/+oo+/-. "},
		},
		{
			Names:  []string{"Void", "void"},
			Width:  8,
			Colors: []types.Color{types.Indexed(2), types.Indexed(8)},
			Art:    []string{"${c1} ______ "},
		},
	}
}

func ingest(t *testing.T, store *Store, records []*types.Record) {
	t.Helper()
	if err := store.Ingest(context.Background(), records); err != nil {
		t.Fatalf("Ingest: %v", err)
	}
}

// --- Ingest ---

func TestIngestAndCount(t *testing.T) {
	store, _ := testStore(t)
	ingest(t, store, sampleRecords())

	n, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
}

func TestIngestReplacesPreviousContents(t *testing.T) {
	store, _ := testStore(t)
	ingest(t, store, sampleRecords())

	// A second ingest with fewer records must fully replace the first.
	ingest(t, store, sampleRecords()[:1])

	n, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1 after rebuild", n)
	}
}

func TestIngestDuplicateRecords(t *testing.T) {
	store, _ := testStore(t)

	// Two source files can yield identical aliases and art; the rebuild
	// must collapse them onto one row instead of aborting.
	recs := sampleRecords()
	dup := *recs[0]
	ingest(t, store, append(recs, &dup))

	n, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3 (duplicate collapsed)", n)
	}
}

func TestIngestEmpty(t *testing.T) {
	store, _ := testStore(t)
	ingest(t, store, nil)

	n, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Errorf("Count = %d, want 0", n)
	}
}

// --- Retrieve ---

func TestRetrieveByName(t *testing.T) {
	store, _ := testStore(t)
	ingest(t, store, sampleRecords())

	results, err := store.Retrieve(context.Background(), QueryOptions{Name: "Ubuntu"})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	r := results[0]
	if r.Name != "Ubuntu" {
		t.Errorf("Name = %q, want %q", r.Name, "Ubuntu")
	}
	if r.Width != 12 {
		t.Errorf("Width = %d, want 12", r.Width)
	}
	if len(r.Colors) != 1 || r.Colors[0].Kind != types.ColorRGB || r.Colors[0].R != 233 {
		t.Errorf("Colors = %+v, want one RGB entry with R=233", r.Colors)
	}
}

func TestRetrieveFullText(t *testing.T) {
	store, _ := testStore(t)
	ingest(t, store, sampleRecords())

	results, err := store.Retrieve(context.Background(), QueryOptions{Query: "arch"})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Name != "Arch" {
		t.Errorf("Name = %q, want %q", results[0].Name, "Arch")
	}
	if len(results[0].Aliases) != 2 {
		t.Errorf("Aliases = %v, want 2 entries", results[0].Aliases)
	}
}

func TestRetrieveMaxWidth(t *testing.T) {
	store, _ := testStore(t)
	ingest(t, store, sampleRecords())

	results, err := store.Retrieve(context.Background(), QueryOptions{MaxWidth: 10})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (widths 10 and 8)", len(results))
	}
	for _, r := range results {
		if r.Width > 10 {
			t.Errorf("result %q has width %d > 10", r.Name, r.Width)
		}
	}
}

func TestRetrieveNoMatches(t *testing.T) {
	store, _ := testStore(t)
	ingest(t, store, sampleRecords())

	results, err := store.Retrieve(context.Background(), QueryOptions{Name: "Slackware"})
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestQueryOptionsIsEmpty(t *testing.T) {
	if !(QueryOptions{}).IsEmpty() {
		t.Error("zero QueryOptions should be empty")
	}
	if (QueryOptions{Name: "x"}).IsEmpty() {
		t.Error("options with a name filter should not be empty")
	}
	if (QueryOptions{Query: "x"}).IsEmpty() {
		t.Error("options with a query should not be empty")
	}
	if (QueryOptions{MaxWidth: 40}).IsEmpty() {
		t.Error("options with a width filter should not be empty")
	}
}

// --- stableID ---

func TestStableID(t *testing.T) {
	recs := sampleRecords()

	id1 := stableID(recs[0])
	id2 := stableID(recs[0])
	id3 := stableID(recs[1])

	if id1 != id2 {
		t.Errorf("same record produced different IDs: %s vs %s", id1, id2)
	}
	if id1 == id3 {
		t.Errorf("different records produced the same ID: %s", id1)
	}
	if len(id1) != 12 {
		t.Errorf("ID length = %d, want 12", len(id1))
	}
}

// --- Export ---

func TestExportYAML(t *testing.T) {
	store, indexDir := testStore(t)
	ingest(t, store, sampleRecords())

	if err := store.ExportYAML(context.Background(), QueryOptions{}); err != nil {
		t.Fatalf("ExportYAML: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(indexDir, "export.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	var results []QueryResult
	if err := yaml.Unmarshal(data, &results); err != nil {
		t.Fatalf("unmarshaling export: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("export has %d icons, want 3", len(results))
	}
}

func TestExportJSONFiltered(t *testing.T) {
	store, indexDir := testStore(t)
	ingest(t, store, sampleRecords())

	if err := store.ExportJSON(context.Background(), QueryOptions{Name: "Void"}); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(indexDir, "export.json"))
	if err != nil {
		t.Fatal(err)
	}
	var results []QueryResult
	if err := json.Unmarshal(data, &results); err != nil {
		t.Fatalf("unmarshaling export: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Void" {
		t.Errorf("filtered export = %+v, want only Void", results)
	}
}
