package people

import (
	"testing"
)

func TestFindByName(t *testing.T) {
	records := []Record{
		{Name: "Luke Skywalker", Height: "172", Mass: "77", BirthYear: "19BBY"},
		{Name: "C-3PO", Height: "167", Mass: "75", BirthYear: "112BBY"},
		{Name: "Luke Skywalker", Height: "999", Mass: "1", BirthYear: "0ABY"},
	}

	tests := []struct {
		name      string
		lookup    string
		wantFound bool
		wantH     string
	}{
		{name: "first match wins on duplicates", lookup: "Luke Skywalker", wantFound: true, wantH: "172"},
		{name: "unique name", lookup: "C-3PO", wantFound: true, wantH: "167"},
		{name: "no match", lookup: "Jar Jar Binks", wantFound: false},
		{name: "match is case sensitive", lookup: "luke skywalker", wantFound: false},
		{name: "empty name", lookup: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindByName(records, tt.lookup)
			if found != tt.wantFound {
				t.Fatalf("Expected found=%v, got %v", tt.wantFound, found)
			}
			if found && got.Height != tt.wantH {
				t.Errorf("Expected height %q, got %q", tt.wantH, got.Height)
			}
			if !found && got != (Record{}) {
				t.Errorf("Expected zero record on miss, got %+v", got)
			}
		})
	}
}

func TestFindByNameEmptyCollection(t *testing.T) {
	if _, found := FindByName(nil, "Luke Skywalker"); found {
		t.Error("Expected no match in nil collection")
	}
}

func TestFieldsPassThroughValues(t *testing.T) {
	r := Record{Name: "Luke Skywalker", Height: "172", Mass: "77", BirthYear: "19BBY"}

	fields := r.Fields()
	if len(fields) != 3 {
		t.Fatalf("Expected 3 fields, got %d", len(fields))
	}

	want := []string{"172 cm", "77 kg", "19BBY"}
	for i, f := range fields {
		if f.Display() != want[i] {
			t.Errorf("Field %s: expected %q, got %q", f.Label, want[i], f.Display())
		}
	}

	// values such as "unknown" or "1,358" are never reinterpreted
	odd := Record{Height: "unknown", Mass: "1,358"}
	if got := odd.Fields()[1].Value; got != "1,358" {
		t.Errorf("Expected mass to pass through untouched, got %q", got)
	}
}

func TestListItemContract(t *testing.T) {
	r := Record{Name: "Leia Organa", BirthYear: "19BBY"}
	if r.Title() != "Leia Organa" {
		t.Errorf("Expected title to be the name, got %q", r.Title())
	}
	if r.FilterValue() != "Leia Organa" {
		t.Errorf("Expected filter value to be the name, got %q", r.FilterValue())
	}
	if r.Description() != "born 19BBY" {
		t.Errorf("Unexpected description %q", r.Description())
	}
	if (Record{Name: "x"}).Description() != "" {
		t.Error("Expected empty description without birth year")
	}
}

func TestNames(t *testing.T) {
	names := Names([]Record{{Name: "b"}, {Name: "a"}, {Name: "c"}})
	want := []string{"b", "a", "c"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Expected %q at %d, got %q", want[i], i, names[i])
		}
	}
}
