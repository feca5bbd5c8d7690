package tool

import (
	"path/filepath"
	"reflect"
	"testing"
)

func sampleTools() []Tool {
	return []Tool{
		{
			Number: 2, Name: `1/4" Flat Endmill 2-flute`, Kind: FlatEndmill,
			Diameter: 0.25, FluteCount: 2, FluteLength: 0.75, OverallLength: 2.5,
			DefaultRPM: 5000, DefaultFeedXY: 15, DefaultFeedZ: 4,
		},
		{
			Number: 1, Name: `1/2" Flat Endmill 2-flute`, Kind: FlatEndmill,
			Diameter: 0.5, FluteCount: 2, FluteLength: 1, OverallLength: 3,
			DefaultRPM: 3000, DefaultFeedXY: 20, DefaultFeedZ: 5,
		},
		{
			Number: 3, Name: `1/4" Ball Endmill`, Kind: BallEndmill,
			Diameter: 0.25, FluteCount: 2, FluteLength: 0.75, OverallLength: 2.5,
			DefaultRPM: 5000, DefaultFeedXY: 12, DefaultFeedZ: 3,
		},
	}
}

func TestAddGetRemove(t *testing.T) {
	lib := NewLibrary()
	for _, tl := range sampleTools() {
		lib.Add(tl)
	}

	got, ok := lib.Get(1)
	if !ok || got.Diameter != 0.5 {
		t.Errorf("Get(1) = %+v, %v", got, ok)
	}

	lib.Remove(1)
	if _, ok := lib.Get(1); ok {
		t.Error("tool 1 still present after Remove")
	}
}

func TestListSortedByNumber(t *testing.T) {
	lib := NewLibrary()
	for _, tl := range sampleTools() {
		lib.Add(tl)
	}
	list := lib.List()
	if len(list) != 3 {
		t.Fatalf("List() returned %d tools", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].Number <= list[i-1].Number {
			t.Errorf("List() not sorted: %d before %d", list[i-1].Number, list[i].Number)
		}
	}
}

func TestAddReplacesSameSlot(t *testing.T) {
	lib := NewLibrary()
	lib.Add(Tool{Number: 1, Name: "old", Kind: FlatEndmill, Diameter: 0.5})
	lib.Add(Tool{Number: 1, Name: "new", Kind: Drill, Diameter: 0.125})
	got, _ := lib.Get(1)
	if got.Name != "new" || got.Kind != Drill {
		t.Errorf("slot 1 not replaced: %+v", got)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	lib := NewLibrary()
	for _, tl := range sampleTools() {
		lib.Add(tl)
	}

	parsed, err := ParseLibrary(lib.Format())
	if err != nil {
		t.Fatalf("ParseLibrary: %v", err)
	}
	if !reflect.DeepEqual(lib.List(), parsed.List()) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", parsed.List(), lib.List())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	lib := NewLibrary()
	for _, tl := range sampleTools() {
		lib.Add(tl)
	}

	path := filepath.Join(t.TempDir(), "tools.txt")
	if err := lib.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := LoadLibrary(path)
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	if !reflect.DeepEqual(lib.List(), loaded.List()) {
		t.Error("save/load round trip mismatch")
	}
}

func TestParseMalformedLine(t *testing.T) {
	if _, err := ParseLibrary("number 1\n"); err == nil {
		t.Error("expected error for line without colon")
	}
}

func TestNewRejectsNonPositiveDiameter(t *testing.T) {
	if _, err := New(1, "bad", FlatEndmill, 0); err == nil {
		t.Error("expected error for zero diameter")
	}
	if _, err := New(1, "bad", FlatEndmill, -0.5); err == nil {
		t.Error("expected error for negative diameter")
	}
}

func TestRadius(t *testing.T) {
	tl := Tool{Diameter: 0.5}
	if tl.Radius() != 0.25 {
		t.Errorf("Radius() = %v", tl.Radius())
	}
}

func TestParseTypeRoundTrip(t *testing.T) {
	for _, kind := range []Type{FlatEndmill, BallEndmill, Drill, FaceMill} {
		parsed, err := ParseType(kind.String())
		if err != nil {
			t.Errorf("ParseType(%q): %v", kind.String(), err)
		}
		if parsed != kind {
			t.Errorf("ParseType(%q) = %v", kind.String(), parsed)
		}
	}
	if _, err := ParseType("laser"); err == nil {
		t.Error("expected error for unknown type")
	}
}
