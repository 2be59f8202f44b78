package diag_test

import (
	"testing"

	"texlog/internal/diag"
)

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(2)
	for i := 0; i < 3; i++ {
		bag.Add(diag.Diagnostic{Code: diag.LogUndefinedCommand})
	}
	if bag.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", bag.Len())
	}
	if bag.Add(diag.Diagnostic{}) {
		t.Error("Add should report the drop when the bag is full")
	}

	unlimited := diag.NewBag(0)
	for i := 0; i < 500; i++ {
		if !unlimited.Add(diag.Diagnostic{}) {
			t.Fatal("unlimited bag should never drop")
		}
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	bag := diag.NewBag(0)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("empty bag should have neither errors nor warnings")
	}
	bag.Add(diag.Diagnostic{Severity: diag.SevWarning})
	if bag.HasErrors() {
		t.Error("warning-only bag should not report errors")
	}
	if !bag.HasWarnings() {
		t.Error("bag should report warnings")
	}
	bag.Add(diag.Diagnostic{Severity: diag.SevError})
	if !bag.HasErrors() {
		t.Error("bag should report errors")
	}
}

func TestBagSort(t *testing.T) {
	bag := diag.NewBag(0)
	bag.Add(diag.Diagnostic{File: "b.tex", Loc: diag.AtLine(3)})
	bag.Add(diag.Diagnostic{File: "a.tex", Loc: diag.AtEnd()})
	bag.Add(diag.Diagnostic{File: "a.tex", Loc: diag.AtLine(7)})
	bag.Add(diag.Diagnostic{File: "a.tex", Loc: diag.NoLocation()})
	bag.Sort()

	items := bag.Items()
	if items[0].File != "a.tex" || items[0].Loc != diag.NoLocation() {
		t.Errorf("item 0 = %v, want a.tex without location first", items[0])
	}
	if items[1].Loc != diag.AtLine(7) {
		t.Errorf("item 1 = %v, want a.tex line 7", items[1])
	}
	if items[2].Loc != diag.AtEnd() {
		t.Errorf("item 2 = %v, want a.tex at end", items[2])
	}
	if items[3].File != "b.tex" {
		t.Errorf("item 3 = %v, want b.tex last", items[3])
	}
}

func TestBagDedup(t *testing.T) {
	d := diag.Diagnostic{
		Code:    diag.LogUnderfullBox,
		File:    "a.tex",
		Loc:     diag.AtLine(5),
		Message: "line cannot be stretched enough (badness 10000, very bad)",
	}
	bag := diag.NewBag(0)
	bag.Add(d)
	bag.Add(d)
	other := d
	other.Loc = diag.AtLine(6)
	bag.Add(other)
	bag.Dedup()

	if bag.Len() != 2 {
		t.Fatalf("Len() after Dedup = %d, want 2", bag.Len())
	}
}

func TestBagMerge(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(diag.Diagnostic{Code: diag.LogMissingPackage})
	b := diag.NewBag(1)
	b.Add(diag.Diagnostic{Code: diag.LogInvalidOption})
	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("Len() after Merge = %d, want 2", a.Len())
	}
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		loc  diag.Location
		want string
	}{
		{diag.AtLine(12), "line 12"},
		{diag.AtEnd(), "at the end"},
		{diag.NoLocation(), ""},
	}
	for _, tt := range tests {
		if got := tt.loc.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCodeID(t *testing.T) {
	if got := diag.LogUndefinedCommand.ID(); got != "LOG1001" {
		t.Errorf("ID() = %q, want LOG1001", got)
	}
	if got := diag.IOCannotRead.ID(); got != "IO4001" {
		t.Errorf("ID() = %q, want IO4001", got)
	}
	if got := diag.UnknownCode.ID(); got != "E0000" {
		t.Errorf("ID() = %q, want E0000", got)
	}
}
