package taxonomy

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw     string
		want    Category
		wantErr bool
	}{
		{"Court Documents", CourtDocuments, false},
		{"  court documents ", CourtDocuments, false},
		{"Internal Notes/Memos", InternalNotes, false},
		{"Misc", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		got, err := ParseCategory(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseCategory(%q) expected error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q) returned error: %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("Court Documents", "Motions"); err != nil {
		t.Fatalf("valid pair rejected: %v", err)
	}
	if err := Validate("Court Documents", "Emails"); err == nil {
		t.Fatal("mismatched pair accepted")
	}
	if err := Validate("Court Documents", ""); err == nil {
		t.Fatal("blank sub-category accepted")
	}
	if err := Validate("", "Motions"); err == nil {
		t.Fatal("blank category accepted")
	}
}

func TestTagsCoverEveryCategory(t *testing.T) {
	tags := Tags()
	want := len(Categories())
	for _, c := range Categories() {
		want += len(SubCategories(c))
	}
	if len(tags) != want {
		t.Fatalf("Tags() returned %d entries, want %d", len(tags), want)
	}
	seen := map[string]bool{}
	for _, tag := range tags {
		if seen[tag] {
			t.Fatalf("duplicate tag %q", tag)
		}
		seen[tag] = true
	}
	// Categories are selectable badges too, not just sub-categories.
	for _, c := range Categories() {
		if !seen[string(c)] {
			t.Fatalf("Tags() missing category %q", c)
		}
	}
}
