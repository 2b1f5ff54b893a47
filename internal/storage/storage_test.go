package storage

import (
	"path/filepath"
	"testing"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()

	if Exists("") {
		t.Error("Exists(\"\") = true, want false")
	}

	nested := filepath.Join(dir, "data", "cache")
	if Exists(nested) {
		t.Errorf("Exists(%q) = true, want false", nested)
	}

	if err := CreateDir(nested); err != nil {
		t.Fatal(err)
	}

	if !Exists(nested) {
		t.Errorf("Exists(%q) = false, want true", nested)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cases := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/govdash", filepath.Join(home, "govdash")},
		{"/var/lib/govdash", "/var/lib/govdash"},
		{"./data", "./data"},
		{"~other/data", "~other/data"},
	}

	for _, tc := range cases {
		if got := ExpandHome(tc.in); got != tc.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
