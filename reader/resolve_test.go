package reader

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func touch(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "plain.csv"), "a\n")
	touch(t, filepath.Join(dir, "both.csv"), "a\n")
	touch(t, filepath.Join(dir, "both.parquet"), "")
	touch(t, filepath.Join(dir, "packed.csv.zst"), "")
	touch(t, filepath.Join(dir, "nested", "deep.csv"), "a\n")
	if err := os.Mkdir(filepath.Join(dir, "folder.csv"), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	touch(t, filepath.Join(dir, "folder.csv.gz"), "")

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"csv first", "plain", "plain.csv"},
		{"csv preferred over parquet", "both", "both.csv"},
		{"compressed", "packed", "packed.csv.zst"},
		{"subdirectory", "nested/deep", filepath.Join("nested", "deep.csv")},
		{"explicit extension", "both.parquet", "both.parquet"},
		{"explicit extension not checked", "later.csv", "later.csv"},
		{"directories skipped", "folder", "folder.csv.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(dir, tt.ref)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if want := filepath.Join(dir, tt.want); got != want {
				t.Errorf("Resolve() = %q, want %q", got, want)
			}
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := Resolve(dir, "ghost")
	if !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("Resolve() error = %v, want %v", err, ErrTableNotFound)
	}
	if !strings.Contains(err.Error(), "ghost.csv") || !strings.Contains(err.Error(), "ghost.parquet") {
		t.Errorf("Resolve() error %q should list probed files", err)
	}
}

func TestResolve_AbsoluteReference(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abs.csv")
	touch(t, path, "a\n")

	got, err := Resolve("elsewhere", filepath.Join(dir, "abs"))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != path {
		t.Errorf("Resolve() = %q, want %q", got, path)
	}
}

func TestDirLoader_Load(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "people.csv"), "name,age\nAnn,30\nBob,25\n")

	table, err := DirLoader{Dir: dir}.Load("people")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := &Table{
		Headers: []string{"name", "age"},
		Rows:    [][]string{{"Ann", "30"}, {"Bob", "25"}},
	}
	if !reflect.DeepEqual(table, want) {
		t.Errorf("Load() = %+v, want %+v", table, want)
	}

	if _, err := (DirLoader{Dir: dir}).Load("nobody"); !errors.Is(err, ErrTableNotFound) {
		t.Errorf("Load(nobody) error = %v, want %v", err, ErrTableNotFound)
	}
}
