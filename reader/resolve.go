package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extensions lists the file extensions probed for a bare table reference, in order.
var Extensions = []string{
	".csv",
	".csv.gz",
	".csv.zst",
	".csv.lz4",
	".csv.br",
	".parquet",
}

// DirLoader loads tables by reference from a data directory.
type DirLoader struct {
	// Dir is the directory table references are resolved against.
	// An empty Dir means the current working directory.
	Dir string
}

// Load resolves ref inside the loader directory and reads the table.
func (l DirLoader) Load(ref string) (*Table, error) {
	path, err := Resolve(l.Dir, ref)
	if err != nil {
		return nil, err
	}
	return ReadFile(path)
}

// Resolve maps a table reference to a file path.
//
// A reference that already ends in a supported extension is joined to dir
// and returned without checking that it exists, so the caller gets the
// underlying open error. Otherwise each entry of Extensions is appended in
// turn and the first existing regular file wins.
func Resolve(dir, ref string) (string, error) {
	base := ref
	if dir != "" && !filepath.IsAbs(ref) {
		base = filepath.Join(dir, ref)
	}

	if hasSupportedExtension(ref) {
		return base, nil
	}

	candidates := make([]string, 0, len(Extensions))
	for _, ext := range Extensions {
		candidate := base + ext
		candidates = append(candidates, candidate)

		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %q (tried %s)", ErrTableNotFound, ref, strings.Join(candidates, ", "))
}

func hasSupportedExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
