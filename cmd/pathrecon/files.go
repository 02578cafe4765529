package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Unsaif/pathrecon"
)

// readSourceFiles loads the given paths into memory.
func readSourceFiles(paths []string) ([]pathrecon.SourceFile, error) {
	files := make([]pathrecon.SourceFile, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", path, err)
		}
		files = append(files, pathrecon.SourceFile{
			Name: filepath.Base(path),
			Data: data,
		})
	}
	return files, nil
}
