package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/swagcodegen/swagcodegen/internal/fileutil"
)

// WriteFile writes the generated code to path, creating parent directories.
func (r *GenerateResult) WriteFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(r.Code), fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Extension returns the conventional file extension for the result's
// dialect, including the dot. custom output defaults to ".js".
func (r *GenerateResult) Extension() string {
	return Extension(r.Dialect)
}

// Extension returns the conventional file extension for dialect.
func Extension(dialect string) string {
	switch dialect {
	case DialectTypeScript:
		return ".ts"
	case DialectGo:
		return ".go"
	default:
		return ".js"
	}
}
