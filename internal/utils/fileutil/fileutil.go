package fileutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// AtomicWriteFile writes data to a temporary file and then renames it to the
// target file. Missing parent directories are created.
// AtomicWriteFile 将数据写入临时文件，然后将其重命名为目标文件。
func AtomicWriteFile(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename) // #nosec G703 // Safe: filepath.Dir cleans the path preventing traversal
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmpFile, err := os.CreateTemp(dir, "atomic-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmpFile.Name()) // Clean up if something fails

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Chmod(perm); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	return os.Rename(tmpFile.Name(), filename) // #nosec G703 // filename is validated by caller
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// ReadStatements reads a statement file: one statement per line, blank lines
// and lines starting with '#' ignored.
// ReadStatements 读取语句文件，忽略空行和以 '#' 开头的行。
func ReadStatements(filePath string) ([]string, error) {
	safePath := filepath.Clean(filePath)  // Sanitize path to prevent directory traversal
	content, err := os.ReadFile(safePath) // #nosec G304 // filePath is sanitized with filepath.Clean
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines, nil
}
