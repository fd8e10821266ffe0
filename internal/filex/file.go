// Package filex holds small filesystem helpers for the CLI: local data
// directories and resume files selected for upload.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Content types the backend recognises for resumes.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeDOC  = "application/msword"
	ContentTypeText = "text/plain"
)

// EnsureParentDir creates the directory that will hold path (e.g. the
// session database) if it does not exist yet.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ContentType maps a resume file name to its content type by extension.
// Anything that is not pdf, docx or doc is treated as plain text.
func ContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return ContentTypePDF
	case ".docx":
		return ContentTypeDOCX
	case ".doc":
		return ContentTypeDOC
	default:
		return ContentTypeText
	}
}

// Upload is a file read from disk and ready to be sent as a form part.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}

// ReadUpload reads path into memory so it can be replayed if the request
// has to be retried.
func ReadUpload(path string) (*Upload, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	name := filepath.Base(path)
	return &Upload{Name: name, ContentType: ContentType(name), Data: data}, nil
}
