// Package upload is the file intake for image attachments: it stores the
// uploaded bytes on disk under a unique name and hands the caller both the
// raw bytes (for inline provider encoding) and the stored name (for the
// public URL persisted on the message).
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type StoredFile struct {
	Name     string
	MIMEType string
	Data     []byte
}

type Saver struct {
	dir string
}

func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Saver{dir: dir}, nil
}

func (s *Saver) Save(fh *multipart.FileHeader) (*StoredFile, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}

	return &StoredFile{Name: name, MIMEType: mimeType, Data: data}, nil
}
