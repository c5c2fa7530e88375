package source

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileSource reads whole UTF-8 documents from disk.
type FileSource struct {
	// MaxRunes caps document size in code points. Zero disables the cap.
	MaxRunes int
	logger   ports.Logger
}

// NewFileSource creates a file source. maxRunes of 0 means unlimited.
func NewFileSource(logger ports.Logger, maxRunes int) *FileSource {
	return &FileSource{MaxRunes: maxRunes, logger: logger}
}

// Read loads the file at path. Every failure is an *domain.InputUnreadableError.
func (s *FileSource) Read(ctx context.Context, path string) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.AbsentDocument(), domain.NewInputUnreadable(path, "read cancelled", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("Failed to read document", "path", path, "error", err)
		return domain.AbsentDocument(), domain.NewInputUnreadable(path, "cannot read file", err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		s.logger.Error("Document is not valid UTF-8", "path", path)
		return domain.AbsentDocument(), domain.NewInputUnreadable(path, "invalid UTF-8 encoding", nil)
	}

	runes := utf8.RuneCount(data)
	if s.MaxRunes > 0 && runes > s.MaxRunes {
		s.logger.Error("Document exceeds size limit", "path", path, "runes", runes, "max_runes", s.MaxRunes)
		return domain.AbsentDocument(), domain.NewInputUnreadable(path,
			fmt.Sprintf("document has %d characters, limit is %d", runes, s.MaxRunes), nil)
	}

	s.logger.Debug("Read document", "path", path, "bytes", len(data), "runes", runes)
	return domain.NewDocument(string(data)), nil
}
