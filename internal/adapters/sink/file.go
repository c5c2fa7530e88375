package sink

import (
	"context"
	"os"
	"path/filepath"

	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
)

// FileSink writes results to files all-or-nothing: content goes to a temporary
// file in the destination directory, which is renamed over the target.
type FileSink struct {
	logger ports.Logger
	perm   os.FileMode
}

// NewFileSink creates a file sink producing files with mode 0644.
func NewFileSink(logger ports.Logger) *FileSink {
	return &FileSink{logger: logger, perm: 0o644}
}

// Write stores formatted at path. Every failure is an *domain.OutputUnwritableError
// and leaves any existing file at path untouched.
func (s *FileSink) Write(ctx context.Context, path string, formatted string) (err error) {
	if err := ctx.Err(); err != nil {
		return domain.NewOutputUnwritable(path, "write cancelled", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		s.logger.Error("Failed to create temporary output file", "path", path, "error", err)
		return domain.NewOutputUnwritable(path, "cannot create file in destination directory", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.WriteString(formatted); err != nil {
		return domain.NewOutputUnwritable(path, "write failed", err)
	}
	if err = tmp.Sync(); err != nil {
		return domain.NewOutputUnwritable(path, "sync failed", err)
	}
	if err = tmp.Chmod(s.perm); err != nil {
		return domain.NewOutputUnwritable(path, "chmod failed", err)
	}
	if err = tmp.Close(); err != nil {
		return domain.NewOutputUnwritable(path, "close failed", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		s.logger.Error("Failed to move output into place", "path", path, "error", err)
		return domain.NewOutputUnwritable(path, "rename failed", err)
	}

	s.logger.Debug("Wrote result", "path", path, "bytes", len(formatted))
	return nil
}
