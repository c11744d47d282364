// Package dir reads the published data files from a local directory,
// typically the scraper's data/ output.
package dir

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/postliste/internal/core/domain"
	"github.com/custodia-labs/postliste/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.DataSource = (*Source)(nil)

// Source reads files below a root directory.
type Source struct {
	root string
}

// NewSource creates a source rooted at root. A leading "~" expands to the
// home directory.
func NewSource(root string) *Source {
	if strings.HasPrefix(root, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			root = filepath.Join(home, strings.TrimPrefix(root, "~"))
		}
	}
	return &Source{root: filepath.Clean(root)}
}

// Fetch reads the named file. Names may not escape the root.
func (s *Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !filepath.IsLocal(filepath.FromSlash(name)) {
		return nil, fmt.Errorf("%w: file name %q leaves %s", domain.ErrInvalidInput, name, s.root)
	}

	path := filepath.Join(s.root, filepath.FromSlash(name))
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// Location returns the root directory.
func (s *Source) Location() string {
	return s.root
}
