package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
)

// DefaultRoot is the directory profiles are written to unless configured.
const DefaultRoot = "profiles"

const dirPerm = 0o755

// FileStore implements Store with one JSON file per user under a root directory.
//
// Writes are direct overwrites with no locking; concurrent saves for the same
// user leave whichever write finished last.
type FileStore struct {
	root string
}

// NewFileStore creates a store rooted at root. An empty root means DefaultRoot.
func NewFileStore(root string) *FileStore {
	if root == "" {
		root = DefaultRoot
	}
	return &FileStore{root: root}
}

// Root returns the directory profiles are written to.
func (s *FileStore) Root() string {
	return s.root
}

// Path returns the file a user's profile is stored in.
func (s *FileStore) Path(userID int64) string {
	return filepath.Join(s.root, fmt.Sprintf("user_%d.json", userID))
}

// Save writes p as indented JSON and returns it with save details attached.
// Filesystem errors are returned as-is.
func (s *FileStore) Save(_ context.Context, p *Profile) (*SavedProfile, error) {
	if err := os.MkdirAll(s.root, dirPerm); err != nil {
		return nil, err
	}

	path := s.Path(p.ID)
	if err := writeJSON(path, p); err != nil {
		return nil, err
	}

	saved := *p
	saved.Metadata = maps.Clone(p.Metadata)
	return &SavedProfile{
		Profile: saved,
		SavedTo: path,
		Status:  StatusSaved,
	}, nil
}

// Load reads a saved profile back from disk.
func (s *FileStore) Load(_ context.Context, userID int64) (*Profile, error) {
	data, err := os.ReadFile(s.Path(userID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// writeJSON encodes v with two-space indentation and writes it to path.
// Non-ASCII and HTML characters are written literally. Encoding finishes before
// path is opened, so an unencodable value leaves the previous file intact.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Compile-time interface check
var _ Store = (*FileStore)(nil)
