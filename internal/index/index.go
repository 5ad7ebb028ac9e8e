package index

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	herrors "shadcn-helper/internal/errors"
	"shadcn-helper/internal/logger"
)

// lineBreaks splits the index on any run of CR/LF so CRLF files and blank
// lines both load cleanly.
var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// Store is the component index: an ordered, duplicate-free list of component
// identifiers (registry names or third-party URLs), one per line.
// The file is read and rewritten wholesale on every mutation.
type Store struct {
	fs   afero.Fs
	path string
	mode os.FileMode
}

// NewStore returns a Store for the index file at path. mode is applied on every
// save regardless of the process umask.
func NewStore(fs afero.Fs, path string, mode os.FileMode) *Store {
	return &Store{fs: fs, path: path, mode: mode}
}

// Path returns the index file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the index. A missing file is an empty index.
func (s *Store) Load() ([]string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, herrors.Wrap(err, herrors.ErrFS, "failed to read component index").
			WithDetails("path", s.path)
	}

	list := []string{}
	for _, line := range lineBreaks.Split(string(data), -1) {
		if line != "" {
			list = append(list, line)
		}
	}
	return list, nil
}

// Save overwrites the index with list, newline-joined.
func (s *Store) Save(list []string) error {
	content := strings.Join(list, "\n")
	logger.Debug("[DEBUG] Writing %d entries to %s\n", len(list), s.path)

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return herrors.Wrap(err, herrors.ErrFS, "failed to create index directory").
			WithDetails("path", s.path)
	}
	if err := afero.WriteFile(s.fs, s.path, []byte(content), s.mode); err != nil {
		return herrors.Wrap(err, herrors.ErrFS, "failed to write component index").
			WithDetails("path", s.path)
	}
	// WriteFile only applies the mode on creation, and then through the umask.
	if err := s.fs.Chmod(s.path, s.mode); err != nil {
		return herrors.Wrap(err, herrors.ErrFS, "failed to set index permissions").
			WithDetails("path", s.path)
	}
	return nil
}

// Add appends ids, drops duplicates keeping the first occurrence, saves and
// returns the new list.
func (s *Store) Add(ids ...string) ([]string, error) {
	list, err := s.Load()
	if err != nil {
		return nil, err
	}

	list = Unique(append(list, ids...))
	if err := s.Save(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Remove drops the entry matching name and returns it. An exact match wins;
// otherwise the first entry whose last "/" segment equals name is removed, so
// "card" finds "https://example.com/r/card". When nothing matches the index is
// left untouched and a not-found error is returned.
func (s *Store) Remove(name string) (string, error) {
	list, err := s.Load()
	if err != nil {
		return "", err
	}

	i := Find(list, name)
	if i < 0 {
		return "", herrors.ComponentNotFound(name, s.path)
	}

	removed := list[i]
	list = append(list[:i], list[i+1:]...)
	if err := s.Save(list); err != nil {
		return "", err
	}
	return removed, nil
}

// Contains reports whether name resolves to an entry, using the same matching
// as Remove.
func (s *Store) Contains(name string) (bool, error) {
	list, err := s.Load()
	if err != nil {
		return false, err
	}
	return Find(list, name) >= 0, nil
}

// Find returns the index of the entry equal to name, or failing that the first
// entry ending in "/"+name, or -1.
func Find(list []string, name string) int {
	for i, id := range list {
		if id == name {
			return i
		}
	}
	for i, id := range list {
		if strings.HasSuffix(id, "/"+name) {
			return i
		}
	}
	return -1
}

// Unique returns list without repeated entries, in first-seen order.
func Unique(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, id := range list {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Name is the display name of an identifier: the segment after the last "/".
func Name(id string) string {
	return id[strings.LastIndex(id, "/")+1:]
}
