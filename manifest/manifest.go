/*
Package manifest implements the small manifest written to each output
directory listing the assets generated into it.
*/
package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Filename is the name the manifest is stored under in each directory
const Filename = "assets.yaml"

// Entry describes one generated asset.
type Entry struct {
	Class    string `yaml:"class"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Source   string `yaml:"source"`
	Checksum string `yaml:"checksum"`
}

type namedEntry struct {
	Name  string `yaml:"name"`
	Entry `yaml:",inline"`
}

type document struct {
	Assets []namedEntry `yaml:"assets"`
}

// DB is the manifest database object. It implements the
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler interfaces.
type DB struct {
	entries map[string]Entry
}

// New returns an empty manifest
func New() *DB {
	return &DB{
		entries: make(map[string]Entry),
	}
}

// Load reads the manifest in dir. A missing manifest yields an empty one.
func Load(dir string) (*DB, error) {
	db := New()
	b, err := os.ReadFile(filepath.Join(dir, Filename))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return db, nil
		}
		return nil, err
	}
	if err := db.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return db, nil
}

// Length returns the number of assets in the manifest
func (db *DB) Length() int {
	return len(db.entries)
}

// Set stores the entry for the asset file name, replacing any previous one
func (db *DB) Set(name string, e Entry) error {
	if name == "" {
		return errors.New("manifest: empty asset name")
	}
	db.entries[name] = e
	return nil
}

// Get returns the entry for the asset file name
func (db *DB) Get(name string) (Entry, bool) {
	e, ok := db.entries[name]
	return e, ok
}

// MarshalBinary encodes the manifest as YAML with assets sorted by name
func (db *DB) MarshalBinary() ([]byte, error) {
	names := make([]string, 0, len(db.entries))
	for k := range db.entries {
		names = append(names, k)
	}
	sort.Strings(names)

	doc := document{
		Assets: make([]namedEntry, 0, len(names)),
	}
	for _, n := range names {
		doc.Assets = append(doc.Assets, namedEntry{Name: n, Entry: db.entries[n]})
	}

	return yaml.Marshal(&doc)
}

// UnmarshalBinary decodes the manifest from YAML
func (db *DB) UnmarshalBinary(b []byte) error {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return err
	}

	db.entries = make(map[string]Entry, len(doc.Assets))
	for _, a := range doc.Assets {
		if err := db.Set(a.Name, a.Entry); err != nil {
			return err
		}
	}

	return nil
}

// Save writes the manifest into dir
func (db *DB) Save(dir string) error {
	b, err := db.MarshalBinary()
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, Filename), b, 0o644)
}
