package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	db := New()
	require.NoError(t, db.Set("b.png", Entry{Class: "Goal", Width: 256, Height: 256, Source: "in/b.jpg", Checksum: "BB"}))
	require.NoError(t, db.Set("a.png", Entry{Class: "Player", Width: 512, Height: 512, Source: "in/a.png", Checksum: "AA"}))
	assert.Error(t, db.Set("", Entry{}))
	assert.Equal(t, 2, db.Length())

	b, err := db.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, `assets:
    - name: a.png
      class: Player
      width: 512
      height: 512
      source: in/a.png
      checksum: AA
    - name: b.png
      class: Goal
      width: 256
      height: 256
      source: in/b.jpg
      checksum: BB
`, string(b))

	other := New()
	require.NoError(t, other.UnmarshalBinary(b))
	assert.Equal(t, db, other)
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()

	db, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, db.Length())

	require.NoError(t, db.Set("x.png", Entry{Class: "Station", Width: 1024, Height: 1024}))
	require.NoError(t, db.Save(dir))

	db, err = Load(dir)
	require.NoError(t, err)
	e, ok := db.Get("x.png")
	require.True(t, ok)
	assert.Equal(t, 1024, e.Width)

	require.NoError(t, os.WriteFile(filepath.Join(dir, Filename), []byte("assets: [unterminated"), 0o644))
	_, err = Load(dir)
	assert.Error(t, err)
}
