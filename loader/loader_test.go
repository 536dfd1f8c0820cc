/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/pathtemplates"
	pterrors "github.com/suparena/pathtemplates/errors"
)

func TestLoad(t *testing.T) {
	doc := `
subjects: /data/subjects_dir
fsaverage: "{subjects}/fsaverage-src.fif"
epochs: "{subjects}/sub{subject:03d}/{cond}-epo.fif"
`

	files := pathtemplates.New()
	require.NoError(t, Load(strings.NewReader(doc), files))

	assert.Equal(t, []string{"subjects", "fsaverage", "epochs"}, files.Names(),
		"entries should be registered in document order")

	p, err := files.Get("fsaverage")
	require.NoError(t, err)
	assert.Equal(t, "/data/subjects_dir/fsaverage-src.fif", p.String())

	p, err = files.Resolve("epochs", pathtemplates.Args{"subject": 1, "cond": "face"})
	require.NoError(t, err)
	assert.Equal(t, "/data/subjects_dir/sub001/face-epo.fif", p.String())
}

func TestLoadEmptyDocument(t *testing.T) {
	files := pathtemplates.New()
	require.NoError(t, Load(strings.NewReader(""), files))
	assert.Empty(t, files.Names())
}

func TestLoadRejectsNonMapping(t *testing.T) {
	files := pathtemplates.New()
	err := Load(strings.NewReader("- a\n- b\n"), files)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a YAML mapping")
}

func TestLoadRejectsNestedValue(t *testing.T) {
	doc := `
subjects: /data/subjects_dir
epochs:
  nested: true
`

	files := pathtemplates.New()
	err := Load(strings.NewReader(doc), files)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `alias "epochs"`)

	// No rollback: the entry before the failure stays registered.
	assert.True(t, files.Has("subjects"))
}

func TestLoadInvalidAliasKeepsPriorEntries(t *testing.T) {
	doc := `
subjects: /data/subjects_dir
1bad: /nope
`

	files := pathtemplates.New()
	err := Load(strings.NewReader(doc), files)
	require.Error(t, err)
	assert.True(t, pterrors.IsInvalidAlias(err))
	assert.True(t, files.Has("subjects"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paths.yaml")
	require.NoError(t, os.WriteFile(path, []byte("raw: /data/raw\n"), 0o600))

	files := pathtemplates.New()
	require.NoError(t, LoadFile(path, files))

	p, err := files.Get("raw")
	require.NoError(t, err)
	assert.Equal(t, "/data/raw", p.String())
}

func TestLoadFileMissing(t *testing.T) {
	files := pathtemplates.New()
	err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), files)
	require.Error(t, err)
}
