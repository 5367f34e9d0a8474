package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	s := Open(path)
	assert.False(t, s.GetBool("glide.fastplay.checked"), "missing key should read false")

	s.SetBool("glide.fastplay.checked", true)
	assert.True(t, s.GetBool("glide.fastplay.checked"))

	// Fresh store on the same file sees the persisted value
	s2 := Open(path)
	assert.True(t, s2.GetBool("glide.fastplay.checked"), "value should survive reopen")
}

func TestStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	s := Open(path)
	s.SetBool("flag", true)
	s.Delete("flag")

	assert.False(t, s.GetBool("flag"))

	s2 := Open(path)
	assert.False(t, s2.GetBool("flag"), "delete should persist")
}

func TestStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	writeFile(t, path, "{not json")

	s := Open(path)
	assert.False(t, s.GetBool("anything"))

	// Store stays usable after a corrupt load
	s.SetBool("anything", true)
	assert.True(t, Open(path).GetBool("anything"))
}

func TestStoreWrongType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	writeFile(t, path, `{"flag": "yes"}`)

	s := Open(path)
	assert.False(t, s.GetBool("flag"), "non-bool value should read false")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
