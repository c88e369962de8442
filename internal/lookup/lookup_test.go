package lookup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDictionary() *Dictionary {
	return New(map[string][]string{
		"Resistor":  {"Resistor", "RES", "resister"},
		"Capacitor": {"Capacitor", "CAP"},
		"Inductor":  {"Inductor"},
	})
}

func TestNewCopiesInput(t *testing.T) {
	entries := map[string][]string{"Resistor": {"RES"}}
	d := New(entries)

	entries["Resistor"][0] = "mutated"
	entries["Capacitor"] = []string{"CAP"}

	assert.Equal(t, []string{"Resistor"}, d.KeysFor("RES"))
	assert.Equal(t, 1, d.Len())
}

func TestKeys(t *testing.T) {
	d := sampleDictionary()
	assert.Equal(t, []string{"Capacitor", "Inductor", "Resistor"}, d.Keys())
}

func TestAliases(t *testing.T) {
	d := sampleDictionary()
	assert.Equal(t,
		[]string{"Capacitor", "CAP", "Inductor", "Resistor", "RES", "resister"},
		d.Aliases())
}

func TestKeysFor(t *testing.T) {
	d := sampleDictionary()

	assert.Equal(t, []string{"Resistor"}, d.KeysFor("resister"))
	assert.Equal(t, []string{"Capacitor"}, d.KeysFor("CAP"))
	assert.Nil(t, d.KeysFor("unknown"))

	ambiguous := New(map[string][]string{
		"Resistor":  {"R"},
		"Capacitor": {"R"},
	})
	assert.Equal(t, []string{"Capacitor", "Resistor"}, ambiguous.KeysFor("R"))
}

func TestLoad(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "component_type.yaml")
		content := "Resistor:\n  - Resistor\n  - RES\nCapacitor:\n  - Capacitor\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		d, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2, d.Len())
		assert.Equal(t, []string{"Resistor"}, d.KeysFor("RES"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("Resistor: [unclosed"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}
