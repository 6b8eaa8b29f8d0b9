package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	rom := []byte{0x00, 0x18, 0xFE, 0x76}

	t.Run("Plain", func(t *testing.T) {
		data, err := LoadFile(writeTemp(t, "game.gb", rom))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, rom) {
			t.Errorf("Expected % 02X, got % 02X", rom, data)
		}
	})

	t.Run("Gzip", func(t *testing.T) {
		var b bytes.Buffer
		w := gzip.NewWriter(&b)
		w.Write(rom)
		w.Close()

		data, err := LoadFile(writeTemp(t, "game.gb.gz", b.Bytes()))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, rom) {
			t.Errorf("Expected % 02X, got % 02X", rom, data)
		}
	})

	t.Run("Zip", func(t *testing.T) {
		var b bytes.Buffer
		w := zip.NewWriter(&b)
		f, err := w.Create("game.gb")
		if err != nil {
			t.Fatal(err)
		}
		f.Write(rom)
		w.Close()

		data, err := LoadFile(writeTemp(t, "game.zip", b.Bytes()))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, rom) {
			t.Errorf("Expected % 02X, got % 02X", rom, data)
		}
	})

	t.Run("Bad Archive", func(t *testing.T) {
		if _, err := LoadFile(writeTemp(t, "game.7z", []byte("not an archive"))); err == nil {
			t.Error("Expected a garbage archive to be rejected")
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.gb")); err == nil {
			t.Error("Expected a missing file to be rejected")
		}
	})
}
