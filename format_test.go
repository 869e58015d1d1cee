// On-disk format verification tests.
//
// The star layout is a contract between the write path and every
// external tool that reads these files: the marker tokens, the blank
// line after the provenance comment, the one-label-per-line header,
// and the single-space field separator are all fixed. These tests read
// raw bytes back from a written file and pin that shape down, so a
// change on either side of the codec is caught here before it corrupts
// a downstream pipeline.
package star

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestConstants guards every exported constant that appears on disk.
// Existing star files would stop loading if a marker changed.
func TestConstants(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"BlockOptics", BlockOptics, "data_optics"},
		{"BlockParticles", BlockParticles, "data_particles"},
		{"BlockLegacy", BlockLegacy, "data_"},
		{"Extension", Extension, ".star"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}

	algs := []struct {
		name string
		got  int
		want int
	}{
		{"AlgXXHash3", AlgXXHash3, 1},
		{"AlgFNV1a", AlgFNV1a, 2},
		{"AlgBlake2b", AlgBlake2b, 3},
	}
	for _, tt := range algs {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestLegacyFileShape(t *testing.T) {
	particles, _ := NewTable(
		[]string{"_rlnImageName", "_rlnDefocusU"},
		[][]string{{"001.mrc", "10000"}, {"002.mrc", "10500"}},
	)
	m := New(particles, nil, "")

	dir := t.TempDir()
	if err := m.Write(dir, "out"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "out.star"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	lines := strings.Split(string(data), "\n")
	want := []struct {
		i    int
		line string
	}{
		{1, ""},
		{2, "data_"},
		{3, ""},
		{4, "loop_"},
		{5, "_rlnImageName"},
		{6, "_rlnDefocusU"},
		{7, "001.mrc 10000"},
		{8, "002.mrc 10500"},
		{9, ""},
	}

	if !strings.HasPrefix(lines[0], "# ") {
		t.Errorf("line 0 = %q, want provenance comment", lines[0])
	}
	for _, w := range want {
		if lines[w.i] != w.line {
			t.Errorf("line %d = %q, want %q", w.i, lines[w.i], w.line)
		}
	}
	if !strings.HasSuffix(string(data), "\n\n") {
		t.Error("file must end with the block's trailing blank line")
	}
}

func TestModernFileShape(t *testing.T) {
	optics, _ := NewTable([]string{"_rlnOpticsGroup"}, [][]string{{"1"}})
	particles, _ := NewTable([]string{"_rlnImageName"}, [][]string{{"001.mrc"}})
	m := New(particles, optics, "")

	dir := t.TempDir()
	if err := m.Write(dir, "out"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "out.star"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	text := string(data)
	optAt := strings.Index(text, "data_optics\n")
	partAt := strings.Index(text, "data_particles\n")
	if optAt < 0 || partAt < 0 {
		t.Fatalf("missing block markers in:\n%s", text)
	}
	// The optics block fully precedes the particle block.
	if optAt > partAt {
		t.Error("optics block must precede the particle block")
	}
}
