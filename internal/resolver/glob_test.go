package resolver

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// writeTree creates the given relative files under root
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("# fixture\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

func TestGlobber_Expand_Directory(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"test/a_test.rb",
		"test/sub/b_test.rb",
		"test/sub/deep/c_test.rb",
		"test/helpers.rb",
	)

	g := NewGlobber(testConfig(), root)
	files, err := g.Expand("test")
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}

	sort.Strings(files)
	want := []string{"test/a_test.rb", "test/sub/b_test.rb", "test/sub/deep/c_test.rb"}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestGlobber_Expand_FilenameStem(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"test/user_test.rb",
		"test/user_profile_test.rb",
		"test/order_test.rb",
	)

	g := NewGlobber(testConfig(), root)
	files, err := g.Expand("test/user")
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}

	sort.Strings(files)
	want := []string{"test/user_profile_test.rb", "test/user_test.rb"}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestGlobber_Expand_NoMatches(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "test/helpers.rb")

	g := NewGlobber(testConfig(), root)
	files, err := g.Expand("test/missing")
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected empty result, got %v", files)
	}
}

func TestGlobber_Expand_AbsolutePrefix(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "test/a_test.rb")

	g := NewGlobber(testConfig(), root)
	files, err := g.Expand(filepath.Join(root, "test"))
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}

	if len(files) != 1 || files[0] != "test/a_test.rb" {
		t.Errorf("expected working-directory prefix stripped, got %v", files)
	}
}

func TestGlobber_Expand_MultipleSuffixes(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"test/a_test.rb",
		"spec/a_spec.rb",
		"test/b.rb",
	)

	cfg := testConfig()
	cfg.Suffixes = []string{"_test.rb", "_spec.rb"}

	g := NewGlobber(cfg, root)

	testFiles, err := g.Expand("test")
	if err != nil {
		t.Fatal(err)
	}
	specFiles, err := g.Expand("spec")
	if err != nil {
		t.Fatal(err)
	}

	if len(testFiles) != 1 || testFiles[0] != "test/a_test.rb" {
		t.Errorf("test expansion = %v", testFiles)
	}
	if len(specFiles) != 1 || specFiles[0] != "spec/a_spec.rb" {
		t.Errorf("spec expansion = %v", specFiles)
	}
}
