package textsource

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cognicore/artikel/pkg/artikel/internalerr"
)

func TestFromHTML(t *testing.T) {
	doc := `<html><head><title>ignored</title><style>p { color: red }</style></head>
<body>
  <h1>He is   actor.</h1>
  <p>Cats played with <b>cat toys</b>.</p>
  <script>var x = "It is city";</script>
  <ul><li>First item</li><li>Second item</li></ul>
</body></html>`

	got, err := FromHTML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}
	want := "He is actor.\nCats played with cat toys.\nFirst item\nSecond item"
	if got != want {
		t.Errorf("FromHTML = %q, want %q", got, want)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "text.txt")
	if err := os.WriteFile(plain, []byte("He is actor.\n<p>kept</p>"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(plain)
	if err != nil || got != "He is actor.\n<p>kept</p>" {
		t.Errorf("plain ReadFile = %q, %v", got, err)
	}

	page := filepath.Join(dir, "page.HTML")
	if err := os.WriteFile(page, []byte("<p>It's beautiful city</p>"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err = ReadFile(page)
	if err != nil || got != "It's beautiful city" {
		t.Errorf("html ReadFile = %q, %v", got, err)
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.txt")); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("missing file: err = %v, want ErrNotFound", err)
	}
}
