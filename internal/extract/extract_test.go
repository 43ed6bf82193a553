package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

const documentBody = `<w:p><w:r><w:t>Sam Patel</w:t></w:r></w:p>
<w:p><w:r><w:t>Backend engineer with 5 years of Go &amp; MongoDB.</w:t></w:r></w:p>`

const tableBody = `<w:p><w:r><w:t>Sam Patel</w:t></w:r></w:p>
<w:tbl>
<w:tr>
<w:tc><w:p><w:r><w:t>Go</w:t></w:r></w:p></w:tc>
<w:tc><w:p><w:r><w:t>MongoDB</w:t></w:r></w:p></w:tc>
</w:tr>
</w:tbl>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>` + body + `</w:body>
</w:document>`

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"word/document.xml":            document,
		"word/_rels/document.xml.rels": relsXML,
	} {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create zip entry %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write zip entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return buf.Bytes()
}

func TestDOCX(t *testing.T) {
	e := New(zerolog.Nop())

	text := e.DOCX(buildDocx(t, documentBody))
	want := "Sam Patel\nBackend engineer with 5 years of Go & MongoDB."
	if text != want {
		t.Errorf("Expected %q, got %q", want, text)
	}
}

func TestDOCX_TableCellsAsLines(t *testing.T) {
	e := New(zerolog.Nop())

	text := e.DOCX(buildDocx(t, tableBody))
	want := "Sam Patel\nGo\nMongoDB"
	if text != want {
		t.Errorf("Expected %q, got %q", want, text)
	}
	if strings.Contains(text, "<") {
		t.Errorf("Extracted text must not contain markup: %q", text)
	}
}

func TestDOCX_GarbageInput(t *testing.T) {
	e := New(zerolog.Nop())

	if text := e.DOCX([]byte("not a zip archive")); text != "" {
		t.Errorf("Garbage input should yield empty text, got %q", text)
	}
}

func TestPDF_GarbageInput(t *testing.T) {
	e := New(zerolog.Nop())

	if text := e.PDF([]byte("not a pdf")); text != "" {
		t.Errorf("Garbage input should yield empty text, got %q", text)
	}
}

func TestTextRuns(t *testing.T) {
	content := `<w:body>` +
		`<w:p><w:r><w:t>First</w:t></w:r><w:r><w:t xml:space="preserve"> run</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Second &lt;para&gt;</w:t></w:r></w:p>` +
		`<w:p><w:r><w:tab/></w:r></w:p>` +
		`</w:body>`

	got := textRuns(content)
	want := "First run\nSecond <para>\n"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestTextRuns_TableMarkupNotLeaked(t *testing.T) {
	content := `<w:body>` +
		`<w:p><w:r><w:t>Sam Patel</w:t></w:r></w:p>` +
		`<w:tbl><w:tr>` +
		`<w:tc><w:p><w:r><w:t>Go</w:t></w:r></w:p></w:tc>` +
		`<w:tc><w:p><w:r><w:t>MongoDB</w:t></w:r></w:p></w:tc>` +
		`</w:tr></w:tbl>` +
		`</w:body>`

	got := textRuns(content)
	want := "Sam Patel\nGo\nMongoDB\n"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
