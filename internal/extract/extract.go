// Package extract converts uploaded resume files to plain text.
// Extraction is best-effort: unparseable input yields an empty string,
// which callers treat as a rejected upload rather than a service error.
package extract

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/nguyenthenguyen/docx"
	"github.com/rs/zerolog"
	"github.com/unidoc/unipdf/v3/extractor"
	pdfmodel "github.com/unidoc/unipdf/v3/model"
)

// Extractor maps raw file bytes of a declared format to plain text
type Extractor interface {
	PDF(data []byte) string
	DOCX(data []byte) string
}

// TextExtractor is the production Extractor backed by unipdf and docx
type TextExtractor struct {
	log zerolog.Logger
}

// Verify interface compliance
var _ Extractor = (*TextExtractor)(nil)

// New creates a new text extractor
func New(log zerolog.Logger) *TextExtractor {
	return &TextExtractor{log: log.With().Str("component", "extract").Logger()}
}

// PDF extracts text from a PDF document, page by page
func (e *TextExtractor) PDF(data []byte) string {
	reader, err := pdfmodel.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		e.log.Debug().Err(err).Msg("PDF extraction failed")
		return ""
	}

	numPages, err := reader.GetNumPages()
	if err != nil {
		e.log.Debug().Err(err).Msg("PDF page count failed")
		return ""
	}

	var builder strings.Builder
	for i := 1; i <= numPages; i++ {
		page, err := reader.GetPage(i)
		if err != nil {
			continue
		}
		ex, err := extractor.New(page)
		if err != nil {
			continue
		}
		pageText, err := ex.ExtractText()
		if err != nil {
			continue
		}
		builder.WriteString(pageText)
	}

	return strings.TrimSpace(builder.String())
}

// DOCX extracts text from a Word document by pulling the text runs out
// of the document XML
func (e *TextExtractor) DOCX(data []byte) string {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.log.Debug().Err(err).Msg("DOCX extraction failed")
		return ""
	}
	defer doc.Close()

	return strings.TrimSpace(textRuns(doc.Editable().GetContent()))
}

// textRuns walks the document XML and joins the character data of w:t
// elements, one paragraph per line. Only w:t carries visible text; table
// and row markup (w:tbl, w:tr, w:tc) contributes nothing of its own, and
// its nested paragraphs fall out as ordinary lines.
func textRuns(content string) string {
	var builder strings.Builder
	decoder := xml.NewDecoder(strings.NewReader(content))

	inRun := false
	lineHasText := false
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				if lineHasText {
					builder.WriteString("\n")
					lineHasText = false
				}
			}
		case xml.CharData:
			if inRun {
				builder.Write(t)
				lineHasText = true
			}
		}
	}
	return builder.String()
}
