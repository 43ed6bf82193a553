package mocks

import (
	"context"

	"github.com/mastersolis/marketing-api/internal/ai"
	"github.com/mastersolis/marketing-api/internal/extract"
)

// MockGenerator is a mock implementation of ai.Generator. It records
// every prompt it receives and returns a fixed response.
type MockGenerator struct {
	Response  string
	Prompts   []string
	MaxTokens []int
}

var _ ai.Generator = (*MockGenerator)(nil)

func NewMockGenerator(response string) *MockGenerator {
	return &MockGenerator{Response: response}
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string, maxTokens int) string {
	m.Prompts = append(m.Prompts, prompt)
	m.MaxTokens = append(m.MaxTokens, maxTokens)
	return m.Response
}

// Calls returns how many generations were requested
func (m *MockGenerator) Calls() int {
	return len(m.Prompts)
}

// MockExtractor is a mock implementation of extract.Extractor returning
// canned text regardless of the file bytes.
type MockExtractor struct {
	PDFText  string
	DOCXText string
}

var _ extract.Extractor = (*MockExtractor)(nil)

func NewMockExtractor(pdfText, docxText string) *MockExtractor {
	return &MockExtractor{PDFText: pdfText, DOCXText: docxText}
}

func (m *MockExtractor) PDF(data []byte) string {
	return m.PDFText
}

func (m *MockExtractor) DOCX(data []byte) string {
	return m.DOCXText
}
