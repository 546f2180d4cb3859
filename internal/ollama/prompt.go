package ollama

import (
	"fmt"
	"strings"

	"github.com/pdf-whisperer/backend/internal/models"
)

const systemMessage = "You are an assistant specialized in reading and analyzing PDF documents."

// BuildPrompt renders the system and user messages for a document analysis.
// The analysis parameters are mapped onto plain-language instructions around
// the extracted text.
func BuildPrompt(text string, p models.AnalysisParameters) (system, user string) {
	var b strings.Builder

	b.WriteString("Here is the content extracted from a PDF document:\n\n")
	b.WriteString(text)
	b.WriteString("\n\n")

	switch analysisType(p) {
	case models.AnalysisTypeDetailed:
		b.WriteString("Provide a thorough analysis of the document: its purpose, main arguments, structure, and notable details.")
	case models.AnalysisTypeExtraction:
		b.WriteString("Extract the key facts, figures, dates, and named entities from the document as a concise list.")
	default:
		b.WriteString("Provide a detailed summary (max 300 words).")
	}

	if p.Precision != nil {
		switch {
		case *p.Precision <= 3:
			b.WriteString(" Keep it brief and high-level.")
		case *p.Precision >= 8:
			b.WriteString(" Be exhaustive; do not omit secondary points.")
		}
	}

	if boolSet(p.ExtractTables) {
		b.WriteString("\nDescribe any tables found in the document and their contents.")
	}
	if boolSet(p.ExtractImages) {
		b.WriteString("\nMention any figures or images referenced in the text.")
	}
	if boolSet(p.GenerateKeywords) {
		b.WriteString("\nEnd with a line of 5-10 keywords describing the document.")
	}
	if boolSet(p.StructuredOutput) {
		b.WriteString("\nRespond with a single JSON object; put the main text under a \"summary\" key.")
	}

	if p.Language != nil && *p.Language != "" {
		b.WriteString(fmt.Sprintf("\nRespond in %s.", languageName(*p.Language)))
	}

	return systemMessage, b.String()
}

func analysisType(p models.AnalysisParameters) string {
	if p.AnalysisType == nil {
		return models.AnalysisTypeSummary
	}
	return *p.AnalysisType
}

func boolSet(b *bool) bool {
	return b != nil && *b
}

// languageName maps the frontend's language codes to names a model follows
// more reliably than bare ISO codes. Unknown codes pass through as-is.
func languageName(code string) string {
	switch strings.ToLower(code) {
	case "en":
		return "English"
	case "fr":
		return "French"
	case "es":
		return "Spanish"
	case "de":
		return "German"
	case "it":
		return "Italian"
	case "pt":
		return "Portuguese"
	}
	return code
}
