package docgen

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"doccov/internal/domain"
)

//go:embed templates/*.txt
var promptTemplates embed.FS

// PromptData is the template input for one flagged unit.
type PromptData struct {
	File    string
	Unit    domain.Unit
	Snippet string
}

// Request is one LLM draft request, ready for an external
// orchestration step to send to a provider.
type Request struct {
	File          string      `json:"file"`
	QualifiedName string      `json:"qualified_name"`
	Kind          domain.Kind `json:"kind"`
	StartLine     int         `json:"start_line"`
	EndLine       int         `json:"end_line"`
	Prompt        string      `json:"prompt"`
}

// PromptBuilder renders draft-documentation prompts for flagged units
// from embedded templates.
type PromptBuilder struct {
	tmpl *template.Template
}

func NewPromptBuilder() (*PromptBuilder, error) {
	tmpl, err := template.ParseFS(promptTemplates, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt templates: %w", err)
	}
	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build renders the draft prompt for one unit. snippet may be empty
// when the source is unavailable.
func (b *PromptBuilder) Build(file string, unit domain.Unit, snippet string) (string, error) {
	var buf bytes.Buffer
	data := PromptData{
		File:    file,
		Unit:    unit,
		Snippet: snippet,
	}
	if err := b.tmpl.ExecuteTemplate(&buf, "draft_prompt.txt", data); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return buf.String(), nil
}

// BuildRequests renders a request per unit. source is the full file
// content used to cut snippets; pass "" to omit them.
func (b *PromptBuilder) BuildRequests(file string, units []domain.Unit, source string, maxSnippetLines int) ([]Request, error) {
	requests := make([]Request, 0, len(units))
	for _, u := range units {
		snippet := ""
		if source != "" {
			snippet = Snippet(source, u.StartLine, u.EndLine, maxSnippetLines)
		}
		prompt, err := b.Build(file, u, snippet)
		if err != nil {
			return nil, err
		}
		requests = append(requests, Request{
			File:          file,
			QualifiedName: u.QualifiedName,
			Kind:          u.Kind,
			StartLine:     u.StartLine,
			EndLine:       u.EndLine,
			Prompt:        prompt,
		})
	}
	return requests, nil
}

// Snippet cuts the unit's source lines out of the file content,
// truncated to maxLines. Lines are 1-based.
func Snippet(content string, startLine, endLine, maxLines int) string {
	lines := strings.Split(content, "\n")
	if startLine < 1 {
		startLine = 1
	}
	if endLine > len(lines) {
		endLine = len(lines)
	}
	if startLine > endLine {
		return ""
	}

	cut := lines[startLine-1 : endLine]
	truncated := false
	if maxLines > 0 && len(cut) > maxLines {
		cut = cut[:maxLines]
		truncated = true
	}

	snippet := strings.Join(cut, "\n")
	if truncated {
		snippet += "\n// ... truncated"
	}
	return snippet
}
