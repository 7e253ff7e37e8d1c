package prompt

import (
	"fmt"
	"strings"
	"text/template"
)

// TargetRolePlaceholder is rendered when the caller did not name a role
const TargetRolePlaceholder = "Not provided"

// Sections lists the labeled blocks the model is asked to emit, in order
var Sections = []string{
	"ATS REPORT",
	"ATS RESUME",
	"COVER LETTER",
	"LINKEDIN ABOUT",
	"LINKEDIN MESSAGE",
	"EMAIL TO RECRUITER",
	"INTERVIEW PREP",
}

// Input holds the request fields interpolated into the prompt
type Input struct {
	JobDescription string
	ResumeInfo     string
	TargetRole     string
}

// Builder renders the job application prompt
type Builder struct {
	loader *Loader
	tmpl   *template.Template
}

// NewPromptBuilder creates a new prompt builder with the embedded template parsed once
func NewPromptBuilder() (*Builder, error) {
	loader := NewPromptLoader()
	raw, err := loader.GetApplicationPromptTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	tmpl, err := template.New("hirepulse").Option("missingkey=error").Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}

	return &Builder{loader: loader, tmpl: tmpl}, nil
}

// BuildPrompt substitutes the request fields into the template.
// Field text is inserted verbatim, without escaping or trimming.
func (b *Builder) BuildPrompt(in Input) (string, error) {
	if in.TargetRole == "" {
		in.TargetRole = TargetRolePlaceholder
	}

	var sb strings.Builder
	if err := b.tmpl.Execute(&sb, in); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return sb.String(), nil
}
