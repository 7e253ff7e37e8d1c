package prompt

import (
	"strings"
	"testing"
)

func newBuilder(t *testing.T) *Builder {
	t.Helper()
	builder, err := NewPromptBuilder()
	if err != nil {
		t.Fatalf("NewPromptBuilder() returned error: %v", err)
	}
	return builder
}

func TestNewPromptBuilder(t *testing.T) {
	builder := newBuilder(t)
	if builder.loader == nil {
		t.Fatal("NewPromptBuilder() created builder with nil loader")
	}
	if builder.tmpl == nil {
		t.Fatal("NewPromptBuilder() created builder with nil template")
	}
}

func TestBuildPromptInterpolatesFields(t *testing.T) {
	builder := newBuilder(t)
	prompt, err := builder.BuildPrompt(Input{
		JobDescription: "Backend engineer role",
		ResumeInfo:     "5 years Node.js",
		TargetRole:     "Staff Engineer",
	})
	if err != nil {
		t.Fatalf("BuildPrompt() returned error: %v", err)
	}

	for _, want := range []string{
		"You are HirePulse, an ATS-focused job application assistant.",
		"JOB DESCRIPTION:\nBackend engineer role\n",
		"RESUME INFORMATION:\n5 years Node.js\n",
		"TARGET ROLE:\nStaff Engineer\n",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("BuildPrompt() missing %q", want)
		}
	}
	if strings.Contains(prompt, TargetRolePlaceholder) {
		t.Error("BuildPrompt() used the placeholder although a role was given")
	}
}

func TestBuildPromptDefaultsTargetRole(t *testing.T) {
	builder := newBuilder(t)
	prompt, err := builder.BuildPrompt(Input{
		JobDescription: "jd",
		ResumeInfo:     "resume",
	})
	if err != nil {
		t.Fatalf("BuildPrompt() returned error: %v", err)
	}

	if !strings.Contains(prompt, "TARGET ROLE:\nNot provided\n") {
		t.Errorf("BuildPrompt() did not render placeholder role:\n%s", prompt)
	}
}

func TestBuildPromptSectionOrder(t *testing.T) {
	builder := newBuilder(t)
	prompt, err := builder.BuildPrompt(Input{JobDescription: "jd", ResumeInfo: "resume"})
	if err != nil {
		t.Fatalf("BuildPrompt() returned error: %v", err)
	}

	last := -1
	for _, section := range Sections {
		idx := strings.Index(prompt, "["+section+"]")
		if idx < 0 {
			t.Fatalf("BuildPrompt() missing section %q", section)
		}
		if idx <= last {
			t.Errorf("section %q out of order", section)
		}
		last = idx
	}
}

func TestBuildPromptDoesNotEscape(t *testing.T) {
	builder := newBuilder(t)
	raw := `C++ & "Go" <senior> {{.ResumeInfo}}`
	prompt, err := builder.BuildPrompt(Input{JobDescription: raw, ResumeInfo: "resume"})
	if err != nil {
		t.Fatalf("BuildPrompt() returned error: %v", err)
	}
	if !strings.Contains(prompt, raw) {
		t.Errorf("BuildPrompt() altered field text:\n%s", prompt)
	}
}
