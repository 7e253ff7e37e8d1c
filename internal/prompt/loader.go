package prompt

import (
	"github.com/Conceptual-Machines/hirepulse-api/pkg/embedded"
)

type Loader struct{}

func NewPromptLoader() *Loader {
	return &Loader{}
}

// GetApplicationPromptTemplate loads the job application prompt template.
// The text is returned untrimmed so the rendered prompt keeps its framing newlines.
func (l *Loader) GetApplicationPromptTemplate() (string, error) {
	return string(embedded.HirePulsePromptTmpl), nil
}
