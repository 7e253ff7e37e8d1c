package embedded

import (
	_ "embed"
)

// Embed all prompt data files
//
//go:embed data/prompts/hirepulse_prompt.txt
var HirePulsePromptTmpl []byte
