package matching

import (
	"strings"

	_ "embed"
)

//go:embed prompt_select_skills.md
var selectSkillsTemplate string

//go:embed prompt_propose_skills.md
var proposeSkillsTemplate string

//go:embed prompt_pick_person.md
var pickPersonPrompt string

//go:embed prompt_extract_bio.md
var extractBioPrompt string

// skillSelectionPrompt returns the system prompt for the relevant-skill
// extraction step. With known skills the model must select from the embedded
// list; with an empty store it is free to propose any skills.
func skillSelectionPrompt(known []string) string {
	if len(known) == 0 {
		return strings.TrimSpace(proposeSkillsTemplate)
	}

	list := "- " + strings.Join(known, "\n- ")
	return strings.TrimSpace(strings.ReplaceAll(selectSkillsTemplate, "{{KNOWN_SKILLS}}", list))
}
