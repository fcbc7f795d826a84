package matching

import (
	"strings"
	"testing"
)

func TestSkillSelectionPromptEmbedsKnownSkills(t *testing.T) {
	t.Parallel()

	prompt := skillSelectionPrompt([]string{"Java", "JavaScript", "Rust"})

	for _, skill := range []string{"- Java", "- JavaScript", "- Rust"} {
		if !strings.Contains(prompt, skill) {
			t.Fatalf("expected %q in prompt: %q", skill, prompt)
		}
	}

	if strings.Contains(prompt, "{{KNOWN_SKILLS}}") {
		t.Fatalf("placeholder not replaced: %q", prompt)
	}
}

func TestSkillSelectionPromptWithoutKnownSkills(t *testing.T) {
	t.Parallel()

	prompt := skillSelectionPrompt(nil)

	if prompt == skillSelectionPrompt([]string{"Java"}) {
		t.Fatal("expected a distinct prompt for an empty skill store")
	}

	if !strings.Contains(prompt, "No skills are tracked yet") {
		t.Fatalf("unexpected empty-store prompt: %q", prompt)
	}
}
