package matching

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spigell/skill-scout/internal/ai"
	"go.uber.org/zap"
)

// SkillStore is the graph-store surface the workflow needs.
type SkillStore interface {
	ListAllSkills(ctx context.Context) ([]string, error)
	ListPersonsWithSkill(ctx context.Context, skill string) ([]string, error)
	AssignSkill(ctx context.Context, person, skill string) error
}

// MatchResult is the final recommendation: a person and a short
// justification.
type MatchResult struct {
	PersonName string `json:"person_name"`
	Reason     string `json:"reason"`
}

type skillRecommendation struct {
	Skills []string `json:"skills"`
}

var skillListSchema = ai.Object(map[string]*ai.Property{
	"skills": {
		Type:        "array",
		Description: "Skill names ordered from most to least relevant",
		Items:       &ai.Property{Type: "string"},
	},
})

var matchSchema = ai.Object(map[string]*ai.Property{
	"person_name": {
		Type:        "string",
		Description: "Name of the person best suited to the problem",
	},
	"reason": {
		Type:        "string",
		Description: "Short justification for the choice",
	},
})

// Options tune workflow behavior.
type Options struct {
	// PersistExtractedSkills enables writing skills extracted from a
	// biography back to the store. Off by default.
	PersistExtractedSkills bool
}

// Workflow orchestrates the skill matching pipeline: discover known skills,
// extract the relevant ones, locate candidate persons, select the best
// match. Each invocation is independent; the workflow holds no state across
// calls.
type Workflow struct {
	store            SkillStore
	extractor        ai.Extractor
	logger           *zap.Logger
	persistExtracted bool
}

// New creates a Workflow with its two collaborators injected.
func New(store SkillStore, extractor ai.Extractor, logger *zap.Logger, opts Options) *Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Workflow{
		store:            store,
		extractor:        extractor,
		logger:           logger,
		persistExtracted: opts.PersistExtractedSkills,
	}
}

// Match runs the full pipeline for the given problem description. A nil
// result with a nil error means no recommendation could be made: either the
// model found no relevant skills or it declined to pick a person. Any store
// or transport failure aborts the whole run.
func (w *Workflow) Match(ctx context.Context, problem string) (*MatchResult, error) {
	known, err := w.store.ListAllSkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing known skills: %w", err)
	}

	w.logger.Debug("discovered known skills", zap.Int("count", len(known)))

	var rec skillRecommendation
	ok, err := w.extractor.Extract(ctx, skillSelectionPrompt(known), problem, skillListSchema, &rec)
	if err != nil {
		return nil, fmt.Errorf("extracting relevant skills: %w", err)
	}

	if !ok || len(rec.Skills) == 0 {
		w.logger.Info("no relevant skills found for the problem")
		return nil, nil
	}

	w.logger.Info("extracted relevant skills", zap.Strings("skills", rec.Skills))

	candidates := NewPersonSkillMap()
	for _, skill := range rec.Skills {
		persons, err := w.store.ListPersonsWithSkill(ctx, skill)
		if err != nil {
			return nil, fmt.Errorf("locating persons with skill %q: %w", skill, err)
		}

		for _, person := range persons {
			candidates.Add(person, skill)
		}
	}

	w.logger.Info("located candidate persons", zap.Int("count", candidates.Len()))

	payload, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing candidates: %w", err)
	}

	userText := problem + "\n\nCandidates:\n" + string(payload)

	var result MatchResult
	ok, err = w.extractor.Extract(ctx, pickPersonPrompt, userText, matchSchema, &result)
	if err != nil {
		return nil, fmt.Errorf("selecting best match: %w", err)
	}

	if !ok {
		w.logger.Info("model declined to pick a person")
		return nil, nil
	}

	return &result, nil
}

// ExtractSkills extracts the skills mentioned in a person's free-text
// biography. The extracted skills are persisted via AssignSkill only when
// the workflow was configured with PersistExtractedSkills; otherwise the
// write is deliberately skipped.
func (w *Workflow) ExtractSkills(ctx context.Context, person, biography string) ([]string, error) {
	var rec skillRecommendation
	ok, err := w.extractor.Extract(ctx, extractBioPrompt, biography, skillListSchema, &rec)
	if err != nil {
		return nil, fmt.Errorf("extracting skills from biography: %w", err)
	}

	if !ok || len(rec.Skills) == 0 {
		w.logger.Info("no skills found in biography", zap.String("person", person))
		return nil, nil
	}

	if !w.persistExtracted {
		w.logger.Info("skipping persistence of extracted skills",
			zap.String("person", person),
			zap.Strings("skills", rec.Skills),
		)
		return rec.Skills, nil
	}

	for _, skill := range rec.Skills {
		if err := w.store.AssignSkill(ctx, person, skill); err != nil {
			return nil, fmt.Errorf("persisting extracted skill %q: %w", skill, err)
		}
	}

	w.logger.Info("persisted extracted skills",
		zap.String("person", person),
		zap.Strings("skills", rec.Skills),
	)

	return rec.Skills, nil
}
