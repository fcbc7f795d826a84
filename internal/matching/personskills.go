package matching

import "encoding/json"

// PersonSkillMap accumulates, per person, the relevant skills they hold. It
// preserves first-appearance order of persons and the order in which skills
// were processed, and never counts the same (person, skill) pair twice.
type PersonSkillMap struct {
	order  []string
	skills map[string][]string
}

// NewPersonSkillMap creates an empty map.
func NewPersonSkillMap() *PersonSkillMap {
	return &PersonSkillMap{skills: make(map[string][]string)}
}

// Add records that person holds skill. Duplicate pairs are ignored.
func (m *PersonSkillMap) Add(person, skill string) {
	held, seen := m.skills[person]
	if !seen {
		m.order = append(m.order, person)
	}

	for _, s := range held {
		if s == skill {
			return
		}
	}

	m.skills[person] = append(held, skill)
}

// Persons returns person names in first-appearance order.
func (m *PersonSkillMap) Persons() []string {
	return m.order
}

// Skills returns the skills recorded for the given person, in processing
// order.
func (m *PersonSkillMap) Skills(person string) []string {
	return m.skills[person]
}

// Len returns the number of distinct persons in the map.
func (m *PersonSkillMap) Len() int {
	return len(m.order)
}

type personEntry struct {
	Person string   `json:"person"`
	Skills []string `json:"skills"`
}

// MarshalJSON serializes the map as an ordered array of person entries, so
// the model sees candidates in the order they were found.
func (m *PersonSkillMap) MarshalJSON() ([]byte, error) {
	entries := make([]personEntry, 0, len(m.order))
	for _, person := range m.order {
		entries = append(entries, personEntry{Person: person, Skills: m.skills[person]})
	}

	return json.Marshal(entries)
}
