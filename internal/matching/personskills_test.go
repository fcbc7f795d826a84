package matching

import (
	"encoding/json"
	"testing"
)

func TestPersonSkillMapAddAndOrder(t *testing.T) {
	t.Parallel()

	m := NewPersonSkillMap()
	m.Add("Lius Hohmann", "JavaScript")
	m.Add("Ada Lovelace", "Java")
	m.Add("Lius Hohmann", "C#")

	persons := m.Persons()
	if len(persons) != 2 || persons[0] != "Lius Hohmann" || persons[1] != "Ada Lovelace" {
		t.Fatalf("unexpected person order: %v", persons)
	}

	skills := m.Skills("Lius Hohmann")
	if len(skills) != 2 || skills[0] != "JavaScript" || skills[1] != "C#" {
		t.Fatalf("unexpected skill order: %v", skills)
	}

	if m.Len() != 2 {
		t.Fatalf("unexpected length: %d", m.Len())
	}
}

func TestPersonSkillMapIgnoresDuplicatePairs(t *testing.T) {
	t.Parallel()

	m := NewPersonSkillMap()
	m.Add("Ada Lovelace", "Java")
	m.Add("Ada Lovelace", "Java")

	if skills := m.Skills("Ada Lovelace"); len(skills) != 1 {
		t.Fatalf("expected single skill entry, got %v", skills)
	}

	if m.Len() != 1 {
		t.Fatalf("expected single person, got %d", m.Len())
	}
}

func TestPersonSkillMapMarshalPreservesOrder(t *testing.T) {
	t.Parallel()

	m := NewPersonSkillMap()
	m.Add("Lius Hohmann", "JavaScript")
	m.Add("Ada Lovelace", "Java")
	m.Add("Lius Hohmann", "C#")

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var entries []personEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	if entries[0].Person != "Lius Hohmann" || entries[1].Person != "Ada Lovelace" {
		t.Fatalf("unexpected person order: %+v", entries)
	}

	if entries[0].Skills[0] != "JavaScript" || entries[0].Skills[1] != "C#" {
		t.Fatalf("unexpected skill order: %+v", entries[0].Skills)
	}
}

func TestPersonSkillMapMarshalEmpty(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewPersonSkillMap())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(data) != "[]" {
		t.Fatalf("expected empty array, got %s", data)
	}
}
