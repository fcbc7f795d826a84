package skillstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"go.uber.org/zap"
)

const (
	listSkillsQuery = `
		MATCH (s:Skill)
		RETURN s.name AS name
		ORDER BY name
	`

	listPersonsQuery = `
		MATCH (p:Person)-[:HAS_SKILL]->(:Skill {name: $skill})
		RETURN p.name AS name
		ORDER BY name
	`

	assignSkillQuery = `
		MERGE (p:Person {name: $person})
		MERGE (s:Skill {name: $skill})
		MERGE (p)-[:HAS_SKILL]->(s)
	`
)

// Config holds the connection parameters for the graph store. All fields are
// required.
type Config struct {
	URI      string
	Username string
	Password string
}

// Store is the Neo4j-backed adapter for persons and their skills.
type Store struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// New creates a Store and verifies connectivity to the graph store. Missing
// connection parameters are a configuration error.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Store, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("verify neo4j connectivity: %w", err)
	}

	return &Store{driver: driver, logger: logger}, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.URI) == "" {
		return errors.New("neo4j uri is required")
	}
	if strings.TrimSpace(c.Username) == "" {
		return errors.New("neo4j username is required")
	}
	if strings.TrimSpace(c.Password) == "" {
		return errors.New("neo4j password is required")
	}
	return nil
}

// ListAllSkills returns the names of all known skills. An empty store yields
// an empty slice.
func (s *Store) ListAllSkills(ctx context.Context) ([]string, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, listSkillsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	skills, err := collectNames(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	s.logger.Debug("listed known skills", zap.Int("count", len(skills)))

	return skills, nil
}

// ListPersonsWithSkill returns the names of all persons holding the given
// skill. Nobody holding it yields an empty slice.
func (s *Store) ListPersonsWithSkill(ctx context.Context, skill string) ([]string, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, listPersonsQuery, map[string]any{"skill": skill})
	if err != nil {
		return nil, fmt.Errorf("list persons with skill %q: %w", skill, err)
	}

	persons, err := collectNames(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("list persons with skill %q: %w", skill, err)
	}

	s.logger.Debug("listed persons with skill",
		zap.String("skill", skill),
		zap.Int("count", len(persons)),
	)

	return persons, nil
}

// AssignSkill links a person to a skill, creating both nodes when absent.
// The MERGE statement makes the call idempotent: a second call leaves the
// store unchanged.
func (s *Store) AssignSkill(ctx context.Context, person, skill string) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	if _, err := session.Run(ctx, assignSkillQuery, map[string]any{
		"person": person,
		"skill":  skill,
	}); err != nil {
		return fmt.Errorf("assign skill %q to %q: %w", skill, person, err)
	}

	s.logger.Debug("assigned skill",
		zap.String("person", person),
		zap.String("skill", skill),
	)

	return nil
}

// Close releases the underlying driver.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func collectNames(ctx context.Context, result neo4j.ResultWithContext) ([]string, error) {
	names := make([]string, 0)
	for result.Next(ctx) {
		names = append(names, stringColumn(result.Record(), "name"))
	}

	if err := result.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

func stringColumn(record *db.Record, key string) string {
	if record == nil {
		return ""
	}

	value, ok := record.Get(key)
	if !ok {
		return ""
	}

	name, _ := value.(string)
	return name
}
