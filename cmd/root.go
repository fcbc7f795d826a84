package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spigell/skill-scout/internal/ai"
	"github.com/spigell/skill-scout/internal/ai/gemini"
	"github.com/spigell/skill-scout/internal/logger"
	"github.com/spigell/skill-scout/internal/matching"
	"github.com/spigell/skill-scout/internal/secrets"
	"github.com/spigell/skill-scout/internal/skillstore"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "skill-scout"
)

type Config struct {
	Neo4j                  *Neo4jConfig `mapstructure:"neo4j"`
	AI                     *AIConfig    `mapstructure:"ai"`
	PersistExtractedSkills bool         `mapstructure:"persist-extracted-skills"`
}

type Neo4jConfig struct {
	URI          string `mapstructure:"uri"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	PasswordFile string `mapstructure:"password-file"`
}

type AIConfig struct {
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "skill-scout is a simple cli for matching people to problems by the skills tracked in a graph store",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	envBindings := map[string]string{
		"neo4j.uri":              "NEO4J_URI",
		"neo4j.username":         "NEO4J_USERNAME",
		"neo4j.password":         "NEO4J_PASSWORD",
		"neo4j.password-file":    "NEO4J_PASSWORD_FILE",
		"ai.gemini.api-key-file": "GEMINI_API_KEY_FILE",
	}
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is skill-scout.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// An explicitly requested config file must parse.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app + ".yaml")

	// Without a config file the environment can still carry the connection
	// parameters, so only parse errors are fatal here.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}

// newLogger builds the application logger or exits.
func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	return l
}

// mustConfig loads the configuration or exits.
func mustConfig(l *zap.Logger) *Config {
	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	return config
}

// newStore connects to the graph store described by the configuration.
func newStore(ctx context.Context, config *Config, l *zap.Logger) (*skillstore.Store, error) {
	neo := config.Neo4j
	if neo == nil {
		neo = &Neo4jConfig{}
	}

	password, err := secrets.Load(secrets.Source{
		Name:  "neo4j password",
		Value: neo.Password,
		File:  neo.PasswordFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set neo4j.password-file or NEO4J_PASSWORD_FILE)", err)
	}

	return skillstore.New(ctx, skillstore.Config{
		URI:      neo.URI,
		Username: neo.Username,
		Password: password,
	}, l)
}

// newExtractor builds the structured extraction client for the configured
// provider.
func newExtractor(ctx context.Context, cfg *AIConfig, l *zap.Logger) (ai.Extractor, error) {
	if cfg == nil {
		cfg = &AIConfig{}
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	gcfg := cfg.Gemini
	if gcfg == nil {
		gcfg = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: gcfg.APIKey,
		File:  gcfg.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	client, err := gemini.NewClient(ctx, apiKey, gcfg.Model)
	if err != nil {
		return nil, err
	}

	extLogger := logger.WithCommonFields(l, "gemini", client.Model())

	return gemini.NewExtractor(client, gcfg.MaxLogLength, extLogger), nil
}

// newWorkflow wires the store and extractor into the matching workflow.
func newWorkflow(ctx context.Context, config *Config, store *skillstore.Store, l *zap.Logger) (*matching.Workflow, error) {
	extractor, err := newExtractor(ctx, config.AI, l)
	if err != nil {
		return nil, fmt.Errorf("building extraction client: %w", err)
	}

	return matching.New(store, extractor, l, matching.Options{
		PersistExtractedSkills: config.PersistExtractedSkills,
	}), nil
}
