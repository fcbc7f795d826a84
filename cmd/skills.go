package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List all skills known to the store",
	Run: func(_ *cobra.Command, _ []string) {
		runSkills()
	},
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}

func runSkills() {
	ctx := context.Background()

	logger := newLogger()
	config := mustConfig(logger)

	store, err := newStore(ctx, config, logger)
	if err != nil {
		logger.Fatal("connecting to the skill store", zap.Error(err))
	}
	defer store.Close(ctx)

	skills, err := store.ListAllSkills(ctx)
	if err != nil {
		logger.Fatal("listing skills", zap.Error(err))
	}

	logger.Info("listing known skills", zap.Int("count", len(skills)))

	for _, skill := range skills {
		fmt.Println(skill)
	}
}
