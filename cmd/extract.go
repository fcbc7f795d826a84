package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills from a person's biography",
	Long: "Extract skills from a free-text biography. The extracted skills are " +
		"written to the store only when persist-extracted-skills is enabled in " +
		"the configuration.",
	Run: func(cmd *cobra.Command, _ []string) {
		runExtract(cmd)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("person", "p", "", "name of the person the biography belongs to")
	extractCmd.Flags().String("bio", "", "biography text")
	extractCmd.Flags().String("bio-file", "", "file containing the biography text")

	extractCmd.MarkFlagRequired("person")
	extractCmd.MarkFlagsOneRequired("bio", "bio-file")
	extractCmd.MarkFlagsMutuallyExclusive("bio", "bio-file")
}

func runExtract(cmd *cobra.Command) {
	ctx := context.Background()

	logger := newLogger()
	config := mustConfig(logger)

	person := cmd.Flag("person").Value.String()

	biography, err := resolveBiography(cmd)
	if err != nil {
		logger.Fatal("reading biography", zap.Error(err))
	}

	store, err := newStore(ctx, config, logger)
	if err != nil {
		logger.Fatal("connecting to the skill store", zap.Error(err))
	}
	defer store.Close(ctx)

	workflow, err := newWorkflow(ctx, config, store, logger)
	if err != nil {
		logger.Fatal("building the matching workflow", zap.Error(err))
	}

	skills, err := workflow.ExtractSkills(ctx, person, biography)
	if err != nil {
		logger.Fatal("extracting skills", zap.Error(err))
	}

	if len(skills) == 0 {
		logger.Info("exiting", zap.String("reason", "no skills found in biography"))
		return
	}

	for _, skill := range skills {
		fmt.Println(skill)
	}

	if !config.PersistExtractedSkills {
		logger.Info("extracted skills were not persisted",
			zap.String("hint", "set persist-extracted-skills: true in the configuration to write them to the store"),
		)
	}
}

func resolveBiography(cmd *cobra.Command) (string, error) {
	if file := cmd.Flag("bio-file").Value.String(); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading biography from file %q: %w", file, err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	return strings.TrimSpace(cmd.Flag("bio").Value.String()), nil
}
