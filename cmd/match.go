package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var matchCmd = &cobra.Command{
	Use:   "match [problem description]",
	Short: "Find the person best suited to solve a problem",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		runMatch(args[0])
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

// runMatch executes the skill matching workflow for the given problem text.
func runMatch(problem string) {
	ctx := context.Background()

	logger := newLogger()
	config := mustConfig(logger)

	logger.Info("starting the skill matching", zap.String("problem", problem))

	store, err := newStore(ctx, config, logger)
	if err != nil {
		logger.Fatal("connecting to the skill store",
			zap.Error(err),
			zap.String("hint", "set the neo4j section in the configuration file or the NEO4J_* environment variables"),
		)
	}
	defer store.Close(ctx)

	workflow, err := newWorkflow(ctx, config, store, logger)
	if err != nil {
		logger.Fatal("building the matching workflow", zap.Error(err))
	}

	result, err := workflow.Match(ctx, problem)
	if err != nil {
		logger.Fatal("matching failed", zap.Error(err))
	}

	if result == nil {
		logger.Info("exiting", zap.String("reason", "no suitable match found"))
		return
	}

	logger.Info("found best match",
		zap.String("person", result.PersonName),
		zap.String("reason", result.Reason),
	)

	fmt.Printf("%s: %s\n", result.PersonName, result.Reason)
}
