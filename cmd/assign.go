package cmd

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign a skill to a person, creating both when absent",
	Run: func(cmd *cobra.Command, _ []string) {
		runAssign(cmd)
	},
}

func init() {
	rootCmd.AddCommand(assignCmd)

	assignCmd.Flags().StringP("person", "p", "", "name of the person")
	assignCmd.Flags().StringP("skill", "s", "", "name of the skill")
	assignCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")

	assignCmd.MarkFlagRequired("person")
	assignCmd.MarkFlagRequired("skill")
}

func runAssign(cmd *cobra.Command) {
	ctx := context.Background()

	logger := newLogger()
	config := mustConfig(logger)

	person := cmd.Flag("person").Value.String()
	skill := cmd.Flag("skill").Value.String()

	if cmd.Flag("yes").Value.String() == "false" {
		prompt := promptui.Select{
			Label: fmt.Sprintf("Assign skill %q to %q?", skill, person),
			Items: []string{PromptYes, PromptNo},
		}

		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if action != PromptYes {
			logger.Info("exiting", zap.String("reason", "got no from prompt"))
			return
		}
	}

	store, err := newStore(ctx, config, logger)
	if err != nil {
		logger.Fatal("connecting to the skill store", zap.Error(err))
	}
	defer store.Close(ctx)

	if err := store.AssignSkill(ctx, person, skill); err != nil {
		logger.Fatal("assigning skill", zap.Error(err))
	}

	logger.Info("successfully assigned skill",
		zap.String("person", person),
		zap.String("skill", skill),
	)
}
