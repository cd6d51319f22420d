package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jerrytigerxu/go-projects/internal/guess"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var difficultyName string

	cmd := &cobra.Command{
		Use:           "guessgame",
		Short:         "Guess the secret number",
		Long:          "guessgame picks a secret number and gives you a limited number of tries to find it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			difficulty, err := guess.ParseDifficulty(difficultyName)
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			secret := rng.Intn(difficulty.Max-difficulty.Min+1) + difficulty.Min

			model := guess.NewModel(difficulty, secret)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&difficultyName, "difficulty", "d", guess.DefaultDifficulty,
		"difficulty level (easy: 1-50, 10 tries; medium: 1-100, 7 tries; hard: 1-200, 5 tries)")
	return cmd
}
