// Package guess implements a number guessing game with a terminal UI.
package guess

import (
	"fmt"
	"strings"
)

// Difficulty sets the guessing range and the number of tries.
type Difficulty struct {
	Name     string
	Min      int
	Max      int
	MaxTries int
}

var difficulties = map[string]Difficulty{
	"easy":   {Name: "Easy", Min: 1, Max: 50, MaxTries: 10},
	"medium": {Name: "Medium", Min: 1, Max: 100, MaxTries: 7},
	"hard":   {Name: "Hard", Min: 1, Max: 200, MaxTries: 5},
}

// DefaultDifficulty is used when no flag is given.
const DefaultDifficulty = "easy"

// ParseDifficulty resolves a difficulty name, case-insensitively.
func ParseDifficulty(name string) (Difficulty, error) {
	d, ok := difficulties[strings.ToLower(name)]
	if !ok {
		return Difficulty{}, fmt.Errorf("unknown difficulty %q, must be one of: easy, medium, hard", name)
	}
	return d, nil
}
