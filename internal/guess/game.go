package guess

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// outcome of evaluating one guess.
type outcome int

const (
	outcomeNone outcome = iota
	outcomeTooLow
	outcomeTooHigh
	outcomeOutOfRange
	outcomeNotANumber
	outcomeWin
)

// Model is the bubbletea model for one game.
type Model struct {
	difficulty Difficulty
	secret     int
	triesLeft  int
	input      string
	lastGuess  int
	last       outcome
	won        bool
	lost       bool
}

// NewModel starts a game with the given secret number. The secret must
// lie within the difficulty's range.
func NewModel(difficulty Difficulty, secret int) Model {
	return Model{
		difficulty: difficulty,
		secret:     secret,
		triesLeft:  difficulty.MaxTries,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "enter":
		if m.won || m.lost {
			return m, tea.Quit
		}
		return m.evaluate(), nil
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	}

	if key := keyMsg.String(); len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		if !m.won && !m.lost {
			m.input += key
		}
	}
	return m, nil
}

// evaluate checks the current input against the secret. Out-of-range
// guesses do not consume a try.
func (m Model) evaluate() Model {
	input := m.input
	m.input = ""

	guess, err := strconv.Atoi(input)
	if err != nil {
		m.last = outcomeNotANumber
		return m
	}
	m.lastGuess = guess

	if guess < m.difficulty.Min || guess > m.difficulty.Max {
		m.last = outcomeOutOfRange
		return m
	}

	switch {
	case guess == m.secret:
		m.last = outcomeWin
		m.won = true
	case guess < m.secret:
		m.last = outcomeTooLow
		m.triesLeft--
	default:
		m.last = outcomeTooHigh
		m.triesLeft--
	}
	if !m.won && m.triesLeft == 0 {
		m.lost = true
	}
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Difficulty: %s Mode\n", m.difficulty.Name)
	fmt.Fprintf(&b, "I'm thinking of a number between %d and %d.\n", m.difficulty.Min, m.difficulty.Max)

	switch {
	case m.won:
		fmt.Fprintf(&b, "\nGreat job, you guessed correctly! The secret number is: %d\n", m.secret)
		b.WriteString("\nPress enter or q to exit.\n")
		return b.String()
	case m.lost:
		b.WriteString(m.feedbackLine())
		fmt.Fprintf(&b, "\nSorry, you ran out of tries! The secret number was: %d.\n", m.secret)
		b.WriteString("\nPress enter or q to exit.\n")
		return b.String()
	}

	b.WriteString("Try to guess the number!\n")
	b.WriteString(m.feedbackLine())
	fmt.Fprintf(&b, "\n(You have %d tries remaining)\n", m.triesLeft)
	fmt.Fprintf(&b, "\nYour guess: %s\n", m.input)
	b.WriteString("\nPress enter to submit | q to quit\n")
	return b.String()
}

// feedbackLine describes the result of the previous guess.
func (m Model) feedbackLine() string {
	switch m.last {
	case outcomeTooLow:
		return fmt.Sprintf("\nYour guess %d is too low. Try again.\n", m.lastGuess)
	case outcomeTooHigh:
		return fmt.Sprintf("\nYour guess %d is too high. Try again.\n", m.lastGuess)
	case outcomeOutOfRange:
		return fmt.Sprintf("\nMake sure your guess is within the proper range (%d-%d).\n",
			m.difficulty.Min, m.difficulty.Max)
	case outcomeNotANumber:
		return "\nEnter a number before pressing enter.\n"
	default:
		return ""
	}
}

// Won reports whether the game ended with a correct guess.
func (m Model) Won() bool { return m.won }

// Lost reports whether the game ended with no tries left.
func (m Model) Lost() bool { return m.lost }
