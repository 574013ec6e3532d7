package usecase

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/nnaakkaaii/connect4/internal/domain"
)

// PlayConfig は対局の設定
type PlayConfig struct {
	Difficulty domain.Difficulty
	// First は先手（Emptyならランダム）
	First domain.Cell
}

// DefaultPlayConfig はデフォルトの設定を返す
func DefaultPlayConfig() PlayConfig {
	return PlayConfig{
		Difficulty: domain.Medium,
		First:      domain.Empty,
	}
}

// PlayGame はCLIで人間対AIの対局を実行し、結果を返す
func PlayGame(r io.Reader, w io.Writer, rng *rand.Rand, config PlayConfig) domain.Outcome {
	var game *domain.Game
	if config.First == domain.Empty {
		game = domain.NewGame(rng, config.Difficulty)
	} else {
		game = domain.NewGameWithStarter(rng, config.Difficulty, config.First)
	}
	reader := bufio.NewReader(r)

	fmt.Fprintln(w, "=== Connect Four ===")
	fmt.Fprintf(w, "Game %s, difficulty %s (depth %d)\n", game.ID(), game.Difficulty(), game.Difficulty().Depth())
	fmt.Fprintf(w, "You are %s, the AI is %s. Enter a column 0-%d, q=Quit\n", domain.Player.Symbol(), domain.AI.Symbol(), domain.Cols-1)
	fmt.Fprintln(w)

	for !game.IsOver() {
		if game.Turn() == domain.AI {
			col, score, err := game.PlayAI()
			if err != nil {
				fmt.Fprintf(w, "AI failed to move: %v\n", err)
				return game.Outcome()
			}
			fmt.Fprintf(w, "AI: column %d (score %d)\n\n", col, score)
			continue
		}

		fmt.Fprint(w, game.Board())
		fmt.Fprint(w, "Column: ")
		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			break
		}

		input = strings.TrimSpace(strings.ToLower(input))
		if input == "q" {
			fmt.Fprintln(w, "Quit.")
			return game.Outcome()
		}

		col, ok := parseColumn(input)
		if !ok {
			fmt.Fprintf(w, "Invalid input. Enter a column 0-%d or q to quit.\n", domain.Cols-1)
			continue
		}

		if err := game.PlayHuman(col); err != nil {
			if errors.Is(err, domain.ErrInvalidColumn) {
				fmt.Fprintln(w, "That column is full.")
				continue
			}
			fmt.Fprintf(w, "Cannot play: %v\n", err)
			continue
		}
		fmt.Fprintf(w, "You: column %d\n", col)
	}

	fmt.Fprint(w, game.Board())
	switch outcome := game.Outcome(); outcome {
	case domain.PlayerWins:
		fmt.Fprintln(w, "You win!")
	case domain.AIWins:
		fmt.Fprintln(w, "AI wins!")
	case domain.Draw:
		fmt.Fprintln(w, "Draw.")
	}
	return game.Outcome()
}

func parseColumn(input string) (int, bool) {
	col, err := strconv.Atoi(input)
	if err != nil || col < 0 || col >= domain.Cols {
		return 0, false
	}
	return col, true
}
