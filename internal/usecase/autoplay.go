package usecase

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/nnaakkaaii/connect4/internal/domain"
)

// AutoPlayConfig は自己対局の設定
type AutoPlayConfig struct {
	Games      int
	Difficulty domain.Difficulty
	// OpponentDepth はPlayer側の探索深さ（0ならランダムに打つ）
	OpponentDepth int
	Delay         time.Duration
	UseParallel   bool
	Verbose       bool
}

// DefaultAutoPlayConfig はデフォルトの設定を返す
func DefaultAutoPlayConfig() AutoPlayConfig {
	return AutoPlayConfig{
		Games:         10,
		Difficulty:    domain.Medium,
		OpponentDepth: 0,
		Delay:         0,
		UseParallel:   false,
		Verbose:       false,
	}
}

// AutoPlayResult は自己対局の集計
type AutoPlayResult struct {
	AIWins     int
	PlayerWins int
	Draws      int
	Moves      int
}

// AutoPlay はAI同士（またはランダム対AI）で対局を繰り返し、結果を集計する
func AutoPlay(w io.Writer, rng *rand.Rand, config AutoPlayConfig) AutoPlayResult {
	var opponent domain.MoveSolver
	if config.OpponentDepth > 0 {
		// Player側は盤面を反転させてAI視点で探索する
		if config.UseParallel {
			opponent = domain.NewParallelSolver(domain.NewHeuristicEvaluator(), config.OpponentDepth)
		} else {
			opponent = domain.NewSolver(domain.NewHeuristicEvaluator(), config.OpponentDepth)
		}
	}

	fmt.Fprintln(w, "=== Connect Four AutoPlay ===")
	mode := "Sequential"
	if config.UseParallel {
		mode = "Parallel"
	}
	opp := "random"
	if opponent != nil {
		opp = fmt.Sprintf("depth %d", config.OpponentDepth)
	}
	fmt.Fprintf(w, "Games: %d, AI: %s (depth %d), Opponent: %s, Mode: %s\n\n",
		config.Games, config.Difficulty, config.Difficulty.Depth(), opp, mode)

	var result AutoPlayResult
	for i := 0; i < config.Games; i++ {
		game := domain.NewGame(rng, config.Difficulty)
		game.Policy().WithParallel(config.UseParallel)
		start := time.Now()

		for !game.IsOver() {
			if config.Verbose {
				fmt.Fprint(w, game.Board())
			}

			if game.Turn() == domain.AI {
				col, score, err := game.PlayAI()
				if err != nil {
					fmt.Fprintf(w, "game %d: ai move: %v\n", i+1, err)
					break
				}
				if config.Verbose {
					fmt.Fprintf(w, "AI: column %d (score %d)\n\n", col, score)
				}
			} else {
				col := opponentMove(rng, opponent, game.Board())
				if err := game.PlayHuman(col); err != nil {
					fmt.Fprintf(w, "game %d: opponent move: %v\n", i+1, err)
					break
				}
				if config.Verbose {
					fmt.Fprintf(w, "Opponent: column %d\n\n", col)
				}
			}

			if config.Delay > 0 {
				time.Sleep(config.Delay)
			}
		}

		outcome := game.Outcome()
		switch outcome {
		case domain.AIWins:
			result.AIWins++
		case domain.PlayerWins:
			result.PlayerWins++
		case domain.Draw:
			result.Draws++
		}
		moves := len(game.Moves())
		result.Moves += moves

		// 最終結果は常に表示
		fmt.Fprintf(w, "Game %d [%s]: %s in %d moves (%s)\n",
			i+1, game.ID(), outcome, moves, time.Since(start).Round(time.Millisecond))
	}

	fmt.Fprintln(w, "=== Summary ===")
	fmt.Fprintf(w, "AI wins: %d, Opponent wins: %d, Draws: %d\n", result.AIWins, result.PlayerWins, result.Draws)
	fmt.Fprintf(w, "Total Moves: %d\n", result.Moves)

	return result
}

// opponentMove はPlayer側の手を選ぶ
func opponentMove(rng *rand.Rand, opponent domain.MoveSolver, b domain.Board) int {
	moves := b.ValidMoves()
	if opponent == nil {
		return moves[rng.Intn(len(moves))]
	}
	col, _ := opponent.BestMove(b.Swapped())
	if col == domain.NoMove {
		return moves[0]
	}
	return col
}
