package domain

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// Game は1局分の状態を管理する
type Game struct {
	id         uuid.UUID
	board      Board
	turn       Cell
	difficulty Difficulty
	moves      []int
	policy     *Policy
}

// NewGame は新しい対局を開始する（先手はランダム）
func NewGame(rng *rand.Rand, difficulty Difficulty) *Game {
	first := Player
	if rng.Intn(2) == 1 {
		first = AI
	}
	return NewGameWithStarter(rng, difficulty, first)
}

// NewGameWithStarter は先手を指定して対局を開始する
func NewGameWithStarter(rng *rand.Rand, difficulty Difficulty, first Cell) *Game {
	return &Game{
		id:         uuid.New(),
		board:      NewBoard(),
		turn:       first,
		difficulty: difficulty,
		policy:     NewPolicy(rng),
	}
}

// ID は対局の識別子を返す
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Board は現在の盤面を返す
func (g *Game) Board() Board {
	return g.board
}

// Turn は現在の手番を返す
func (g *Game) Turn() Cell {
	return g.turn
}

// Difficulty は難易度を返す
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

// Policy は手を決めるPolicyを返す
func (g *Game) Policy() *Policy {
	return g.policy
}

// Moves はこれまでに打たれた列を順に返す
func (g *Game) Moves() []int {
	out := make([]int, len(g.moves))
	copy(out, g.moves)
	return out
}

// Outcome は対局の結果を返す
func (g *Game) Outcome() Outcome {
	return CheckOutcome(g.board)
}

// IsOver は対局が終わっているかどうかを返す
func (g *Game) IsOver() bool {
	return g.Outcome() != Ongoing
}

// PlayHuman は人間の手を適用する
func (g *Game) PlayHuman(col int) error {
	return g.play(Player, col)
}

// PlayAI はAIの手を決めて適用し、選んだ列と評価値を返す
func (g *Game) PlayAI() (int, int, error) {
	if g.IsOver() {
		return NoMove, 0, ErrGameOver
	}
	if g.turn != AI {
		return NoMove, 0, ErrNotYourTurn
	}
	col, score := g.policy.Decide(g.board.Copy(), g.difficulty)
	if err := g.play(AI, col); err != nil {
		return NoMove, 0, fmt.Errorf("ai move: %w", err)
	}
	return col, score, nil
}

func (g *Game) play(side Cell, col int) error {
	if g.IsOver() {
		return ErrGameOver
	}
	if g.turn != side {
		return fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.turn)
	}
	if _, err := ApplyMove(&g.board, col, side); err != nil {
		return err
	}
	g.moves = append(g.moves, col)
	g.turn = side.Opponent()
	return nil
}
