package domain

import (
	"fmt"
	"math/rand"
	"strings"
)

// Difficulty はAIの強さを表す
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// easyRandomOdds はEasyでランダムな手を打つ確率の分母（1/5）
const easyRandomOdds = 5

// Depth は難易度に対応する探索深さを返す
func (d Difficulty) Depth() int {
	switch d {
	case Easy:
		return 1
	case Medium:
		return 3
	case Hard:
		return 6
	default:
		return 3
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// Difficulties は選択可能な難易度の一覧
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty は名前または深さ(1/3/6)から難易度を読み取る
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "e", "1":
		return Easy, nil
	case "medium", "m", "3":
		return Medium, nil
	case "hard", "h", "6":
		return Hard, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q; valid: easy, medium, hard", s)
	}
}

// Policy は難易度に応じてAIの手を決める
// 乱数は外から渡すので、シードを固定すれば再現できる
type Policy struct {
	rng       *rand.Rand
	evaluator Evaluator
	parallel  bool
}

// NewPolicy は標準の評価器を使うPolicyを生成する
func NewPolicy(rng *rand.Rand) *Policy {
	return &Policy{
		rng:       rng,
		evaluator: NewHeuristicEvaluator(),
	}
}

// WithParallel はルート並列探索を使うかどうかを設定する
func (p *Policy) WithParallel(parallel bool) *Policy {
	p.parallel = parallel
	return p
}

// Solver は難易度に対応する探索器を返す
func (p *Policy) Solver(d Difficulty) MoveSolver {
	if p.parallel {
		return NewParallelSolver(p.evaluator, d.Depth())
	}
	return NewSolver(p.evaluator, d.Depth())
}

// Decide はAIの手と評価値を返す
// Easyでは1/5の確率で探索せずにランダムな合法手を選ぶ（評価値0）
func (p *Policy) Decide(b Board, d Difficulty) (int, int) {
	if d == Easy {
		moves := b.ValidMoves()
		if len(moves) > 0 && p.rng.Intn(easyRandomOdds) == 0 {
			return moves[p.rng.Intn(len(moves))], 0
		}
	}
	return p.Solver(d).BestMove(b)
}
