package domain

import "math"

// 終局時の評価値と探索窓の初期値
const (
	WinScore  = 1_000_000_000
	LossScore = -WinScore
	DrawScore = 0

	negInf = math.MinInt
	posInf = math.MaxInt
)

// MoveSolver は盤面からAIの手を選ぶ探索器
type MoveSolver interface {
	BestMove(b Board) (col, score int)
}

// Stats は1回の探索の統計
type Stats struct {
	Nodes   int // 訪れた局面数
	Cutoffs int // 枝刈りの回数
}

// Add は統計を合算する
func (s *Stats) Add(other Stats) {
	s.Nodes += other.Nodes
	s.Cutoffs += other.Cutoffs
}

// Result は探索の結果
type Result struct {
	Column int
	Score  int
	Stats  Stats
}

// MoveScore は初手ごとの評価値
type MoveScore struct {
	Column int
	Score  int
}

// search は1回の探索の状態を持つ
// 呼び出しごとに作るのでSolver自体は状態を持たない
type search struct {
	evaluator Evaluator
	prune     bool
	stats     Stats
}

// minimax は深さ制限付きミニマックス（pruneがtrueならαβ枝刈り）
// 葉の評価は手番に関係なく常にAI視点
func (s *search) minimax(b Board, depth, alpha, beta int, maximizing bool) (int, int) {
	s.stats.Nodes++

	moves := b.ValidMoves()
	aiWins := WinningMove(b, AI)
	playerWins := WinningMove(b, Player)
	terminal := aiWins || playerWins || len(moves) == 0

	if depth <= 0 || terminal {
		switch {
		case aiWins:
			return NoMove, WinScore
		case playerWins:
			return NoMove, LossScore
		case terminal:
			return NoMove, DrawScore
		default:
			return NoMove, s.evaluator.Evaluate(b, AI)
		}
	}

	if maximizing {
		value := negInf
		bestCol := moves[0]
		for _, col := range moves {
			child := b.Copy()
			child.Drop(child.Height(col), col, AI)
			_, score := s.minimax(child, depth-1, alpha, beta, false)

			if score > value {
				value = score
				bestCol = col
			}
			alpha = max(alpha, value)
			if s.prune && alpha >= beta {
				s.stats.Cutoffs++
				break
			}
		}
		return bestCol, value
	}

	value := posInf
	bestCol := moves[0]
	for _, col := range moves {
		child := b.Copy()
		child.Drop(child.Height(col), col, Player)
		_, score := s.minimax(child, depth-1, alpha, beta, true)

		if score < value {
			value = score
			bestCol = col
		}
		beta = min(beta, value)
		if s.prune && alpha >= beta {
			s.stats.Cutoffs++
			break
		}
	}
	return bestCol, value
}

// Solver はαβ枝刈り付きミニマックスで最良の手を探索する
type Solver struct {
	evaluator Evaluator
	maxDepth  int
}

// NewSolver は新しいSolverを生成する
func NewSolver(evaluator Evaluator, maxDepth int) *Solver {
	return &Solver{
		evaluator: evaluator,
		maxDepth:  maxDepth,
	}
}

// Depth は探索深さを返す
func (s *Solver) Depth() int {
	return s.maxDepth
}

// Minimax は指定した窓と手番で探索し、(列, 評価値)を返す
// 葉ではNoMoveを返す
func (s *Solver) Minimax(b Board, depth, alpha, beta int, maximizing bool) (int, int) {
	st := &search{evaluator: s.evaluator, prune: true}
	return st.minimax(b, depth, alpha, beta, maximizing)
}

// Search はAIの手番としてルートから探索し、統計と共に結果を返す
func (s *Solver) Search(b Board) Result {
	st := &search{evaluator: s.evaluator, prune: true}
	col, score := st.minimax(b, s.maxDepth, negInf, posInf, true)
	return Result{Column: col, Score: score, Stats: st.stats}
}

// BestMove は現在の盤面から最良の手と評価値を返す
// 終局している場合や深さ0の場合はNoMoveを返す
func (s *Solver) BestMove(b Board) (int, int) {
	res := s.Search(b)
	return res.Column, res.Score
}

// Analyze は合法手ごとの評価値を列の昇順で返す
// 各手は全幅の窓で評価するので値は正確
func (s *Solver) Analyze(b Board) []MoveScore {
	if s.maxDepth <= 0 || IsTerminal(b) {
		return nil
	}
	moves := b.ValidMoves()
	scores := make([]MoveScore, 0, len(moves))
	for _, col := range moves {
		child := b.Copy()
		child.Drop(child.Height(col), col, AI)
		_, score := s.Minimax(child, s.maxDepth-1, negInf, posInf, false)
		scores = append(scores, MoveScore{Column: col, Score: score})
	}
	return scores
}

// FullWidthSolver は枝刈りなしのミニマックスで探索する
// 結果はSolverと一致する（枝刈りは高速化のみ）
type FullWidthSolver struct {
	evaluator Evaluator
	maxDepth  int
}

// NewFullWidthSolver は新しいFullWidthSolverを生成する
func NewFullWidthSolver(evaluator Evaluator, maxDepth int) *FullWidthSolver {
	return &FullWidthSolver{
		evaluator: evaluator,
		maxDepth:  maxDepth,
	}
}

// Search はルートから全幅探索する
func (s *FullWidthSolver) Search(b Board) Result {
	st := &search{evaluator: s.evaluator}
	col, score := st.minimax(b, s.maxDepth, negInf, posInf, true)
	return Result{Column: col, Score: score, Stats: st.stats}
}

// BestMove は現在の盤面から最良の手と評価値を返す
func (s *FullWidthSolver) BestMove(b Board) (int, int) {
	res := s.Search(b)
	return res.Column, res.Score
}

// ChooseMove は標準の評価器で深さdepthの探索を行う
func ChooseMove(b Board, depth int) (int, int) {
	return NewSolver(NewHeuristicEvaluator(), depth).BestMove(b)
}
