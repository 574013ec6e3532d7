package domain

import (
	"runtime"
	"sync"
)

// ParallelSolver はルートの各手を並列に探索するソルバー
// 各手を全幅の窓で評価してから列の昇順で最良を選ぶので、結果はSolverと一致する
type ParallelSolver struct {
	evaluator Evaluator
	maxDepth  int
	workers   int
}

// NewParallelSolver は新しいParallelSolverを生成する
func NewParallelSolver(evaluator Evaluator, maxDepth int) *ParallelSolver {
	return &ParallelSolver{
		evaluator: evaluator,
		maxDepth:  maxDepth,
		workers:   runtime.NumCPU(),
	}
}

// Search はルートのみ並列化して探索する
func (s *ParallelSolver) Search(b Board) Result {
	moves := b.ValidMoves()

	// 葉ならそのまま逐次版で評価
	if s.maxDepth <= 0 || IsTerminal(b) {
		st := &search{evaluator: s.evaluator, prune: true}
		col, score := st.minimax(b, s.maxDepth, negInf, posInf, true)
		return Result{Column: col, Score: score, Stats: st.stats}
	}

	type result struct {
		score int
		stats Stats
	}

	results := make([]result, len(moves))
	sem := make(chan struct{}, max(1, s.workers))
	var wg sync.WaitGroup

	for i, col := range moves {
		wg.Add(1)
		go func(idx, c int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			child := b.Copy()
			child.Drop(child.Height(c), c, AI)
			st := &search{evaluator: s.evaluator, prune: true}
			_, score := st.minimax(child, s.maxDepth-1, negInf, posInf, false)
			results[idx] = result{score: score, stats: st.stats}
		}(i, col)
	}

	wg.Wait()

	// 最初に見つかった最大値を採用
	res := Result{Column: moves[0], Score: negInf}
	res.Stats.Nodes = 1
	for i, r := range results {
		res.Stats.Add(r.stats)
		if r.score > res.Score {
			res.Score = r.score
			res.Column = moves[i]
		}
	}
	return res
}

// BestMove は現在の盤面から最良の手と評価値を返す
func (s *ParallelSolver) BestMove(b Board) (int, int) {
	res := s.Search(b)
	return res.Column, res.Score
}
