package domain

// 窓の評価値
const (
	scoreFour            = 100
	scoreThree           = 10
	scoreTwo             = 5
	penaltyOpponentThree = -80

	centerWeight = 6
)

// Evaluator はBoardをside視点で評価してスコアを返すインターフェース
type Evaluator interface {
	Evaluate(b Board, side Cell) int
}

// WeightedEvaluator は複数のEvaluatorを係数付きで組み合わせる
type WeightedEvaluator struct {
	evaluators []Evaluator
	weights    []int
}

// NewWeightedEvaluator は係数付きEvaluatorを生成する
func NewWeightedEvaluator(evaluators []Evaluator, weights []int) *WeightedEvaluator {
	return &WeightedEvaluator{
		evaluators: evaluators,
		weights:    weights,
	}
}

// Evaluate は全てのEvaluatorの重み付き和を返す
func (w *WeightedEvaluator) Evaluate(b Board, side Cell) int {
	score := 0
	for i, ev := range w.evaluators {
		score += w.weights[i] * ev.Evaluate(b, side)
	}
	return score
}

// NewHeuristicEvaluator は中央列ボーナスと窓評価を組み合わせた標準の評価器を返す
// ScorePositionと同じ値になる
func NewHeuristicEvaluator() *WeightedEvaluator {
	return NewWeightedEvaluator(
		[]Evaluator{&CenterEvaluator{}, &WindowEvaluator{}},
		[]int{centerWeight, 1},
	)
}

// CenterEvaluator は中央列にあるsideの石の数で評価する
// 中央列は多くのラインに参加できるため
type CenterEvaluator struct{}

func (e *CenterEvaluator) Evaluate(b Board, side Cell) int {
	n := 0
	for r := 0; r < Rows; r++ {
		if b.cells[r][Cols/2] == side {
			n++
		}
	}
	return n
}

// WindowEvaluator は全ての4マス窓の評価値の合計で評価する
type WindowEvaluator struct{}

func (e *WindowEvaluator) Evaluate(b Board, side Cell) int {
	score := 0
	forEachWindow(b, func(w Window) bool {
		score += EvaluateWindow(w, side)
		return true
	})
	return score
}

// EvaluateWindow は1つの窓をside視点で採点する
// 相手の3つ並びへのペナルティは自分の3つ並びより重い
func EvaluateWindow(w Window, side Cell) int {
	own := w.count(side)
	empty := w.count(Empty)
	opp := w.count(side.Opponent())

	score := 0
	switch {
	case own == 4:
		score += scoreFour
	case own == 3 && empty == 1:
		score += scoreThree
	case own == 2 && empty == 2:
		score += scoreTwo
	}

	if opp == 3 && empty == 1 {
		score += penaltyOpponentThree
	}
	return score
}

// ScorePosition は終局していない盤面をside視点で評価する
func ScorePosition(b Board, side Cell) int {
	center := (&CenterEvaluator{}).Evaluate(b, side)
	return centerWeight*center + (&WindowEvaluator{}).Evaluate(b, side)
}
