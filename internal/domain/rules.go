package domain

// WindowSize は勝利に必要な連続数
const WindowSize = 4

// Window は一直線に並んだ連続4マス
type Window [WindowSize]Cell

// Outcome は対局の結果を表す
type Outcome int

const (
	Ongoing Outcome = iota
	PlayerWins
	AIWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case PlayerWins:
		return "Player wins"
	case AIWins:
		return "AI wins"
	case Draw:
		return "Draw"
	default:
		return "Ongoing"
	}
}

// forEachWindow は全ての4マス窓を横・縦・右上がり・右下がりの順に走査する
// fnがfalseを返すと走査を打ち切る
func forEachWindow(b Board, fn func(w Window) bool) {
	// 横
	for r := 0; r < Rows; r++ {
		for c := 0; c <= Cols-WindowSize; c++ {
			w := Window{b.cells[r][c], b.cells[r][c+1], b.cells[r][c+2], b.cells[r][c+3]}
			if !fn(w) {
				return
			}
		}
	}

	// 縦
	for c := 0; c < Cols; c++ {
		for r := 0; r <= Rows-WindowSize; r++ {
			w := Window{b.cells[r][c], b.cells[r+1][c], b.cells[r+2][c], b.cells[r+3][c]}
			if !fn(w) {
				return
			}
		}
	}

	// 右上がり (r+i, c+i)
	for r := 0; r <= Rows-WindowSize; r++ {
		for c := 0; c <= Cols-WindowSize; c++ {
			w := Window{b.cells[r][c], b.cells[r+1][c+1], b.cells[r+2][c+2], b.cells[r+3][c+3]}
			if !fn(w) {
				return
			}
		}
	}

	// 右下がり (r-i, c+i)
	for r := WindowSize - 1; r < Rows; r++ {
		for c := 0; c <= Cols-WindowSize; c++ {
			w := Window{b.cells[r][c], b.cells[r-1][c+1], b.cells[r-2][c+2], b.cells[r-3][c+3]}
			if !fn(w) {
				return
			}
		}
	}
}

// count は窓の中のsideの数を返す
func (w Window) count(side Cell) int {
	n := 0
	for _, c := range w {
		if c == side {
			n++
		}
	}
	return n
}

// WinningMove はsideが4つ並んでいるかどうかを返す
func WinningMove(b Board, side Cell) bool {
	if side == Empty {
		return false
	}
	found := false
	forEachWindow(b, func(w Window) bool {
		if w.count(side) == WindowSize {
			found = true
			return false
		}
		return true
	})
	return found
}

// IsTerminal はどちらかが勝っているか、盤面が埋まっているかを返す
func IsTerminal(b Board) bool {
	return WinningMove(b, Player) || WinningMove(b, AI) || len(b.ValidMoves()) == 0
}

// CheckOutcome は盤面から対局の結果を判定する
func CheckOutcome(b Board) Outcome {
	switch {
	case WinningMove(b, AI):
		return AIWins
	case WinningMove(b, Player):
		return PlayerWins
	case len(b.ValidMoves()) == 0:
		return Draw
	default:
		return Ongoing
	}
}
