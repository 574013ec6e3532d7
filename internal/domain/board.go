package domain

import (
	"fmt"
	"strings"
)

// 盤面のサイズ（6行×7列、0行目が最下段）
const (
	Rows = 6
	Cols = 7
)

// NoMove は手が選ばれなかったことを表す列番号
const NoMove = -1

// Cell はマスの状態を表す
type Cell int

const (
	Empty Cell = iota
	Player
	AI
)

// Opponent は相手側を返す（Emptyの場合はEmpty）
func (c Cell) Opponent() Cell {
	switch c {
	case Player:
		return AI
	case AI:
		return Player
	default:
		return Empty
	}
}

// Symbol は表示用の1文字を返す
func (c Cell) Symbol() string {
	switch c {
	case Player:
		return "X"
	case AI:
		return "O"
	default:
		return "."
	}
}

func (c Cell) String() string {
	switch c {
	case Player:
		return "Player"
	case AI:
		return "AI"
	default:
		return "Empty"
	}
}

// Board は6x7の盤面を表す
// 値型なので代入するだけでディープコピーになる
type Board struct {
	cells [Rows][Cols]Cell
}

// NewBoard は空のBoardを生成する
func NewBoard() Board {
	return Board{}
}

// NewBoardFromCells はセルの値を指定してBoardを生成する
// cells[0]が最下段
func NewBoardFromCells(cells [Rows][Cols]Cell) Board {
	return Board{cells: cells}
}

// Get は指定した位置のセル値を取得する
func (b Board) Get(row, col int) Cell {
	return b.cells[row][col]
}

// Copy はBoardのコピーを返す
func (b Board) Copy() Board {
	var newCells [Rows][Cols]Cell
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			newCells[r][c] = b.cells[r][c]
		}
	}
	return Board{cells: newCells}
}

// IsValidMove は列に石を落とせるかどうかを返す
func (b Board) IsValidMove(col int) bool {
	if col < 0 || col >= Cols {
		return false
	}
	return b.cells[Rows-1][col] == Empty
}

// NextOpenRow は列の一番下の空きマスの行番号を返す
// 満杯の列で呼ぶのは呼び出し側の契約違反なのでErrIllegalStateを返す
func (b Board) NextOpenRow(col int) (int, error) {
	if col < 0 || col >= Cols {
		return 0, fmt.Errorf("%w: column %d out of range", ErrIllegalState, col)
	}
	for r := 0; r < Rows; r++ {
		if b.cells[r][col] == Empty {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: column %d is full", ErrIllegalState, col)
}

// Drop は指定した位置に石を置く（検証なし）
func (b *Board) Drop(row, col int, side Cell) {
	b.cells[row][col] = side
}

// ValidMoves は石を落とせる列を昇順で返す
// 空のスライスは盤面が埋まっていることを意味する
func (b Board) ValidMoves() []int {
	moves := make([]int, 0, Cols)
	for c := 0; c < Cols; c++ {
		if b.IsValidMove(c) {
			moves = append(moves, c)
		}
	}
	return moves
}

// Height は列に積まれた石の数を返す
func (b Board) Height(col int) int {
	h := 0
	for r := 0; r < Rows; r++ {
		if b.cells[r][col] != Empty {
			h++
		}
	}
	return h
}

// Count は盤面上のsideの石の数を返す
func (b Board) Count(side Cell) int {
	n := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.cells[r][c] == side {
				n++
			}
		}
	}
	return n
}

// Swapped はPlayerとAIを入れ替えた盤面を返す
func (b Board) Swapped() Board {
	var out Board
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			out.cells[r][c] = b.cells[r][c].Opponent()
		}
	}
	return out
}

// Equal は2つのBoardが等しいかどうかを返す
func (b Board) Equal(other Board) bool {
	return b.cells == other.cells
}

// ApplyMove は検証してから石を置き、置いた行を返す
func ApplyMove(b *Board, col int, side Cell) (int, error) {
	if !b.IsValidMove(col) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	row, err := b.NextOpenRow(col)
	if err != nil {
		return 0, err
	}
	b.Drop(row, col, side)
	return row, nil
}

// ParseBoard は上段から順に並んだ42文字の盤面表記を読み込む
// '.'=空, 'X'=Player, 'O'=AI。空白と'|'は無視する
func ParseBoard(s string) (Board, error) {
	symbols := make([]Cell, 0, Rows*Cols)
	for _, ch := range s {
		switch ch {
		case '.', '0':
			symbols = append(symbols, Empty)
		case 'X', 'x', '1':
			symbols = append(symbols, Player)
		case 'O', 'o', '2':
			symbols = append(symbols, AI)
		case ' ', '\t', '\n', '\r', '|':
		default:
			return Board{}, fmt.Errorf("%w: unexpected symbol %q", ErrInvalidBoard, ch)
		}
	}
	if len(symbols) != Rows*Cols {
		return Board{}, fmt.Errorf("%w: need %d cells, got %d", ErrInvalidBoard, Rows*Cols, len(symbols))
	}

	var b Board
	for i, cell := range symbols {
		r := Rows - 1 - i/Cols
		b.cells[r][i%Cols] = cell
	}

	// 重力の不変条件（空きマスの上に石がない）を確認
	for c := 0; c < Cols; c++ {
		for r := 1; r < Rows; r++ {
			if b.cells[r][c] != Empty && b.cells[r-1][c] == Empty {
				return Board{}, fmt.Errorf("%w: floating piece at row %d column %d", ErrInvalidBoard, r, c)
			}
		}
	}
	return b, nil
}

// String はBoardをASCIIアートとして表示する（上段が先頭）
func (b Board) String() string {
	var sb strings.Builder
	line := "+" + strings.Repeat("---", Cols) + "+\n"
	sb.WriteString(line)
	for r := Rows - 1; r >= 0; r-- {
		sb.WriteString("|")
		for c := 0; c < Cols; c++ {
			sb.WriteString(" " + b.cells[r][c].Symbol() + " ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(line)
	sb.WriteString(" ")
	for c := 0; c < Cols; c++ {
		fmt.Fprintf(&sb, " %d ", c)
	}
	sb.WriteString("\n")
	return sb.String()
}
