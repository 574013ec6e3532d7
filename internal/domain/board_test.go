package domain

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

// drawBoard は石が全て埋まっていて4つ並びのない盤面
const drawBoard = `
XXOOXXO
XXOOXXO
OOXXOOX
XXOOXXO
XXOOXXO
XXOOXXO`

func mustParse(t testing.TB, s string) Board {
	t.Helper()
	b, err := ParseBoard(s)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	return b
}

// randomBoard はランダムな合法手をplies回（終局まで）打った盤面を返す
func randomBoard(rng *rand.Rand, plies int) Board {
	b := NewBoard()
	side := Player
	for i := 0; i < plies && !IsTerminal(b); i++ {
		moves := b.ValidMoves()
		col := moves[rng.Intn(len(moves))]
		if _, err := ApplyMove(&b, col, side); err != nil {
			panic(err)
		}
		side = side.Opponent()
	}
	return b
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.Get(r, c) != Empty {
				t.Fatalf("cell (%d,%d) = %v, want Empty", r, c, b.Get(r, c))
			}
		}
	}

	moves := b.ValidMoves()
	if len(moves) != Cols {
		t.Fatalf("expected %d valid moves, got %v", Cols, moves)
	}
	for i, col := range moves {
		if col != i {
			t.Errorf("valid moves not ascending: %v", moves)
		}
	}
}

func TestIsValidMove(t *testing.T) {
	b := NewBoard()
	for r := 0; r < Rows; r++ {
		b.Drop(r, 2, Player)
	}

	tests := []struct {
		name string
		col  int
		want bool
	}{
		{name: "negative column", col: -1, want: false},
		{name: "column past the edge", col: Cols, want: false},
		{name: "full column", col: 2, want: false},
		{name: "empty column", col: 0, want: true},
		{name: "last column", col: Cols - 1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.IsValidMove(tt.col); got != tt.want {
				t.Errorf("IsValidMove(%d) = %v, want %v", tt.col, got, tt.want)
			}
		})
	}
}

func TestNextOpenRowStacks(t *testing.T) {
	b := NewBoard()
	for want := 0; want < Rows; want++ {
		row, err := b.NextOpenRow(4)
		if err != nil {
			t.Fatalf("NextOpenRow: %v", err)
		}
		if row != want {
			t.Fatalf("expected row %d, got %d", want, row)
		}
		b.Drop(row, 4, AI)
	}

	if b.Height(4) != Rows {
		t.Errorf("expected height %d, got %d", Rows, b.Height(4))
	}

	if _, err := b.NextOpenRow(4); !errors.Is(err, ErrIllegalState) {
		t.Errorf("expected ErrIllegalState on full column, got %v", err)
	}
	if _, err := b.NextOpenRow(Cols); !errors.Is(err, ErrIllegalState) {
		t.Errorf("expected ErrIllegalState out of range, got %v", err)
	}
}

func TestApplyMove(t *testing.T) {
	b := NewBoard()

	row, err := ApplyMove(&b, 3, Player)
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if row != 0 || b.Get(0, 3) != Player {
		t.Fatalf("expected Player at (0,3), got row %d cell %v", row, b.Get(0, 3))
	}

	row, err = ApplyMove(&b, 3, AI)
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if row != 1 || b.Get(1, 3) != AI {
		t.Fatalf("expected AI at (1,3), got row %d cell %v", row, b.Get(1, 3))
	}

	for _, col := range []int{-1, Cols, 100} {
		if _, err := ApplyMove(&b, col, Player); !errors.Is(err, ErrInvalidColumn) {
			t.Errorf("ApplyMove(%d): expected ErrInvalidColumn, got %v", col, err)
		}
	}

	for i := 0; i < Rows-2; i++ {
		if _, err := ApplyMove(&b, 3, Player); err != nil {
			t.Fatalf("filling column: %v", err)
		}
	}
	before := b
	if _, err := ApplyMove(&b, 3, AI); !errors.Is(err, ErrInvalidColumn) {
		t.Errorf("expected ErrInvalidColumn on full column, got %v", err)
	}
	if !b.Equal(before) {
		t.Error("rejected move must not change the board")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	b := NewBoard()
	b.Drop(0, 0, Player)

	cp := b.Copy()
	cp.Drop(1, 0, AI)

	if b.Get(1, 0) != Empty {
		t.Error("modifying the copy changed the original")
	}
	if cp.Get(0, 0) != Player {
		t.Error("copy lost original contents")
	}
}

func TestFullBoardHasNoValidMoves(t *testing.T) {
	b := mustParse(t, drawBoard)
	if moves := b.ValidMoves(); len(moves) != 0 {
		t.Errorf("expected no valid moves, got %v", moves)
	}
}

func TestParseBoard(t *testing.T) {
	b := mustParse(t, `
.......
.......
.......
.......
O......
XXXO...`)

	tests := []struct {
		row, col int
		want     Cell
	}{
		{0, 0, Player},
		{0, 1, Player},
		{0, 2, Player},
		{0, 3, AI},
		{1, 0, AI},
		{1, 1, Empty},
		{5, 6, Empty},
	}
	for _, tt := range tests {
		if got := b.Get(tt.row, tt.col); got != tt.want {
			t.Errorf("cell (%d,%d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}

	if b.Count(Player) != 3 || b.Count(AI) != 2 {
		t.Errorf("unexpected piece counts: player=%d ai=%d", b.Count(Player), b.Count(AI))
	}
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "too short", input: "XXO"},
		{name: "unknown symbol", input: strings.Repeat(".", 41) + "Z"},
		{name: "floating piece", input: "X" + strings.Repeat(".", 41)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBoard(tt.input); !errors.Is(err, ErrInvalidBoard) {
				t.Errorf("expected ErrInvalidBoard, got %v", err)
			}
		})
	}
}

func TestBoardStringParsesBack(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := randomBoard(rng, 15)

	// 枠と列番号を除いた部分だけを読み直す
	var sb strings.Builder
	for _, line := range strings.Split(b.String(), "\n") {
		if strings.HasPrefix(line, "|") {
			sb.WriteString(strings.ReplaceAll(line, " ", ""))
		}
	}

	parsed := mustParse(t, sb.String())
	if !parsed.Equal(b) {
		t.Errorf("round trip mismatch:\n%s\n%s", b, parsed)
	}
}

func TestSwapped(t *testing.T) {
	b := NewBoard()
	b.Drop(0, 0, Player)
	b.Drop(0, 1, AI)

	s := b.Swapped()
	if s.Get(0, 0) != AI || s.Get(0, 1) != Player || s.Get(1, 0) != Empty {
		t.Errorf("unexpected swapped board:\n%s", s)
	}
	if !s.Swapped().Equal(b) {
		t.Error("swapping twice should restore the board")
	}
}
