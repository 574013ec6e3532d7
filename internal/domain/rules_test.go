package domain

import "testing"

func TestWinningMove(t *testing.T) {
	tests := []struct {
		name  string
		cells [][2]int
		side  Cell
		want  bool
	}{
		{
			name:  "horizontal",
			cells: [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}},
			side:  AI,
			want:  true,
		},
		{
			name:  "horizontal at right edge",
			cells: [][2]int{{5, 3}, {5, 4}, {5, 5}, {5, 6}},
			side:  Player,
			want:  true,
		},
		{
			name:  "vertical",
			cells: [][2]int{{2, 6}, {3, 6}, {4, 6}, {5, 6}},
			side:  Player,
			want:  true,
		},
		{
			name:  "diagonal up-right",
			cells: [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
			side:  AI,
			want:  true,
		},
		{
			name:  "diagonal down-right",
			cells: [][2]int{{3, 0}, {2, 1}, {1, 2}, {0, 3}},
			side:  Player,
			want:  true,
		},
		{
			name:  "diagonal down-right at top corner",
			cells: [][2]int{{5, 3}, {4, 4}, {3, 5}, {2, 6}},
			side:  AI,
			want:  true,
		},
		{
			name:  "three is not enough",
			cells: [][2]int{{0, 0}, {0, 1}, {0, 2}},
			side:  AI,
			want:  false,
		},
		{
			name:  "gap breaks the line",
			cells: [][2]int{{0, 0}, {0, 1}, {0, 3}, {0, 4}},
			side:  AI,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Board
			for _, rc := range tt.cells {
				b.Drop(rc[0], rc[1], tt.side)
			}
			if got := WinningMove(b, tt.side); got != tt.want {
				t.Errorf("WinningMove(%v) = %v, want %v\n%s", tt.side, got, tt.want, b)
			}
			if WinningMove(b, tt.side.Opponent()) {
				t.Errorf("opponent %v should not win\n%s", tt.side.Opponent(), b)
			}
		})
	}
}

func TestWinningMoveMixedLine(t *testing.T) {
	b := mustParse(t, `
.......
.......
.......
.......
.......
XXXOXXX`)
	if WinningMove(b, Player) || WinningMove(b, AI) {
		t.Errorf("mixed line should not win\n%s", b)
	}
	if WinningMove(b, Empty) {
		t.Error("empty cells never win")
	}
}

func TestCheckOutcome(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  Outcome
	}{
		{
			name: "empty board",
			board: `
.......
.......
.......
.......
.......
.......`,
			want: Ongoing,
		},
		{
			name: "three stacked is still ongoing",
			board: `
.......
.......
.......
X......
XO.....
XOO...X`,
			want: Ongoing,
		},
		{
			name: "player vertical",
			board: `
.......
.......
X......
X......
XO.....
XOO....`,
			want: PlayerWins,
		},
		{
			name: "ai diagonal",
			board: `
.......
.......
...O...
..OX...
.OXX...
OXXO...`,
			want: AIWins,
		},
		{
			name:  "draw",
			board: drawBoard,
			want:  Draw,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, tt.board)
			if got := CheckOutcome(b); got != tt.want {
				t.Errorf("CheckOutcome() = %v, want %v\n%s", got, tt.want, b)
			}
			if got := IsTerminal(b); got != (tt.want != Ongoing) {
				t.Errorf("IsTerminal() = %v for outcome %v", got, tt.want)
			}
		})
	}
}
