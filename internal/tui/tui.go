// Package tui はtviewを使った端末用のフロントエンド
package tui

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/nnaakkaaii/connect4/internal/domain"
)

// 先手の選択肢
var starterOptions = []string{"Random", "Player", "AI"}

// App は画面と対局の状態を持つ
// gameはAIの思考中はAI側のゴルーチンだけが触る
type App struct {
	app        *tview.Application
	rng        *rand.Rand
	game       *domain.Game
	table      *tview.Table
	status     *tview.TextView
	difficulty domain.Difficulty
	starter    domain.Cell
	thinking   bool
}

// New は新しいAppを生成する
func New(rng *rand.Rand, difficulty domain.Difficulty) *App {
	return &App{
		app:        tview.NewApplication(),
		rng:        rng,
		difficulty: difficulty,
		starter:    domain.Empty,
	}
}

// Run は難易度選択画面から始めてアプリを実行する
func (a *App) Run() error {
	a.showStartScreen()
	return a.app.Run()
}

func (a *App) showStartScreen() {
	difficulties := domain.Difficulties()
	names := make([]string, len(difficulties))
	for i, d := range difficulties {
		names[i] = d.String()
	}

	form := tview.NewForm()
	form.
		AddDropDown("Difficulty", names, int(a.difficulty), func(option string, index int) {
			if index >= 0 {
				a.difficulty = difficulties[index]
			}
		}).
		AddDropDown("First move", starterOptions, starterIndex(a.starter), func(option string, index int) {
			a.starter = starterFromIndex(index)
		}).
		AddButton("Start Game", func() {
			a.startGame()
		}).
		AddButton("Quit", func() {
			a.app.Stop()
		})
	form.SetBorder(true).SetTitle("Connect Four").SetTitleAlign(tview.AlignCenter)

	a.app.SetRoot(form, true).SetFocus(form)
}

func (a *App) startGame() {
	if a.starter == domain.Empty {
		a.game = domain.NewGame(a.rng, a.difficulty)
	} else {
		a.game = domain.NewGameWithStarter(a.rng, a.difficulty, a.starter)
	}

	a.table = tview.NewTable()
	a.table.SetSelectable(false, true)
	a.table.SetFixed(1, 0)
	a.table.SetBorder(true)
	a.table.SetTitle(fmt.Sprintf(" Connect Four - %s ", a.difficulty))
	a.table.SetBorderColor(tcell.ColorBlue)
	a.table.SetSelectedFunc(func(row, column int) {
		a.humanMove(column)
	})
	a.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() != tcell.KeyRune {
			return event
		}
		r := event.Rune()
		switch {
		case r >= '0' && r < '0'+domain.Cols:
			a.humanMove(int(r - '0'))
			return nil
		case r == 'q':
			a.app.Stop()
			return nil
		}
		return event
	})

	a.status = tview.NewTextView()
	a.status.SetDynamicColors(true)
	a.status.SetTextAlign(tview.AlignCenter)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.table, 0, 1, true).
		AddItem(a.status, 3, 0, false)

	a.render()
	a.app.SetRoot(flex, true).SetFocus(a.table)

	if a.game.Turn() == domain.AI {
		a.aiMove()
	}
}

func (a *App) humanMove(col int) {
	if a.thinking || a.game.IsOver() {
		return
	}
	if err := a.game.PlayHuman(col); err != nil {
		a.status.SetText(fmt.Sprintf("[red]%v[-]", err))
		return
	}
	a.render()
	if a.game.IsOver() {
		a.showResult()
		return
	}
	a.aiMove()
}

func (a *App) aiMove() {
	a.thinking = true
	a.status.SetText("AI is thinking...")

	go func() {
		col, score, err := a.game.PlayAI()
		a.app.QueueUpdateDraw(func() {
			a.thinking = false
			a.render()
			if err != nil {
				a.status.SetText(fmt.Sprintf("[red]AI error: %v[-]", err))
				return
			}
			a.status.SetText(fmt.Sprintf("AI played column %d (score %d)\n%s", col, score, statusText(a.game)))
			if a.game.IsOver() {
				a.showResult()
			}
		})
	}()
}

// render は盤面をテーブルに描画する（0行目は列番号）
func (a *App) render() {
	b := a.game.Board()
	for c := 0; c < domain.Cols; c++ {
		a.table.SetCell(0, c, tview.NewTableCell(fmt.Sprintf(" %d ", c)).
			SetAlign(tview.AlignCenter).
			SetSelectable(false).
			SetExpansion(1))
	}
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Cols; c++ {
			symbol, color := pieceStyle(b.Get(domain.Rows-1-r, c))
			a.table.SetCell(r+1, c, tview.NewTableCell(symbol).
				SetAlign(tview.AlignCenter).
				SetTextColor(color).
				SetExpansion(1))
		}
	}
	a.status.SetText(statusText(a.game))
}

func (a *App) showResult() {
	modal := tview.NewModal().
		SetText(resultText(a.game.Outcome())).
		AddButtons([]string{"Play again", "Quit"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonLabel == "Play again" {
				a.showStartScreen()
				return
			}
			a.app.Stop()
		})
	a.app.SetRoot(modal, false)
}

// pieceStyle はマスの表示文字と色を返す
func pieceStyle(c domain.Cell) (string, tcell.Color) {
	switch c {
	case domain.Player:
		return "●", tcell.ColorRed
	case domain.AI:
		return "●", tcell.ColorYellow
	default:
		return "·", tcell.ColorGray
	}
}

func statusText(g *domain.Game) string {
	if g.IsOver() {
		return resultText(g.Outcome())
	}
	if g.Turn() == domain.Player {
		return fmt.Sprintf("Your move: press 0-%d or Enter on a column, q to quit", domain.Cols-1)
	}
	return "AI to move"
}

func resultText(o domain.Outcome) string {
	switch o {
	case domain.PlayerWins:
		return "You win!"
	case domain.AIWins:
		return "AI wins!"
	case domain.Draw:
		return "Draw!"
	default:
		return ""
	}
}

func starterIndex(c domain.Cell) int {
	switch c {
	case domain.Player:
		return 1
	case domain.AI:
		return 2
	default:
		return 0
	}
}

func starterFromIndex(i int) domain.Cell {
	switch i {
	case 1:
		return domain.Player
	case 2:
		return domain.AI
	default:
		return domain.Empty
	}
}
