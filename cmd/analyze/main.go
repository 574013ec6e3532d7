package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nnaakkaaii/connect4/internal/config"
	"github.com/nnaakkaaii/connect4/internal/domain"
)

func main() {
	depth := flag.Int("depth", config.GetenvInt(config.EnvDepth, 6), "initial search depth")
	fullWidth := flag.Bool("full", false, "also run the search without pruning and compare")
	flag.Parse()

	scanner := bufio.NewScanner(os.Stdin)
	evaluator := domain.NewHeuristicEvaluator()

	fmt.Println("=== Connect Four Analyzer ===")
	fmt.Println("Enter a board as 42 cells, top row first ('.'=empty, X=player, O=AI), or 'quit' to exit")
	fmt.Println("Example: ....... ....... ....... ....... ...X... ..OXO..")
	fmt.Println()

	for {
		currentDepth := *depth
		board := inputBoard(scanner)
		if board == nil {
			break
		}

	analysis:
		for {
			fmt.Println("\nCurrent board (AI to move):")
			fmt.Print(board)

			if outcome := domain.CheckOutcome(*board); outcome != domain.Ongoing {
				fmt.Printf("Game over: %s\n", outcome)
				break
			}

			fmt.Printf("\nSearch depth: %d\n", currentDepth)
			solver := domain.NewSolver(evaluator, currentDepth)
			res := solver.Search(*board)

			fmt.Printf("\n=== Recommended column: %d (score %d, %d nodes, %d cutoffs) ===\n",
				res.Column, res.Score, res.Stats.Nodes, res.Stats.Cutoffs)
			fmt.Println("\nColumn scores:")
			for _, ms := range solver.Analyze(*board) {
				fmt.Printf("  %d: %s", ms.Column, formatScore(ms.Score))
				if ms.Column == res.Column {
					fmt.Print(" <- BEST")
				}
				fmt.Println()
			}

			if *fullWidth {
				full := domain.NewFullWidthSolver(evaluator, currentDepth).Search(*board)
				fmt.Printf("\nWithout pruning: column %d (score %d, %d nodes)\n", full.Column, full.Score, full.Stats.Nodes)
			}

			fmt.Println("\nOptions:")
			fmt.Println("  1. Apply suggested move and enter the player's reply")
			fmt.Println("  2. Enter custom AI move and the player's reply")
			fmt.Println("  3. Change search depth")
			fmt.Println("  4. New board")
			fmt.Println("  5. Quit")
			fmt.Print("Choice: ")

			if !scanner.Scan() {
				return
			}

			switch strings.TrimSpace(scanner.Text()) {
			case "1":
				board = applyMoveWithReply(scanner, *board, res.Column)
			case "2":
				board = customMoveWithReply(scanner, *board)
			case "3":
				currentDepth = changeDepth(scanner, currentDepth)
			case "4":
				break analysis
			case "5":
				return
			default:
				fmt.Println("Invalid choice")
			}
		}
	}
}

func inputBoard(scanner *bufio.Scanner) *domain.Board {
	fmt.Println("Enter board (42 cells, or 'quit'):")
	var sb strings.Builder
	for {
		if !scanner.Scan() {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" {
			return nil
		}
		sb.WriteString(line)

		// 複数行に分けて入力してもよい
		cells := strings.NewReplacer(" ", "", "|", "").Replace(sb.String())
		if len(cells) < domain.Rows*domain.Cols {
			continue
		}

		board, err := domain.ParseBoard(sb.String())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			sb.Reset()
			continue
		}
		return &board
	}
}

func applyMoveWithReply(scanner *bufio.Scanner, board domain.Board, col int) *domain.Board {
	if _, err := domain.ApplyMove(&board, col, domain.AI); err != nil {
		fmt.Printf("Cannot apply column %d: %v\n", col, err)
		return &board
	}
	fmt.Printf("\nApplied AI column %d\n", col)
	fmt.Print(board)

	if domain.IsTerminal(board) {
		return &board
	}

	fmt.Printf("\nEnter the player's reply column (0-%d): ", domain.Cols-1)
	if !scanner.Scan() {
		return &board
	}
	reply, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		fmt.Println("Invalid column")
		return &board
	}
	if _, err := domain.ApplyMove(&board, reply, domain.Player); err != nil {
		fmt.Printf("Cannot apply reply: %v\n", err)
	}
	return &board
}

func customMoveWithReply(scanner *bufio.Scanner, board domain.Board) *domain.Board {
	fmt.Printf("Enter AI column (0-%d): ", domain.Cols-1)
	if !scanner.Scan() {
		return &board
	}
	col, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || !board.IsValidMove(col) {
		fmt.Println("Invalid column")
		return &board
	}
	return applyMoveWithReply(scanner, board, col)
}

func changeDepth(scanner *bufio.Scanner, currentDepth int) int {
	fmt.Printf("Enter new depth (current: %d): ", currentDepth)
	if !scanner.Scan() {
		return currentDepth
	}
	newDepth, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || newDepth < 0 || newDepth > 10 {
		fmt.Println("Invalid depth (must be 0-10)")
		return currentDepth
	}
	return newDepth
}

func formatScore(score int) string {
	switch score {
	case domain.WinScore:
		return "win"
	case domain.LossScore:
		return "loss"
	default:
		return strconv.Itoa(score)
	}
}
