package domain

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"
)

func TestGameTurnOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	game := NewGameWithStarter(rng, Medium, Player)

	if game.ID() == uuid.Nil {
		t.Error("expected a session id")
	}
	if game.Turn() != Player {
		t.Fatalf("expected Player to start, got %v", game.Turn())
	}

	if _, _, err := game.PlayAI(); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("expected ErrNotYourTurn for AI, got %v", err)
	}

	if err := game.PlayHuman(3); err != nil {
		t.Fatalf("PlayHuman: %v", err)
	}
	if err := game.PlayHuman(3); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("expected ErrNotYourTurn for second human move, got %v", err)
	}

	col, _, err := game.PlayAI()
	if err != nil {
		t.Fatalf("PlayAI: %v", err)
	}
	if col < 0 || col >= Cols {
		t.Fatalf("AI chose column out of range: %d", col)
	}

	moves := game.Moves()
	if len(moves) != 2 || moves[0] != 3 || moves[1] != col {
		t.Errorf("unexpected move history %v", moves)
	}
	if game.Board().Count(Player) != 1 || game.Board().Count(AI) != 1 {
		t.Errorf("unexpected board:\n%s", game.Board())
	}
}

func TestGameRejectsInvalidColumn(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	game := NewGameWithStarter(rng, Easy, Player)

	if err := game.PlayHuman(Cols); !errors.Is(err, ErrInvalidColumn) {
		t.Fatalf("expected ErrInvalidColumn, got %v", err)
	}
	if game.Turn() != Player {
		t.Error("rejected move must not pass the turn")
	}
}

func TestGamePlaysToCompletion(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		game := NewGame(rng, Medium)

		for plies := 0; !game.IsOver(); plies++ {
			if plies > Rows*Cols {
				t.Fatalf("seed %d: game did not end", seed)
			}
			switch game.Turn() {
			case Player:
				moves := game.Board().ValidMoves()
				if err := game.PlayHuman(moves[rng.Intn(len(moves))]); err != nil {
					t.Fatalf("seed %d: PlayHuman: %v", seed, err)
				}
			case AI:
				if _, _, err := game.PlayAI(); err != nil {
					t.Fatalf("seed %d: PlayAI: %v", seed, err)
				}
			}
		}

		if game.Outcome() == Ongoing {
			t.Fatalf("seed %d: finished game reported Ongoing", seed)
		}
		if err := game.PlayHuman(0); !errors.Is(err, ErrGameOver) {
			t.Errorf("seed %d: expected ErrGameOver, got %v", seed, err)
		}
		if _, _, err := game.PlayAI(); !errors.Is(err, ErrGameOver) {
			t.Errorf("seed %d: expected ErrGameOver from AI, got %v", seed, err)
		}
	}
}

func TestGameAIStartsWhenChosen(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	game := NewGameWithStarter(rng, Medium, AI)

	col, _, err := game.PlayAI()
	if err != nil {
		t.Fatalf("PlayAI: %v", err)
	}
	if col != Cols/2 {
		t.Errorf("expected the AI to open in the center, got %d", col)
	}
	if game.Turn() != Player {
		t.Errorf("expected Player to move next, got %v", game.Turn())
	}
}
