package main

import (
	"flag"
	"log"
	"os"

	"github.com/nnaakkaaii/connect4/internal/config"
	"github.com/nnaakkaaii/connect4/internal/domain"
	"github.com/nnaakkaaii/connect4/internal/usecase"
)

func main() {
	difficulty := flag.String("difficulty", config.Getenv(config.EnvDifficulty, "medium"), "easy, medium or hard")
	first := flag.String("first", "random", "who moves first: player, ai or random")
	seed := flag.Int64("seed", config.GetenvInt64(config.EnvSeed, 0), "random seed (0 = time based)")
	flag.Parse()

	d, err := domain.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatalf("difficulty: %v", err)
	}

	playConfig := usecase.DefaultPlayConfig()
	playConfig.Difficulty = d
	switch *first {
	case "player":
		playConfig.First = domain.Player
	case "ai":
		playConfig.First = domain.AI
	case "random":
		playConfig.First = domain.Empty
	default:
		log.Fatalf("invalid -first %q; valid: player, ai, random", *first)
	}

	usecase.PlayGame(os.Stdin, os.Stdout, config.NewRand(*seed), playConfig)
}
