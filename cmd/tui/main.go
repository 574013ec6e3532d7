package main

import (
	"flag"
	"log"

	"github.com/nnaakkaaii/connect4/internal/config"
	"github.com/nnaakkaaii/connect4/internal/domain"
	"github.com/nnaakkaaii/connect4/internal/tui"
)

func main() {
	difficulty := flag.String("difficulty", config.Getenv(config.EnvDifficulty, "medium"), "initial difficulty: easy, medium or hard")
	seed := flag.Int64("seed", config.GetenvInt64(config.EnvSeed, 0), "random seed (0 = time based)")
	flag.Parse()

	d, err := domain.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatalf("difficulty: %v", err)
	}

	if err := tui.New(config.NewRand(*seed), d).Run(); err != nil {
		log.Fatal(err)
	}
}
