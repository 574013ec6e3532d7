package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/nnaakkaaii/connect4/internal/config"
	"github.com/nnaakkaaii/connect4/internal/domain"
	"github.com/nnaakkaaii/connect4/internal/usecase"
)

func main() {
	games := flag.Int("games", config.GetenvInt(config.EnvGames, 10), "number of games")
	difficulty := flag.String("difficulty", config.Getenv(config.EnvDifficulty, "medium"), "AI difficulty: easy, medium or hard")
	opponent := flag.Int("opponent-depth", config.GetenvInt(config.EnvDepth, 0), "opponent search depth (0 = random moves)")
	delay := flag.Int("delay", 0, "delay between moves (ms)")
	parallel := flag.Bool("parallel", config.GetenvBool(config.EnvParallel, false), "search root moves in parallel")
	seed := flag.Int64("seed", config.GetenvInt64(config.EnvSeed, 0), "random seed (0 = time based)")
	prof := flag.String("profile", "", "write a profile: cpu or mem")
	verbose := flag.Bool("verbose", false, "print every move")
	flag.Parse()

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		log.Fatalf("invalid -profile %q; valid: cpu, mem", *prof)
	}

	d, err := domain.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatalf("difficulty: %v", err)
	}

	autoConfig := usecase.DefaultAutoPlayConfig()
	autoConfig.Games = *games
	autoConfig.Difficulty = d
	autoConfig.OpponentDepth = *opponent
	autoConfig.Delay = time.Duration(*delay) * time.Millisecond
	autoConfig.UseParallel = *parallel
	autoConfig.Verbose = *verbose

	usecase.AutoPlay(os.Stdout, config.NewRand(*seed), autoConfig)
}
