// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	semantra "github.com/poiesic/semantra"
	"github.com/poiesic/semantra/oracle/mock"
	"github.com/poiesic/semantra/simulate"
	"github.com/poiesic/semantra/vocab"
)

func main() {
	app := &cli.App{
		Name:  "semantra",
		Usage: "Adaptive search engine for semantic word-guessing games",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "solve",
				Usage:  "Play one game against a local oracle hiding the given answer",
				Action: solveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the knowledge database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "words",
						Aliases:  []string{"w"},
						Usage:    "Path to a vocabulary file, one word per line",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "answer",
						Aliases:  []string{"a"},
						Usage:    "The hidden answer word",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-attempts",
						Usage: "Guess budget for the run",
						Value: semantra.DefaultMaxAttempts,
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "Random seed (0 means time-based)",
					},
					&cli.BoolFlag{
						Name:  "no-advanced",
						Usage: "Disable Q-learning and adaptive thresholds",
					},
				},
			},
			{
				Name:   "simulate",
				Usage:  "Run a self-play batch to warm the knowledge base",
				Action: simulateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the knowledge database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "words",
						Aliases:  []string{"w"},
						Usage:    "Path to a vocabulary file, one word per line",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "games",
						Usage: "Number of games to play",
						Value: 20,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent runs (0 means half the CPUs)",
					},
					&cli.IntFlag{
						Name:  "max-attempts",
						Usage: "Guess budget per run",
						Value: semantra.DefaultMaxAttempts,
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "Random seed (0 means time-based)",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Print knowledge base statistics",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the knowledge database directory",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func openSolver(c *cli.Context) (*semantra.Solver, error) {
	opts := []semantra.SolverOption{
		semantra.WithAdvancedLearning(!c.Bool("no-advanced")),
	}
	if seed := c.Int64("seed"); seed != 0 {
		opts = append(opts, semantra.WithRand(rand.New(rand.NewSource(seed))))
	}
	return semantra.NewSolver(c.String("db"), opts...)
}

func loadVocabulary(path string) (*vocab.Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vocab.New(words)
}

func solveCommand(c *cli.Context) error {
	v, err := loadVocabulary(c.String("words"))
	if err != nil {
		return fmt.Errorf("loading vocabulary: %w", err)
	}

	answer := c.String("answer")
	if !v.Contains(answer) {
		return fmt.Errorf("answer %q is not in the vocabulary", answer)
	}

	solver, err := openSolver(c)
	if err != nil {
		return err
	}
	defer solver.Close()

	result, err := solver.Play(c.Context, mock.NewHeuristic(answer), v,
		semantra.WithMaxAttempts(c.Int("max-attempts")))
	if err != nil {
		return err
	}

	if result.Success {
		fmt.Printf("solved %q in %d attempts (%.1fs)\n",
			result.Answer, result.Attempts, result.Duration.Seconds())
	} else {
		fmt.Printf("gave up after %d attempts; best guess %q at %.1f\n",
			result.Attempts, result.Best.Word, result.Best.Similarity)
	}
	return nil
}

func simulateCommand(c *cli.Context) error {
	v, err := loadVocabulary(c.String("words"))
	if err != nil {
		return fmt.Errorf("loading vocabulary: %w", err)
	}

	solver, err := openSolver(c)
	if err != nil {
		return err
	}
	defer solver.Close()

	runnerOpts := []simulate.Option{
		simulate.WithMaxAttempts(c.Int("max-attempts")),
	}
	if workers := c.Int("workers"); workers > 0 {
		runnerOpts = append(runnerOpts, simulate.WithPoolSize(workers))
	}

	runner, err := simulate.NewRunner(solver, runnerOpts...)
	if err != nil {
		return err
	}
	defer runner.Release()

	// Sample answers from the vocabulary.
	games := c.Int("games")
	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	words := v.Words()
	answers := make([]string, 0, games)
	for i := 0; i < games; i++ {
		answers = append(answers, words[rng.Intn(len(words))])
	}

	report, err := runner.Run(context.Background(), v, answers)
	if err != nil {
		return err
	}

	fmt.Printf("played %d games: %d solved (%.0f%%), avg %.1f attempts, %.1fs\n",
		report.Games, report.Successes, report.SuccessRate*100,
		report.AvgAttempts, report.Elapsed.Seconds())
	return nil
}

func statsCommand(c *cli.Context) error {
	solver, err := openSolver(c)
	if err != nil {
		return err
	}
	defer solver.Close()

	stats := solver.Stats()
	fmt.Printf("games played:       %d\n", stats.TotalGames)
	fmt.Printf("word pairs:         %d\n", stats.TotalWordPairs)
	fmt.Printf("unique words:       %d\n", stats.TotalUniqueWords)
	fmt.Printf("success patterns:   %d\n", stats.SuccessfulPatterns)
	if len(stats.MostEffectiveWords) > 0 {
		fmt.Printf("top words:          %s\n", strings.Join(stats.MostEffectiveWords, ", "))
	}
	for mode, attempts := range stats.ModeEffectiveness {
		fmt.Printf("mode %-10s avg %.1f attempts in solved runs\n", mode, attempts)
	}
	if !stats.LastUpdated.IsZero() {
		fmt.Printf("last updated:       %s\n", stats.LastUpdated.Format("2006-01-02 15:04:05"))
	}
	return nil
}
