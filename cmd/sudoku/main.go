package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"sudoku_game_go/internal/config"
	"sudoku_game_go/internal/game"
	"sudoku_game_go/internal/storage"
	pbstore "sudoku_game_go/internal/storage/pocketbase"
	sqlitestore "sudoku_game_go/internal/storage/sqlite"
	"sudoku_game_go/internal/types"
	"sudoku_game_go/internal/visualizer"
)

type shell struct {
	in     *bufio.Scanner
	logger *slog.Logger
	game   *game.Game
	store  storage.Store // nil when persistence is disabled
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", "err", err)
		os.Exit(1)
	}

	sh := &shell{
		in:     bufio.NewScanner(os.Stdin),
		logger: logger,
		game:   game.New(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}

	store, err := openStore(cfg)
	if err != nil {
		logger.Warn("storage disabled", "driver", cfg.StorageDriver, "err", err)
	} else if store != nil {
		sh.store = store
		defer store.Close()
	}

	fmt.Println("Welcome to Sudoku!")
	sh.mainMenu()
}

func openStore(cfg config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case "", "none":
		return nil, nil
	case "sqlite":
		return sqlitestore.Open(cfg.SQLitePath)
	case "pocketbase":
		return pbstore.Open(cfg.PocketBaseURL, cfg.PocketBaseEmail, cfg.PocketBasePassword)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func (s *shell) mainMenu() {
	for {
		fmt.Println("\n==== Main Menu ====")
		fmt.Println("1. Start Game")
		fmt.Println("2. How to Play")
		fmt.Println("3. Load Saved Game")
		fmt.Println("4. Exit")

		choice, ok := s.promptInt("Your choice: ")
		if !ok {
			return
		}
		switch choice {
		case 1:
			s.startGame()
		case 2:
			howToPlay()
		case 3:
			s.loadSavedGame()
		case 4:
			fmt.Println("Thanks for playing! Goodbye.")
			return
		default:
			fmt.Println("Invalid choice! Try again.")
		}
	}
}

func (s *shell) startGame() {
	fmt.Println("\nChoose difficulty level:")
	fmt.Println("1. Easy")
	fmt.Println("2. Medium")
	fmt.Println("3. Hard")

	choice, ok := s.promptInt("Your choice: ")
	if !ok {
		return
	}
	var difficulty types.Difficulty
	switch choice {
	case 1:
		difficulty = types.Easy
	case 2:
		difficulty = types.Medium
	case 3:
		difficulty = types.Hard
	default:
		fmt.Println("Invalid choice! Defaulting to Easy level.")
		difficulty = types.Easy
	}

	start := time.Now()
	if err := s.game.NewGame(difficulty); err != nil {
		s.logger.Error("generation failed", "difficulty", difficulty.String(), "err", err)
		fmt.Println("Could not generate a puzzle, sorry.")
		return
	}
	s.logger.Info("puzzle generated",
		"difficulty", difficulty.String(),
		"empty_cells", difficulty.EmptyCells(),
		"dur", time.Since(start).Round(time.Millisecond),
	)

	s.playLoop()
}

// playLoop prompts for moves until the puzzle is solved or the player quits
// by entering 0. The game core rejects bad moves; this loop only decides how
// to message and re-prompt.
func (s *shell) playLoop() {
	for {
		board := s.game.Working()
		fmt.Println()
		visualizer.Print(&board)

		row, ok := s.promptInt("\nEnter row (1-9) (or 0 to quit, s to save): ")
		if !ok {
			return
		}
		if row == 0 {
			return
		}
		if row == saveRequest {
			s.saveGame()
			continue
		}

		col, ok := s.promptInt("Enter column (1-9) (or 0 to quit): ")
		if !ok || col == 0 {
			return
		}
		val, ok := s.promptInt("Enter value (1-9) (or 0 to quit): ")
		if !ok || val == 0 {
			return
		}

		switch err := s.game.Place(row, col, val); {
		case errors.Is(err, game.ErrCellOccupied):
			fmt.Println("Cell is already filled! Try another one.")
		case errors.Is(err, game.ErrInvalidCoordinate), errors.Is(err, game.ErrInvalidValue):
			fmt.Println("Invalid input! Try again.")
		case err != nil:
			fmt.Println("Move rejected:", err)
		}

		if s.game.IsSolved() {
			board := s.game.Working()
			fmt.Println()
			visualizer.Print(&board)
			fmt.Println("\nCongratulations! You've solved the Sudoku puzzle!")
			return
		}
	}
}

func (s *shell) saveGame() {
	if s.store == nil {
		fmt.Println("Saving is disabled (no storage configured).")
		return
	}
	snapshot := s.game.Snapshot()
	snapshot.ID = storage.NewID()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.store.Save(ctx, snapshot); err != nil {
		s.logger.Error("save failed", "id", snapshot.ID, "err", err)
		fmt.Println("Could not save the game.")
		return
	}
	fmt.Printf("Game saved as %s.\n", snapshot.ID)
}

func (s *shell) loadSavedGame() {
	if s.store == nil {
		fmt.Println("Loading is disabled (no storage configured).")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	metas, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("list failed", "err", err)
		fmt.Println("Could not list saved games.")
		return
	}
	if len(metas) == 0 {
		fmt.Println("No saved games yet.")
		return
	}

	fmt.Println("\nSaved games:")
	for _, m := range metas {
		fmt.Printf("  %s  (%s)\n", m.ID, m.Difficulty)
	}

	id, ok := s.promptLine("Enter game ID: ")
	if !ok || id == "" {
		return
	}
	puzzle, err := s.store.Load(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Println("No saved game with that ID.")
		return
	}
	if err != nil {
		s.logger.Error("load failed", "id", id, "err", err)
		fmt.Println("Could not load the game.")
		return
	}

	s.game.Load(puzzle)
	s.playLoop()
}

// saveRequest is returned by promptInt when the player types "s".
const saveRequest = -2

// promptInt reads one line and parses it as an integer. ok is false on EOF.
// Unparseable input maps to -1 so callers fall through to their invalid-
// choice handling.
func (s *shell) promptInt(label string) (int, bool) {
	line, ok := s.promptLine(label)
	if !ok {
		return 0, false
	}
	if strings.EqualFold(line, "s") {
		return saveRequest, true
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return -1, true
	}
	return n, true
}

func (s *shell) promptLine(label string) (string, bool) {
	fmt.Print(label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func howToPlay() {
	fmt.Println("\n==== How to Play ====")
	fmt.Println()
	fmt.Println("Sudoku is a logic-based, combinatorial number-placement puzzle.")
	fmt.Println()
	fmt.Println("The objective is to fill a 9x9 grid with digits so that each column,")
	fmt.Println("each row, and each of the nine 3x3 subgrids that compose the grid")
	fmt.Println("contain all of the digits from 1 to 9.")
	fmt.Println()
	fmt.Println("For more information, visit: https://en.wikipedia.org/wiki/Sudoku")
}
