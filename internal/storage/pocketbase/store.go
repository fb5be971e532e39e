// Package pocketbase persists puzzles in a remote PocketBase collection.
package pocketbase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/habibrosyad/pocketbase-go-sdk"

	"sudoku_game_go/internal/storage"
	"sudoku_game_go/internal/types"
)

const collection = "puzzles"

// Store talks to a PocketBase backend with superuser credentials.
type Store struct {
	client *pocketbase.Client
	done   chan struct{}
}

// Open authenticates against the PocketBase instance at url and keeps the
// session fresh in the background until Close.
func Open(url, email, password string) (*Store, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("pocketbase url is required")
	}
	client := pocketbase.NewClient(url,
		pocketbase.WithSuperuserEmailPassword(email, password))
	if err := client.Authorize(); err != nil {
		return nil, fmt.Errorf("pocketbase auth: %w", err)
	}

	s := &Store{client: client, done: make(chan struct{})}
	go s.reauthLoop()
	return s, nil
}

func (s *Store) reauthLoop() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			_ = s.client.Authorize()
		}
	}
}

// Close stops the re-authentication loop.
func (s *Store) Close() error {
	close(s.done)
	return nil
}

// boardsField is the JSON shape of the record's puzzle column.
type boardsField struct {
	Givens   types.Board `json:"grid"`
	Solution types.Board `json:"solution"`
}

// Save uploads one puzzle. IDs are capped by PocketBase, so they must fit
// storage.IDLength.
func (s *Store) Save(ctx context.Context, p *types.Puzzle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.ID == "" || len(p.ID) > storage.IDLength {
		return fmt.Errorf("invalid puzzle ID %q: must be 1-%d characters", p.ID, storage.IDLength)
	}

	exists, err := s.exists(p.ID)
	if err != nil {
		return fmt.Errorf("check puzzle %s: %w", p.ID, err)
	}
	if exists {
		return storage.ErrAlreadyExists
	}

	boards, err := json.Marshal(boardsField{Givens: p.Givens, Solution: p.Solution})
	if err != nil {
		return fmt.Errorf("marshal boards: %w", err)
	}

	data := map[string]any{
		"id":         p.ID,
		"puzzle":     string(boards),
		"difficulty": p.Difficulty.String(),
		"seed":       p.Seed,
	}
	if _, err := s.client.Create(collection, data); err != nil {
		return fmt.Errorf("upload puzzle: %w", err)
	}
	return nil
}

// Load fetches one puzzle by ID.
func (s *Store) Load(ctx context.Context, id string) (*types.Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	record, err := s.client.One(collection, id)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("load puzzle %s: %w", id, err)
	}

	raw, _ := record["puzzle"].(string)
	var boards boardsField
	if err := json.Unmarshal([]byte(raw), &boards); err != nil {
		return nil, fmt.Errorf("unmarshal puzzle %s: %w", id, err)
	}
	difficulty, err := types.ParseDifficulty(fmt.Sprintf("%v", record["difficulty"]))
	if err != nil {
		return nil, fmt.Errorf("load puzzle %s: %w", id, err)
	}

	return &types.Puzzle{
		ID:         id,
		Difficulty: difficulty,
		Givens:     boards.Givens,
		Solution:   boards.Solution,
		Created:    parseCreated(record["created"]),
	}, nil
}

// List returns saved puzzles, newest first.
func (s *Store) List(ctx context.Context) ([]storage.Meta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params := pocketbase.ParamsList{
		Page: 1,
		Size: 50,
		Sort: "-created",
	}
	result, err := s.client.List(collection, params)
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}

	metas := make([]storage.Meta, 0, len(result.Items))
	for _, item := range result.Items {
		id, _ := item["id"].(string)
		difficulty, err := types.ParseDifficulty(fmt.Sprintf("%v", item["difficulty"]))
		if err != nil {
			continue
		}
		metas = append(metas, storage.Meta{
			ID:         id,
			Difficulty: difficulty,
			Created:    parseCreated(item["created"]),
		})
	}
	return metas, nil
}

func (s *Store) exists(id string) (bool, error) {
	_, err := s.client.One(collection, id)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// parseCreated converts PocketBase's created timestamp to unix millis.
func parseCreated(v any) int64 {
	s, _ := v.(string)
	t, err := time.Parse("2006-01-02 15:04:05.000Z", s)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}
