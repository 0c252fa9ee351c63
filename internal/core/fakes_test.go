// ABOUTME: Hand-written provider fakes shared by the core package tests
// ABOUTME: Substitute for the OpenAI client and the bbolt catalog store
package core

import (
	"context"
	"errors"
	"sync"

	"github.com/rasheed1306/movienight/internal/models"
)

// fakeEmbedder returns canned vectors keyed by input text and counts calls.
type fakeEmbedder struct {
	mu      sync.Mutex
	vectors map[string][]float64
	failOn  string
	calls   int
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if f.failOn != "" && text == f.failOn {
		return nil, errors.New("provider unreachable")
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return []float64{0, 0}, nil
}

func (f *fakeEmbedder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeStore returns canned phase-1 candidates and phase-2 records.
type fakeStore struct {
	candidates []models.MatchCandidate
	movies     []models.Movie
	searchErr  error
	getErr     error

	gotIDs [][]string
}

func (f *fakeStore) SimilaritySearch(query []float64, threshold float64, limit int) ([]models.MatchCandidate, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.candidates, nil
}

func (f *fakeStore) GetByIDs(ids []string) ([]models.Movie, error) {
	f.gotIDs = append(f.gotIDs, ids)
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.movies, nil
}

// fakeCompleter records prompts and returns a canned response.
type fakeCompleter struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}
