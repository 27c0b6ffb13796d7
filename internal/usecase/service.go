package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/echoenvoy/sudoku-solver/internal/domain"
	"github.com/echoenvoy/sudoku-solver/internal/ports"
)

// Service orchestrates the ports. Solving always validates first: the
// engine never runs on a board the validator rejects.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b *domain.Board, strategy domain.Strategy, deadline time.Duration) (domain.Outcome, ports.Stats, error) {
	if u.Solver == nil || u.Validator == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	if err := u.Validator.Validate(ctx, b); err != nil {
		return 0, ports.Stats{}, err
	}
	return u.Solver.Solve(ctx, b, strategy, deadline)
}

func (u *Service) Generate(ctx context.Context, size int, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, size, seed, d)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) error {
	if u.Validator == nil {
		return errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
