package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/metrics"
	"svw.info/sudoku-engine/internal/ports"
)

// Service glues the engine, validator, and storage behind one facade
// for the CLI and the HTTP adapter.
type Service struct {
	Engine    ports.Engine
	Validator ports.Validator
	Storage   ports.Storage
	Metrics   *metrics.Metrics
}

func NewService(e ports.Engine, v ports.Validator, st ports.Storage, m *metrics.Metrics) *Service {
	return &Service{Engine: e, Validator: v, Storage: st, Metrics: m}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Outcome, ports.Stats, error) {
	if u.Engine == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	out, st, err := u.Engine.Solve(ctx, b)
	if err == nil && u.Metrics != nil {
		u.Metrics.ObserveSolve(out.Verdict, st)
	}
	return out, st, err
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

// Persistence. Save mints an ID and timestamp when absent.
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	if p != nil && p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p != nil && p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
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
