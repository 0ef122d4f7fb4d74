package goal

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Service interface {
	// Get returns the saved target percentage, nil when no goal is set.
	Get(ctx context.Context) (*float64, error)
	Set(ctx context.Context, percent float64) error
	Clear(ctx context.Context) (bool, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Get(ctx context.Context) (*float64, error) {
	return s.repo.Get(ctx)
}

func (s *ServiceImpl) Set(ctx context.Context, percent float64) error {
	// The form limits the slider to 100-150 but the engine accepts any
	// positive target.
	if percent <= 0 {
		return fmt.Errorf("goal must be positive, got %v", percent)
	}
	if err := s.repo.Set(ctx, percent); err != nil {
		return err
	}
	log.Debugf("saved goal: %.0f%%", percent)
	return nil
}

func (s *ServiceImpl) Clear(ctx context.Context) (bool, error) {
	return s.repo.Clear(ctx)
}
