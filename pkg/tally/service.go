package tally

import "context"

type Service interface {
	Total(ctx context.Context) (float64, error)
	// Add parses one input and returns the new running total.
	Add(ctx context.Context, input string) (float64, error)
	Reset(ctx context.Context) error
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Total(ctx context.Context) (float64, error) {
	return s.repo.Get(ctx)
}

func (s *ServiceImpl) Add(ctx context.Context, input string) (float64, error) {
	increment, err := ParseIncrement(input)
	if err != nil {
		return 0, err
	}

	total, err := s.repo.Get(ctx)
	if err != nil {
		return 0, err
	}
	total += increment
	if err := s.repo.Set(ctx, total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *ServiceImpl) Reset(ctx context.Context) error {
	return s.repo.Set(ctx, 0)
}
