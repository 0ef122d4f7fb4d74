package goal

import "context"

// StubRepository is an in-memory Repository for tests in this and dependent
// packages.
type StubRepository struct {
	goal *float64
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) Get(ctx context.Context) (*float64, error) {
	return s.goal, nil
}

func (s *StubRepository) Set(ctx context.Context, percent float64) error {
	s.goal = &percent
	return nil
}

func (s *StubRepository) Clear(ctx context.Context) (bool, error) {
	had := s.goal != nil
	s.goal = nil
	return had, nil
}

func (s *StubRepository) Reset() {
	s.goal = nil
}
