package repository

import (
	"context"

	domainrepo "identity/internal/domain/repository"
)

// FakeTransactionManager runs the transactional function directly against the
// configured factory, so tests exercise the real check-then-write sequence
// without a database.
type FakeTransactionManager struct {
	Factory  domainrepo.RepositoryFactory
	BeginErr error
}

func (f *FakeTransactionManager) Execute(ctx context.Context, fn func(domainrepo.RepositoryFactory) error) error {
	if f.BeginErr != nil {
		return f.BeginErr
	}

	return fn(f.Factory)
}

// FakeRepositoryFactory hands out the repositories wired into it.
type FakeRepositoryFactory struct {
	Users domainrepo.UserRepository
}

func (f *FakeRepositoryFactory) UserRepo() domainrepo.UserRepository {
	return f.Users
}
