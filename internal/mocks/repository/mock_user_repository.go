// Package repository provides hand-written testify mocks for the persistence
// interfaces used by the use case tests.
package repository

import (
	"context"

	"identity/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock bound to the test's lifecycle so that
// unmet expectations fail the test.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByBiometricKey(ctx context.Context, key string) (*entity.User, error) {
	args := m.Called(ctx, key)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) UpdateBiometricKey(ctx context.Context, userID int64, key string) (*entity.User, error) {
	args := m.Called(ctx, userID, key)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}
