// Package usecase provides a hand-written testify mock for the AuthUsecase
// interface, used by the handler tests.
package usecase

import (
	"context"

	appusecase "identity/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a testify mock for usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *appusecase.RegisterInput) (*appusecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*appusecase.RegisterOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *appusecase.LoginInput) (*appusecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*appusecase.LoginOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) BiometricLogin(ctx context.Context, input *appusecase.BiometricLoginInput) (*appusecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*appusecase.LoginOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) SetBiometricKey(ctx context.Context, input *appusecase.SetBiometricKeyInput) (*appusecase.SetBiometricKeyOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*appusecase.SetBiometricKeyOutput)

	return output, args.Error(1)
}
