// Package service provides hand-rolled test doubles for the domain
// service interfaces.
package service

import (
	"github.com/stretchr/testify/mock"

	"backoffice/internal/domain/entity"
	domainsvc "backoffice/internal/domain/service"
)

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Generate(password string) ([]byte, []byte, error) {
	args := m.Called(password)

	var digest, salt []byte
	if args.Get(0) != nil {
		digest = args.Get(0).([]byte)
	}
	if args.Get(1) != nil {
		salt = args.Get(1).([]byte)
	}

	return digest, salt, args.Error(2)
}

func (m *MockPasswordHasher) Verify(password string, digest, salt []byte) bool {
	args := m.Called(password, digest, salt)

	return args.Bool(0)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(admin *entity.Admin) (string, error) {
	args := m.Called(admin)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*domainsvc.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domainsvc.Claims), args.Error(1)
}
