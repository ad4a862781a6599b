package services

import (
	"context"

	"github.com/ncc-uat/ncc-admin-services/internal/events"
	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/stretchr/testify/mock"
)

type MockNotifier struct {
	mock.Mock
}

type MockMailer struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, event events.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockNotifier) Close() {
	m.Called()
}

func (m *MockMailer) SendWelcome(ctx context.Context, user models.UserRow) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
