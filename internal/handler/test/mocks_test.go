package test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"gearshift/internal/models"
	"gearshift/internal/repository"
	"gearshift/internal/service"
	"gearshift/internal/state"
)

type MockPageService struct {
	mock.Mock
}

func (m *MockPageService) Snapshot(ctx context.Context, sessionID string) (state.State, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(state.State), args.Error(1)
}

func (m *MockPageService) Stats(ctx context.Context, sessionID string) (state.Stats, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(state.Stats), args.Error(1)
}

func (m *MockPageService) UpdateField(ctx context.Context, sessionID, form, field, value string) (state.State, error) {
	args := m.Called(ctx, sessionID, form, field, value)
	return args.Get(0).(state.State), args.Error(1)
}

func (m *MockPageService) SubmitRide(ctx context.Context, sessionID string, fields map[string]string, image *service.ImageUpload) (models.Ride, state.State, error) {
	args := m.Called(ctx, sessionID, fields, image)
	return args.Get(0).(models.Ride), args.Get(1).(state.State), args.Error(2)
}

func (m *MockPageService) SubmitMeetup(ctx context.Context, sessionID string, fields map[string]string) (models.Meetup, state.State, error) {
	args := m.Called(ctx, sessionID, fields)
	return args.Get(0).(models.Meetup), args.Get(1).(state.State), args.Error(2)
}

func (m *MockPageService) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(ctx context.Context, sessionID string) (state.State, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(state.State), args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, sessionID string, fn repository.UpdateFunc) (state.State, error) {
	args := m.Called(ctx, sessionID, fn)
	return args.Get(0).(state.State), args.Error(1)
}

func (m *MockSessionRepository) EvictIdle(ctx context.Context, cutoff time.Time) int {
	args := m.Called(ctx, cutoff)
	return args.Int(0)
}

func (m *MockSessionRepository) Count() int {
	args := m.Called()
	return args.Int(0)
}
