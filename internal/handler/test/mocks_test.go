package test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"portfolio/internal/models"
	"portfolio/internal/service"
)

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolvePublicPosts(ctx context.Context, q service.PostQuery) []models.Post {
	args := m.Called(ctx, q)
	return args.Get(0).([]models.Post)
}

func (m *MockResolver) ResolvePublicPost(ctx context.Context, slug string) (*models.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockResolver) ResolveThoughts(ctx context.Context, limit int) []models.Thought {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Thought)
}

func (m *MockResolver) ResolveProjects(ctx context.Context, featuredOnly bool) []models.Project {
	args := m.Called(ctx, featuredOnly)
	return args.Get(0).([]models.Project)
}

func (m *MockResolver) ResolveSiteSettings(ctx context.Context) *models.SiteSettings {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.SiteSettings)
}

func (m *MockResolver) ResolveCategories(ctx context.Context) []models.Category {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category)
}

type MockAuthGate struct {
	mock.Mock
}

func (m *MockAuthGate) CheckSecret(secret string) bool {
	args := m.Called(secret)
	return args.Bool(0)
}

func (m *MockAuthGate) Login(secret string) (string, time.Time, error) {
	args := m.Called(secret)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockAuthGate) ValidateToken(tokenString string) error {
	args := m.Called(tokenString)
	return args.Error(0)
}

type MockAdminPostService struct {
	mock.Mock
}

func (m *MockAdminPostService) ListAdminPosts(ctx context.Context, filter service.AdminPostFilter) ([]models.Post, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockAdminPostService) Create(ctx context.Context, req service.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockAdminPostService) Update(ctx context.Context, postID string, req service.UpdatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, postID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockAdminPostService) Delete(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockAdminPostService) TogglePublished(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockAdminPostService) ToggleFeatured(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) ListProjects(ctx context.Context, featured *bool) ([]models.Project, error) {
	args := m.Called(ctx, featured)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, req service.ContactRequest) (*models.ContactSubmission, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactSubmission), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, fileName, file, size)
	return args.String(0), args.Error(1)
}

func (m *MockImageService) Delete(ctx context.Context, imageURL string) error {
	args := m.Called(ctx, imageURL)
	return args.Error(0)
}

type MockTablesService struct {
	mock.Mock
}

func (m *MockTablesService) GetStoreStats(ctx context.Context) (*models.StoreStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StoreStats), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) HealthCheck() error {
	args := m.Called()
	return args.Error(0)
}
