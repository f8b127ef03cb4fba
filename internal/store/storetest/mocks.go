// Package storetest provides testify mocks of the store repositories for
// handler and middleware tests.
package storetest

import (
	"context"
	"time"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/01moynul/umkm-web-golang/internal/store"
	"github.com/stretchr/testify/mock"
)

// NewStore returns a Store whose repositories are all fresh mocks.
func NewStore() (*store.Store, *Mocks) {
	m := &Mocks{
		Company:      new(MockCompanyRepository),
		Categories:   new(MockCategoryRepository),
		Products:     new(MockProductRepository),
		Gallery:      new(MockGalleryRepository),
		Shops:        new(MockOnlineShopRepository),
		Blog:         new(MockBlogRepository),
		Jobs:         new(MockJobRepository),
		Applications: new(MockApplicationRepository),
		Messages:     new(MockMessageRepository),
		Admins:       new(MockAdminRepository),
		Menu:         new(MockMenuRepository),
	}
	return &store.Store{
		Company:      m.Company,
		Categories:   m.Categories,
		Products:     m.Products,
		Gallery:      m.Gallery,
		Shops:        m.Shops,
		Blog:         m.Blog,
		Jobs:         m.Jobs,
		Applications: m.Applications,
		Messages:     m.Messages,
		Admins:       m.Admins,
		Menu:         m.Menu,
	}, m
}

// Mocks gives tests typed access to the mocks behind a Store.
type Mocks struct {
	Company      *MockCompanyRepository
	Categories   *MockCategoryRepository
	Products     *MockProductRepository
	Gallery      *MockGalleryRepository
	Shops        *MockOnlineShopRepository
	Blog         *MockBlogRepository
	Jobs         *MockJobRepository
	Applications *MockApplicationRepository
	Messages     *MockMessageRepository
	Admins       *MockAdminRepository
	Menu         *MockMenuRepository
}

// AssertExpectations checks every repository mock.
func (m *Mocks) AssertExpectations(t mock.TestingT) {
	mock.AssertExpectationsForObjects(t,
		m.Company, m.Categories, m.Products, m.Gallery, m.Shops, m.Blog,
		m.Jobs, m.Applications, m.Messages, m.Admins, m.Menu)
}

// MockCompanyRepository is a mock implementation of store.CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Get(ctx context.Context) (*models.CompanyInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompanyInfo), args.Error(1)
}

func (m *MockCompanyRepository) Upsert(ctx context.Context, info *models.CompanyInfo) error {
	return m.Called(ctx, info).Error(0)
}

// MockCategoryRepository is a mock implementation of store.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Get(ctx context.Context, id string) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, c *models.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, c *models.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCategoryRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockProductRepository is a mock implementation of store.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, f store.ProductFilter) ([]models.Product, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Get(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetActive(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Related(ctx context.Context, p *models.Product, limit int) ([]models.Product, error) {
	args := m.Called(ctx, p, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p *models.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *models.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockProductRepository) Recent(ctx context.Context, limit int) ([]models.ProductSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductSummary), args.Error(1)
}

// MockGalleryRepository is a mock implementation of store.GalleryRepository
type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) List(ctx context.Context, activeOnly bool) ([]models.GalleryItem, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) Get(ctx context.Context, id string) (*models.GalleryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) Create(ctx context.Context, g *models.GalleryItem) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGalleryRepository) Update(ctx context.Context, g *models.GalleryItem) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGalleryRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockOnlineShopRepository is a mock implementation of store.OnlineShopRepository
type MockOnlineShopRepository struct {
	mock.Mock
}

func (m *MockOnlineShopRepository) List(ctx context.Context, activeOnly bool) ([]models.OnlineShop, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OnlineShop), args.Error(1)
}

func (m *MockOnlineShopRepository) Get(ctx context.Context, id string) (*models.OnlineShop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OnlineShop), args.Error(1)
}

func (m *MockOnlineShopRepository) Create(ctx context.Context, s *models.OnlineShop) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockOnlineShopRepository) Update(ctx context.Context, s *models.OnlineShop) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockOnlineShopRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockBlogRepository is a mock implementation of store.BlogRepository
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) List(ctx context.Context, publishedOnly bool) ([]models.BlogArticle, error) {
	args := m.Called(ctx, publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogArticle), args.Error(1)
}

func (m *MockBlogRepository) Get(ctx context.Context, id string) (*models.BlogArticle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogArticle), args.Error(1)
}

func (m *MockBlogRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogArticle, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogArticle), args.Error(1)
}

func (m *MockBlogRepository) Create(ctx context.Context, a *models.BlogArticle) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockBlogRepository) Update(ctx context.Context, a *models.BlogArticle) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockBlogRepository) SetPublished(ctx context.Context, id string, published bool, at time.Time) error {
	return m.Called(ctx, id, published, at).Error(0)
}

func (m *MockBlogRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBlogRepository) CountPublished(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockJobRepository is a mock implementation of store.JobRepository
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) List(ctx context.Context, activeOnly bool) ([]models.JobPosting, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobPosting), args.Error(1)
}

func (m *MockJobRepository) Get(ctx context.Context, id string) (*models.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobPosting), args.Error(1)
}

func (m *MockJobRepository) Create(ctx context.Context, j *models.JobPosting) error {
	return m.Called(ctx, j).Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *models.JobPosting) error {
	return m.Called(ctx, j).Error(0)
}

func (m *MockJobRepository) SetActive(ctx context.Context, id string, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *MockJobRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockJobRepository) CountActive(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockApplicationRepository is a mock implementation of store.ApplicationRepository
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, a *models.JobApplication) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]models.JobApplication, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobApplication), args.Error(1)
}

func (m *MockApplicationRepository) List(ctx context.Context) ([]models.JobApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobApplication), args.Error(1)
}

func (m *MockApplicationRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockMessageRepository is a mock implementation of store.MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactMessage), args.Error(1)
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMessageRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMessageRepository) CountUnread(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockMessageRepository) Recent(ctx context.Context, limit int) ([]models.MessageSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MessageSummary), args.Error(1)
}

// MockAdminRepository is a mock implementation of store.AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Any(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*models.AdminProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminProfile), args.Error(1)
}

func (m *MockAdminRepository) GetByID(ctx context.Context, id string) (*models.AdminProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminProfile), args.Error(1)
}

func (m *MockAdminRepository) Create(ctx context.Context, a *models.AdminProfile) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAdminRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *MockAdminRepository) List(ctx context.Context) ([]models.AdminProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AdminProfile), args.Error(1)
}

// MockMenuRepository is a mock implementation of store.MenuRepository
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) List(ctx context.Context, activeOnly bool) ([]models.MenuItem, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) SetActive(ctx context.Context, id string, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}
