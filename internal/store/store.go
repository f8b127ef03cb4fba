package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

const mysqlDuplicateEntry = 1062

type CompanyRepository interface {
	Get(ctx context.Context) (*models.CompanyInfo, error)
	Upsert(ctx context.Context, info *models.CompanyInfo) error
}

type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type ProductRepository interface {
	List(ctx context.Context, f ProductFilter) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	GetActive(ctx context.Context, id string) (*models.Product, error)
	Related(ctx context.Context, p *models.Product, limit int) ([]models.Product, error)
	Featured(ctx context.Context, limit int) ([]models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	Recent(ctx context.Context, limit int) ([]models.ProductSummary, error)
}

type GalleryRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.GalleryItem, error)
	Get(ctx context.Context, id string) (*models.GalleryItem, error)
	Create(ctx context.Context, g *models.GalleryItem) error
	Update(ctx context.Context, g *models.GalleryItem) error
	Delete(ctx context.Context, id string) error
}

type OnlineShopRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.OnlineShop, error)
	Get(ctx context.Context, id string) (*models.OnlineShop, error)
	Create(ctx context.Context, s *models.OnlineShop) error
	Update(ctx context.Context, s *models.OnlineShop) error
	Delete(ctx context.Context, id string) error
}

type BlogRepository interface {
	List(ctx context.Context, publishedOnly bool) ([]models.BlogArticle, error)
	Get(ctx context.Context, id string) (*models.BlogArticle, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogArticle, error)
	Create(ctx context.Context, a *models.BlogArticle) error
	Update(ctx context.Context, a *models.BlogArticle) error
	SetPublished(ctx context.Context, id string, published bool, at time.Time) error
	Delete(ctx context.Context, id string) error
	CountPublished(ctx context.Context) (int, error)
}

type JobRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.JobPosting, error)
	Get(ctx context.Context, id string) (*models.JobPosting, error)
	Create(ctx context.Context, j *models.JobPosting) error
	Update(ctx context.Context, j *models.JobPosting) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, a *models.JobApplication) error
	ListByJob(ctx context.Context, jobID string) ([]models.JobApplication, error)
	List(ctx context.Context) ([]models.JobApplication, error)
	Count(ctx context.Context) (int, error)
}

type MessageRepository interface {
	List(ctx context.Context) ([]models.ContactMessage, error)
	Create(ctx context.Context, m *models.ContactMessage) error
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	CountUnread(ctx context.Context) (int, error)
	Recent(ctx context.Context, limit int) ([]models.MessageSummary, error)
}

type AdminRepository interface {
	Any(ctx context.Context) (bool, error)
	GetByEmail(ctx context.Context, email string) (*models.AdminProfile, error)
	GetByID(ctx context.Context, id string) (*models.AdminProfile, error)
	Create(ctx context.Context, a *models.AdminProfile) error
	UpdatePassword(ctx context.Context, id, hash string) error
	List(ctx context.Context) ([]models.AdminProfile, error)
}

type MenuRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.MenuItem, error)
	SetActive(ctx context.Context, id string, active bool) error
}

// Store groups the repositories the handlers work with.
type Store struct {
	Company      CompanyRepository
	Categories   CategoryRepository
	Products     ProductRepository
	Gallery      GalleryRepository
	Shops        OnlineShopRepository
	Blog         BlogRepository
	Jobs         JobRepository
	Applications ApplicationRepository
	Messages     MessageRepository
	Admins       AdminRepository
	Menu         MenuRepository
}

// New wires every MySQL repository to the same connection pool.
func New(db *sqlx.DB) *Store {
	return &Store{
		Company:      &CompanyRepo{DB: db},
		Categories:   &CategoryRepo{DB: db},
		Products:     &ProductRepo{DB: db},
		Gallery:      &GalleryRepo{DB: db},
		Shops:        &OnlineShopRepo{DB: db},
		Blog:         &BlogRepo{DB: db},
		Jobs:         &JobRepo{DB: db},
		Applications: &ApplicationRepo{DB: db},
		Messages:     &MessageRepo{DB: db},
		Admins:       &AdminRepo{DB: db},
		Menu:         &MenuRepo{DB: db},
	}
}

// wrap turns driver errors into the package sentinels and adds context.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// expectRow reports ErrNotFound when a write matched nothing.
func expectRow(op string, res sql.Result, err error) error {
	if err != nil {
		return wrap(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrap(op, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func count(ctx context.Context, db *sqlx.DB, op, query string, args ...any) (int, error) {
	var n int
	if err := db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, wrap(op, err)
	}
	return n, nil
}
