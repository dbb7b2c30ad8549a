package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"techblog/internal/markdown"
	"techblog/internal/models"
	"techblog/internal/repository"
	"techblog/internal/service"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser *models.User
	registerErr  error
	verifyUser   *models.User
	verifyErr    error

	lastRegisterUsername string
	lastVerifyUsername   string
}

func (m *mockAuth) Register(_ context.Context, username, password, bio string) (*models.User, error) {
	m.lastRegisterUsername = username
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Verify(_ context.Context, username, password string) (*models.User, error) {
	m.lastVerifyUsername = username
	return m.verifyUser, m.verifyErr
}

type mockSessions struct {
	issueToken string
	issueErr   error
	// identities maps a presented token to the identity it parses to.
	identities map[string]models.Identity
}

func (m *mockSessions) Issue(u *models.User) (string, error) {
	return m.issueToken, m.issueErr
}

func (m *mockSessions) Parse(token string) (models.Identity, error) {
	identity, ok := m.identities[token]
	if !ok {
		return models.Identity{}, service.ErrInvalidToken
	}
	return identity, nil
}

func (m *mockSessions) TTL() time.Duration { return 30 * time.Minute }

type mockUsers struct {
	byID   map[int64]*models.User
	byName map[string]*models.User
}

func (m *mockUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := m.byName[username]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

type mockBlogs struct {
	getBlog   *models.Blog
	getErr    error
	listPage  models.BlogPage
	listErr   error
	createID  int64
	createErr error
	updateErr error
	deleteErr error

	lastFilter   string
	lastPage     int
	lastIdentity models.Identity
	lastInput    service.BlogInput
	createCalls  int
	updateCalls  int
	deleteCalls  int
}

func (m *mockBlogs) Get(_ context.Context, id int64) (*models.Blog, error) {
	return m.getBlog, m.getErr
}

func (m *mockBlogs) List(_ context.Context, filter string, page int) (models.BlogPage, error) {
	m.lastFilter = filter
	m.lastPage = page
	return m.listPage, m.listErr
}

func (m *mockBlogs) ListByAuthor(_ context.Context, authorID int64, page int) (models.BlogPage, error) {
	m.lastPage = page
	return m.listPage, m.listErr
}

func (m *mockBlogs) Create(_ context.Context, identity models.Identity, in service.BlogInput) (int64, error) {
	m.createCalls++
	m.lastIdentity = identity
	m.lastInput = in
	return m.createID, m.createErr
}

func (m *mockBlogs) Update(_ context.Context, identity models.Identity, blogID int64, in service.BlogInput) error {
	m.updateCalls++
	m.lastIdentity = identity
	m.lastInput = in
	return m.updateErr
}

func (m *mockBlogs) Delete(_ context.Context, identity models.Identity, blogID int64) error {
	m.deleteCalls++
	m.lastIdentity = identity
	return m.deleteErr
}

type mockComments struct {
	addID    int64
	addErr   error
	comments []models.Comment
	listErr  error

	lastContent string
	addCalls    int
}

func (m *mockComments) Add(_ context.Context, identity models.Identity, blogID int64, content string) (int64, error) {
	m.addCalls++
	m.lastContent = content
	return m.addID, m.addErr
}

func (m *mockComments) ListByBlog(_ context.Context, blogID int64) ([]models.Comment, error) {
	return m.comments, m.listErr
}

// ---- Shared Test Helpers ----

const testTemplateGlob = "../../web/templates/*.html"

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, markdown.New(), nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes(RouterConfig{
		TemplateGlob: testTemplateGlob,
		FlashSecret:  []byte("test-flash-secret"),
	})
}
