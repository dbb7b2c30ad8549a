package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"techblog/internal/models"
	"techblog/internal/service"
)

func postForm(r http.Handler, path string, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_SuccessRedirectsToLogin(t *testing.T) {
	auth := &mockAuth{registerUser: &models.User{ID: 1, Username: "alice"}}
	s := &service.Service{
		Auth:     auth,
		Sessions: &mockSessions{},
		Users:    &mockUsers{},
		Blogs:    &mockBlogs{},
		Comments: &mockComments{},
	}
	r := newTestRouter(s)

	w := postForm(r, "/register", url.Values{"username": {"alice"}, "password": {"pw123"}})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status=%d, want %d; body=%s", w.Code, http.StatusSeeOther, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("redirect to %q, want /login", loc)
	}
	if auth.lastRegisterUsername != "alice" {
		t.Fatalf("Register got username %q, want alice", auth.lastRegisterUsername)
	}
}

func TestRegister_DuplicateUsernameRerendersForm(t *testing.T) {
	auth := &mockAuth{registerErr: service.ErrUsernameTaken}
	s := &service.Service{
		Auth:     auth,
		Sessions: &mockSessions{},
		Users:    &mockUsers{},
		Blogs:    &mockBlogs{},
		Comments: &mockComments{},
	}
	r := newTestRouter(s)

	w := postForm(r, "/register", url.Values{"username": {"alice"}, "password": {"pw123"}})

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	if body := w.Body.String(); !strings.Contains(body, "Username already exists") {
		t.Fatalf("expected duplicate-username flash in body, got %s", body)
	}
}

func TestRegister_MissingFieldsRerenderWithErrors(t *testing.T) {
	auth := &mockAuth{}
	s := &service.Service{
		Auth:     auth,
		Sessions: &mockSessions{},
		Users:    &mockUsers{},
		Blogs:    &mockBlogs{},
		Comments: &mockComments{},
	}
	r := newTestRouter(s)

	w := postForm(r, "/register", url.Values{"username": {""}, "password": {""}})

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Username is required") || !strings.Contains(body, "Password is required") {
		t.Fatalf("expected field errors in body, got %s", body)
	}
	if auth.lastRegisterUsername != "" {
		t.Fatal("Register must not be called on validation failure")
	}
}

func TestLogin_SuccessSetsSessionCookieAndRedirects(t *testing.T) {
	alice := &models.User{ID: 1, Username: "alice"}
	s := &service.Service{
		Auth:     &mockAuth{verifyUser: alice},
		Sessions: &mockSessions{issueToken: "tok123"},
		Users:    &mockUsers{},
		Blogs:    &mockBlogs{},
		Comments: &mockComments{},
	}
	r := newTestRouter(s)

	w := postForm(r, "/login", url.Values{"username": {"alice"}, "password": {"pw123"}})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status=%d, want %d; body=%s", w.Code, http.StatusSeeOther, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("redirect to %q, want /dashboard", loc)
	}

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookieName && c.Value == "tok123" {
			found = true
			if !c.HttpOnly {
				t.Fatal("session cookie must be HttpOnly")
			}
		}
	}
	if !found {
		t.Fatalf("session cookie not set; headers=%v", w.Header())
	}
}

func TestLogin_InvalidCredentialsRerendersForm(t *testing.T) {
	s := &service.Service{
		Auth:     &mockAuth{verifyErr: service.ErrInvalidCredentials},
		Sessions: &mockSessions{},
		Users:    &mockUsers{},
		Blogs:    &mockBlogs{},
		Comments: &mockComments{},
	}
	r := newTestRouter(s)

	w := postForm(r, "/login", url.Values{"username": {"alice"}, "password": {"wrong"}})

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	if body := w.Body.String(); !strings.Contains(body, "Invalid credentials") {
		t.Fatalf("expected invalid-credentials flash in body, got %s", body)
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookieName {
			t.Fatal("no session cookie may be set on failed login")
		}
	}
}

func TestLogout_ClearsSessionCookie(t *testing.T) {
	s := &service.Service{
		Sessions: &mockSessions{identities: map[string]models.Identity{
			"tok": {UserID: 1, Username: "alice"},
		}},
		Users:    &mockUsers{},
		Blogs:    &mockBlogs{},
		Comments: &mockComments{},
	}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(sessionCookie("tok"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("redirect to %q, want /", loc)
	}

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("session cookie must be expired on logout")
	}
}
