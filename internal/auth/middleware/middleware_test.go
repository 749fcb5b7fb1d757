package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mind-engage/mindengage-rounds/internal/rbac"
)

func TestIssueAndParse(t *testing.T) {
	a := NewAuthService("secret", time.Hour)
	tok, err := a.IssueJWT("session-1", RolePlayer)
	if err != nil {
		t.Fatal(err)
	}
	c, err := a.Parse(tok)
	if err != nil {
		t.Fatal(err)
	}
	if c.Subject != "session-1" || c.Role != RolePlayer {
		t.Errorf("claims = %+v", c)
	}

	other := NewAuthService("other", time.Hour)
	if _, err := other.Parse(tok); err == nil {
		t.Error("token signed with another secret must fail")
	}
}

func TestExpiredToken(t *testing.T) {
	a := NewAuthService("secret", time.Nanosecond)
	tok, _ := a.IssueJWT("s", RolePlayer)
	time.Sleep(1100 * time.Millisecond)
	if _, err := a.Parse(tok); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestJWTMiddleware(t *testing.T) {
	a := NewAuthService("secret", time.Hour)
	var gotSub, gotRole string
	h := JWTMiddleware(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub = SubjectFromContext(r.Context())
		gotRole = rbac.RoleFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no header: %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: %d", rec.Code)
	}

	tok, _ := a.IssueJWT("session-9", RolePlayer)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || gotSub != "session-9" || gotRole != RolePlayer {
		t.Fatalf("status %d sub %q role %q", rec.Code, gotSub, gotRole)
	}
}

func TestAdminLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	a := NewAuthService("secret", time.Hour)
	h := AdminLoginHandler(a, "admin", string(hash))

	cases := []struct {
		body string
		want int
	}{
		{`{"username":"admin","password":"hunter2"}`, http.StatusOK},
		{`{"username":"admin","password":"wrong"}`, http.StatusUnauthorized},
		{`{"username":"root","password":"hunter2"}`, http.StatusUnauthorized},
		{`{`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/admin", strings.NewReader(tc.body)))
		if rec.Code != tc.want {
			t.Errorf("%s: status %d, want %d", tc.body, rec.Code, tc.want)
		}
	}

	rec := httptest.NewRecorder()
	AdminLoginHandler(a, "admin", "")(rec, httptest.NewRequest(http.MethodPost, "/auth/admin", strings.NewReader(`{"username":"admin","password":""}`)))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("login without configured hash: %d", rec.Code)
	}
}
