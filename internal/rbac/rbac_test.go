package rbac

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChecker(t *testing.T) {
	c := NewChecker(map[string][]string{
		"player": {"round:play"},
		"ops":    {"journal:*"},
		"admin":  {"*"},
	})
	cases := []struct {
		role, perm string
		want       bool
	}{
		{"player", "round:play", true},
		{"player", "journal:view", false},
		{"ops", "journal:view", true},
		{"ops", "round:play", false},
		{"admin", "anything:at-all", true},
		{"", "round:play", false},
	}
	for _, tc := range cases {
		if got := c.Has(tc.role, tc.perm); got != tc.want {
			t.Errorf("Has(%q, %q) = %v", tc.role, tc.perm, got)
		}
	}
	if !c.Any("player", "journal:view", "round:play") {
		t.Error("Any should accept one matching permission")
	}
}

func TestRequire(t *testing.T) {
	h := Require("round:play")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for role, want := range map[string]int{"player": 204, "admin": 204, "": 403, "guest": 403} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRole(req.Context(), role))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Errorf("role %q: status %d, want %d", role, rec.Code, want)
		}
	}
}
