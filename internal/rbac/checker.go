package rbac

import (
	"context"
	"slices"
	"strings"
)

// Checker answers permission questions for a role table.
type Checker struct {
	rules map[string][]string
}

// NewChecker uses RolePermissions when rules is nil.
func NewChecker(rules map[string][]string) *Checker {
	if rules == nil {
		rules = RolePermissions
	}
	return &Checker{rules: rules}
}

func (c *Checker) Has(role, perm string) bool {
	return slices.ContainsFunc(c.rules[role], func(p string) bool {
		return grants(p, perm)
	})
}

// Any reports whether role holds at least one of perms.
func (c *Checker) Any(role string, perms ...string) bool {
	return slices.ContainsFunc(perms, func(p string) bool {
		return c.Has(role, p)
	})
}

func grants(pattern, perm string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(perm, prefix)
	}
	return pattern == perm
}

type roleKey struct{}

func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

func RoleFromContext(ctx context.Context) string {
	s, _ := ctx.Value(roleKey{}).(string)
	return s
}
