package gateway

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/time/rate"

	"github.com/cellmart/pos-client/internal/domain/entity"
	"github.com/cellmart/pos-client/internal/domain/enum"
)

// warmupEndpoint is a list endpoint worth pre-populating right after login.
// A nil roles slice means any role may fetch it.
type warmupEndpoint struct {
	path         string
	roles        []enum.Role
	requiresShop bool
}

var warmupEndpoints = []warmupEndpoint{
	{path: "/products/", requiresShop: true},
	{path: "/customers/", requiresShop: true},
	{path: "/sales/", requiresShop: true},
	{path: "/repairs/", requiresShop: true},
	{path: "/dues/", roles: []enum.Role{enum.RoleAdmin, enum.RoleManager}, requiresShop: true},
	{path: "/notifications/"},
	{path: "/users/", roles: []enum.Role{enum.RoleAdmin}},
}

// Warm-up fetches are advisory, so they are dispatched gently.
var warmupLimit = rate.Limit(8)

const warmupBurst = 4

// allowed gates an endpoint on the user's role and shop association. A user
// with no recorded role passes the role check.
func (ep warmupEndpoint) allowed(user *entity.User) bool {
	if user == nil {
		return false
	}
	if user.Role != "" && ep.roles != nil {
		if !slices.Contains(ep.roles, enum.ParseRole(user.Role)) {
			return false
		}
	}
	if ep.requiresShop && !user.HasShop() {
		return false
	}
	return true
}

// WarmUp opportunistically pre-populates the list cache after session
// establishment. Every individual failure is swallowed: warm-up is advisory,
// never blocking, never reported. Completion is awaited only to bound
// concurrency.
func (c *Client) WarmUp(ctx context.Context, user *entity.User) {
	limiter := rate.NewLimiter(warmupLimit, warmupBurst)

	var wg sync.WaitGroup
	for _, ep := range warmupEndpoints {
		if !ep.allowed(user) {
			continue
		}
		wg.Add(1)
		go func(ep warmupEndpoint) {
			defer wg.Done()
			if err := limiter.Wait(ctx); err != nil {
				return
			}
			if _, err := c.Get(ctx, ep.path, nil); err != nil {
				c.log.Debug().Str("path", ep.path).Err(err).Msg("warm-up fetch skipped")
			}
		}(ep)
	}
	wg.Wait()
}
