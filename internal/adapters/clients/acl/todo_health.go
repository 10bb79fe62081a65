package acl

import (
	"context"
	"errors"
	"fmt"
)

// errNoToken is reported by HealthCheck when no API token is configured.
var errNoToken = errors.New("no API token configured (set TODO_TOKEN or client.token)")

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *TodoistClient) Name() string {
	return "todoist-api"
}

// HealthCheck reports whether the task API is usable from this invocation.
// An open breaker or a missing token fails without a network call; otherwise
// the authenticated user endpoint is probed.
func (c *TodoistClient) HealthCheck(ctx context.Context) error {
	if err := c.req.BreakerHealth(ctx); err != nil {
		return err
	}
	if !c.req.HasToken() {
		return errNoToken
	}
	if _, err := c.CurrentUser(ctx); err != nil {
		return fmt.Errorf("probing %s: %w", c.req.BaseURL(), err)
	}
	return nil
}
