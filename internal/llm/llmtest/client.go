// Package llmtest provides a scripted model client for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/minhle/cv-match/internal/llm"
)

// Call records one invocation of the mock client.
type Call struct {
	Method string
	Prompt string
	Tier   llm.ModelTier
}

// Client is a scripted llm.Client. Responses are returned in order; when the
// script runs out the last entry repeats. A non-nil Handler overrides the
// script entirely.
type Client struct {
	mu        sync.Mutex
	Responses []string
	Err       error
	Handler   func(prompt string, tier llm.ModelTier) (string, error)
	calls     []Call
	next      int
}

var _ llm.Client = (*Client)(nil)

// NewClient builds a mock returning the given responses in order.
func NewClient(responses ...string) *Client {
	return &Client{Responses: responses}
}

// NewErrClient builds a mock whose every call fails with err.
func NewErrClient(err error) *Client {
	return &Client{Err: err}
}

func (c *Client) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return c.respond(ctx, "GenerateContent", prompt, tier)
}

func (c *Client) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return c.respond(ctx, "GenerateJSON", prompt, tier)
}

func (c *Client) Close() error { return nil }

// Calls returns a copy of every recorded invocation.
func (c *Client) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Call, len(c.calls))
	copy(out, c.calls)
	return out
}

// CallCount returns how many generate calls the mock has served.
func (c *Client) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func (c *Client) respond(ctx context.Context, method, prompt string, tier llm.ModelTier) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, Call{Method: method, Prompt: prompt, Tier: tier})

	if c.Handler != nil {
		return c.Handler(prompt, tier)
	}
	if c.Err != nil {
		return "", c.Err
	}
	if len(c.Responses) == 0 {
		return "", nil
	}
	idx := c.next
	if idx >= len(c.Responses) {
		idx = len(c.Responses) - 1
	}
	c.next++
	return c.Responses[idx], nil
}
