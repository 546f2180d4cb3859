// Package ollama wraps the Ollama API used to summarize extracted documents.
package ollama

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	ollama "github.com/JexSrs/go-ollama"
	"github.com/sirupsen/logrus"
)

// Summarizer produces a completion for an extracted document.
type Summarizer interface {
	Summarize(ctx context.Context, model, system, prompt string) (string, error)
}

// Client talks to a single Ollama host.
type Client struct {
	client    *ollama.Ollama
	maxPrompt int
}

// New creates a client for the given Ollama host URL. maxPrompt caps the
// prompt length in characters; 0 disables the cap.
func New(host string, maxPrompt int) (*Client, error) {
	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host URL %q: %w", host, err)
	}

	return &Client{
		client:    ollama.New(*u),
		maxPrompt: maxPrompt,
	}, nil
}

// Summarize sends a single non-streaming generate request and returns the
// model's response text.
func (c *Client) Summarize(ctx context.Context, model, system, prompt string) (string, error) {
	if c.maxPrompt > 0 && len(prompt) > c.maxPrompt {
		logrus.Warnf("prompt truncated to %d characters", c.maxPrompt)
		prompt = prompt[:c.maxPrompt]
	}

	res, err := c.client.Generate(
		c.client.Generate.WithModel(model),
		c.client.Generate.WithSystem(system),
		c.client.Generate.WithPrompt(prompt),
	)
	if err != nil {
		return "", fmt.Errorf("ollama generate failed: %w", err)
	}

	if !res.Done {
		return "", fmt.Errorf("ollama response not complete (unexpected streaming behavior)")
	}
	if res.Response == "" {
		return "", fmt.Errorf("ollama returned an empty response")
	}

	// Models occasionally fence the whole answer in backticks.
	return strings.TrimSpace(strings.Trim(res.Response, "`")), nil
}
