package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

const (
	defaultTemperature float32 = 0.85
	defaultMaxTokens           = 200
)

// chatModel is the slice of the eino chat model the client needs. The ark
// model satisfies it; tests substitute a fake.
type chatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// Client submits one system + one user message to the completion service and
// normalizes the reply. Failures are typed: ErrCompletionRequest covers
// transport, auth, and rate limiting; ErrCompletionEmpty covers a reply with
// no usable content. A single attempt is made, with no retry and no deadline
// beyond the caller's context.
type Client struct {
	model       chatModel
	temperature float32
	maxTokens   int
}

func NewClient(m chatModel) *Client {
	return &Client{
		model:       m,
		temperature: defaultTemperature,
		maxTokens:   defaultMaxTokens,
	}
}

// Complete returns the trimmed text of the first generated choice. The result
// is non-empty on success.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if c == nil || c.model == nil {
		return "", fmt.Errorf("%w: chat model unavailable", ErrCompletionRequest)
	}

	messages := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	}

	out, err := c.model.Generate(ctx, messages,
		model.WithTemperature(c.temperature),
		model.WithMaxTokens(c.maxTokens))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompletionRequest, err)
	}
	if out == nil {
		return "", ErrCompletionEmpty
	}

	content := strings.TrimSpace(out.Content)
	if content == "" {
		return "", ErrCompletionEmpty
	}
	return content, nil
}
