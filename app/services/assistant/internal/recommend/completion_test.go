package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/require"
)

type fakeChatModel struct {
	reply *schema.Message
	err   error

	calls    int
	lastMsgs []*schema.Message
	lastOpts *model.Options
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.calls++
	f.lastMsgs = input
	f.lastOpts = model.GetCommonOptions(&model.Options{}, opts...)
	return f.reply, f.err
}

func TestCompleteTrimsFirstChoice(t *testing.T) {
	fake := &fakeChatModel{reply: &schema.Message{Content: "  Cedar Night — то, что нужно.  \n"}}
	client := NewClient(fake)

	out, err := client.Complete(context.Background(), "persona", "prompt")
	require.NoError(t, err)
	require.Equal(t, "Cedar Night — то, что нужно.", out)
}

func TestCompleteSendsSystemThenUser(t *testing.T) {
	fake := &fakeChatModel{reply: &schema.Message{Content: "ok"}}
	client := NewClient(fake)

	_, err := client.Complete(context.Background(), "persona", "prompt")
	require.NoError(t, err)
	require.Len(t, fake.lastMsgs, 2)
	require.Equal(t, schema.System, fake.lastMsgs[0].Role)
	require.Equal(t, "persona", fake.lastMsgs[0].Content)
	require.Equal(t, schema.User, fake.lastMsgs[1].Role)
	require.Equal(t, "prompt", fake.lastMsgs[1].Content)
}

func TestCompleteUsesFixedSamplingParams(t *testing.T) {
	fake := &fakeChatModel{reply: &schema.Message{Content: "ok"}}
	client := NewClient(fake)

	_, err := client.Complete(context.Background(), "persona", "prompt")
	require.NoError(t, err)
	require.NotNil(t, fake.lastOpts.Temperature)
	require.InDelta(t, 0.85, float64(*fake.lastOpts.Temperature), 1e-6)
	require.NotNil(t, fake.lastOpts.MaxTokens)
	require.Equal(t, 200, *fake.lastOpts.MaxTokens)
}

func TestCompleteRequestFailure(t *testing.T) {
	fake := &fakeChatModel{err: errors.New("rate limited")}
	client := NewClient(fake)

	_, err := client.Complete(context.Background(), "persona", "prompt")
	require.ErrorIs(t, err, ErrCompletionRequest)
}

func TestCompleteEmptyResponse(t *testing.T) {
	for _, reply := range []*schema.Message{nil, {Content: ""}, {Content: "   \n "}} {
		fake := &fakeChatModel{reply: reply}
		client := NewClient(fake)

		_, err := client.Complete(context.Background(), "persona", "prompt")
		require.ErrorIs(t, err, ErrCompletionEmpty)
	}
}

func TestCompleteNilModel(t *testing.T) {
	client := NewClient(nil)

	_, err := client.Complete(context.Background(), "persona", "prompt")
	require.ErrorIs(t, err, ErrCompletionRequest)
}
