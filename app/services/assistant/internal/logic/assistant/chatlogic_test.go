package assistant

import (
	"context"
	"testing"

	"ScentyAI/app/dal/catalog"
	"ScentyAI/app/services/assistant/internal/navigator"
	"ScentyAI/app/services/assistant/internal/recommend"
	"ScentyAI/app/services/assistant/internal/session"
	"ScentyAI/app/services/assistant/internal/svc"
	"ScentyAI/app/services/assistant/internal/types"

	"github.com/stretchr/testify/require"
)

type stubSource struct {
	all   []*catalog.Candles
	byTag map[string][]*catalog.Candles
}

func (s *stubSource) FindAll(context.Context) ([]*catalog.Candles, error) {
	return s.all, nil
}

func (s *stubSource) FindByTag(_ context.Context, tag string) ([]*catalog.Candles, error) {
	return s.byTag[tag], nil
}

type stubCompleter struct {
	reply string
	calls int

	lastUser string
}

func (s *stubCompleter) Complete(_ context.Context, _, user string) (string, error) {
	s.calls++
	s.lastUser = user
	return s.reply, nil
}

func newTestContext(source *stubSource, completer *stubCompleter) *svc.ServiceContext {
	return &svc.ServiceContext{
		Sessions:    session.NewMemoryStore(),
		Recommender: recommend.NewRecommender(source, completer),
	}
}

func chat(t *testing.T, svcCtx *svc.ServiceContext, conversationID, text string) *types.ChatResponse {
	t.Helper()
	resp, err := NewChatLogic(context.Background(), svcCtx).Chat(&types.ChatRequest{
		ConversationId: conversationID,
		Text:           text,
	})
	require.NoError(t, err)
	return resp
}

func TestChatRejectsBlankFields(t *testing.T) {
	svcCtx := newTestContext(&stubSource{}, &stubCompleter{})
	l := NewChatLogic(context.Background(), svcCtx)

	_, err := l.Chat(&types.ChatRequest{ConversationId: "", Text: "привет"})
	require.Error(t, err)

	_, err = l.Chat(&types.ChatRequest{ConversationId: "chat-1", Text: "   "})
	require.Error(t, err)
}

func TestChatMenuNavigationRendersKeyboards(t *testing.T) {
	completer := &stubCompleter{reply: "unused"}
	svcCtx := newTestContext(&stubSource{}, completer)

	resp := chat(t, svcCtx, "chat-1", "/start")
	require.Equal(t, navigator.RootKeyboard(), resp.Keyboard)

	resp = chat(t, svcCtx, "chat-1", "🧘 Под настроение")
	require.Equal(t, navigator.MoodKeyboard(), resp.Keyboard)
	require.Zero(t, completer.calls)

	screen, err := svcCtx.Sessions.Screen(context.Background(), "chat-1")
	require.NoError(t, err)
	require.Equal(t, navigator.ScreenMood, screen)

	resp = chat(t, svcCtx, "chat-1", "⬅️ Назад")
	require.Equal(t, navigator.RootKeyboard(), resp.Keyboard)

	screen, err = svcCtx.Sessions.Screen(context.Background(), "chat-1")
	require.NoError(t, err)
	require.Equal(t, navigator.ScreenRoot, screen)
}

func TestChatTagSelectionResetsScreen(t *testing.T) {
	completer := &stubCompleter{reply: "Amber Glow согреет вечер."}
	svcCtx := newTestContext(&stubSource{
		byTag: map[string][]*catalog.Candles{
			"уют": {{Id: 1, Title: "Amber Glow", Notes: "амбра и ваниль"}},
		},
	}, completer)

	chat(t, svcCtx, "chat-1", "🧘 Под настроение")
	resp := chat(t, svcCtx, "chat-1", "Хочется уюта и тепла")

	require.Equal(t, "Amber Glow согреет вечер.", resp.Text)
	require.Empty(t, resp.Keyboard)
	require.Equal(t, 1, completer.calls)
	// the caption is what the model sees as the user message
	require.Contains(t, completer.lastUser, "Пользователь: Хочется уюта и тепла")

	screen, err := svcCtx.Sessions.Screen(context.Background(), "chat-1")
	require.NoError(t, err)
	require.Equal(t, navigator.ScreenRoot, screen)
}

func TestChatStaticRepliesSkipRecommender(t *testing.T) {
	completer := &stubCompleter{reply: "unused"}
	svcCtx := newTestContext(&stubSource{}, completer)

	resp := chat(t, svcCtx, "chat-1", "❓ Частые вопросы")
	require.Contains(t, resp.Text, "Частые вопросы")
	require.Empty(t, resp.Keyboard)
	require.Zero(t, completer.calls)
}

func TestChatFreeTextWithEmptyCatalog(t *testing.T) {
	completer := &stubCompleter{reply: "unused"}
	svcCtx := newTestContext(&stubSource{}, completer)

	resp := chat(t, svcCtx, "chat-1", "что посоветуешь?")
	require.Equal(t, recommend.EmptyCatalogReply, resp.Text)
	require.Zero(t, completer.calls)
}

func TestChatFreeTextGoesThroughRecommender(t *testing.T) {
	completer := &stubCompleter{reply: "Возьми Cedar Night."}
	svcCtx := newTestContext(&stubSource{
		all: []*catalog.Candles{{Id: 2, Title: "Cedar Night", Notes: "кедр и дым"}},
	}, completer)

	resp := chat(t, svcCtx, "chat-1", "хочу что-то дымное")
	require.Equal(t, "Возьми Cedar Night.", resp.Text)
	require.Equal(t, 1, completer.calls)
	require.Contains(t, completer.lastUser, "Cedar Night")
}
