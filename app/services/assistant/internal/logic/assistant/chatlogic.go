package assistant

import (
	"context"
	"strings"

	"ScentyAI/app/common/consts/errno"
	"ScentyAI/app/services/assistant/internal/navigator"
	"ScentyAI/app/services/assistant/internal/svc"
	"ScentyAI/app/services/assistant/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatLogic {
	return &ChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Chat handles one inbound message: load the conversation's screen, route the
// text through the navigator, and either re-render a menu or produce a
// recommendation. The reply is always a printable string; only malformed
// requests surface an error to the transport.
func (l *ChatLogic) Chat(req *types.ChatRequest) (*types.ChatResponse, error) {
	conversationID := strings.TrimSpace(req.ConversationId)
	text := strings.TrimSpace(req.Text)
	if conversationID == "" {
		return nil, errors.New(int(errno.InvalidParam), "conversation_id is required")
	}
	if text == "" {
		return nil, errors.New(int(errno.InvalidParam), "text is required")
	}

	screen, err := l.svcCtx.Sessions.Screen(l.ctx, conversationID)
	if err != nil {
		// a lost screen only costs the user a re-shown root menu
		l.Logger.Errorf("logic: load screen for %s failed, assuming root: %v", conversationID, err)
		screen = navigator.ScreenRoot
	}

	decision := navigator.Route(screen, text)

	var reply string
	switch decision.Kind {
	case navigator.IntentNavigate, navigator.IntentStatic:
		reply = decision.Text
	case navigator.IntentTagQuery:
		reply = l.svcCtx.Recommender.RecommendByTag(l.ctx, decision.Tag, decision.Label)
	case navigator.IntentFreeText:
		reply = l.svcCtx.Recommender.RecommendFreeText(l.ctx, decision.Text)
	}

	if decision.Screen != screen {
		if err := l.svcCtx.Sessions.SetScreen(l.ctx, conversationID, decision.Screen); err != nil {
			l.Logger.Errorf("logic: persist screen for %s failed: %v", conversationID, err)
		}
	}

	return &types.ChatResponse{
		Text:     reply,
		Keyboard: decision.Keyboard,
	}, nil
}
