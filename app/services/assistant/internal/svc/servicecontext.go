package svc

import (
	"context"

	"ScentyAI/app/dal/catalog"
	"ScentyAI/app/services/assistant/internal/config"
	"ScentyAI/app/services/assistant/internal/recommend"
	"ScentyAI/app/services/assistant/internal/session"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type ServiceContext struct {
	Config config.Config

	CandlesModel catalog.CandlesModel
	Sessions     session.Store
	Recommender  *recommend.Recommender
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	completer := recommend.NewClient(nil)
	cm, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
		BaseURL: c.ChatModel.BaseUrl,
		APIKey:  c.ChatModel.APIKey,
		Model:   c.ChatModel.Model,
	})
	if err != nil {
		// the completion client degrades to its request-failed path
		logx.Errorw("init ark chat model failed", logx.Field("err", err))
	} else {
		completer = recommend.NewClient(cm)
		logx.Infow("ark chat model initialized")
	}

	candles := catalog.NewCandlesModel(sqlx.MustNewConn(c.MysqlConf), c.CacheConf)

	return &ServiceContext{
		Config:       c,
		CandlesModel: candles,
		Sessions:     session.NewRedisStore(redis.MustNewRedis(c.SessionRedis), c.SessionTTLSeconds),
		Recommender:  recommend.NewRecommender(candles, completer),
	}
}
