package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	MysqlConf sqlx.SqlConf
	CacheConf cache.CacheConf

	SessionRedis      redis.RedisConf
	SessionTTLSeconds int `json:",default=1800"`

	ChatModel ModelConf

	LogConf logx.LogConf
}

type ModelConf struct {
	BaseUrl string
	APIKey  string
	Model   string
}
