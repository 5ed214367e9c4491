// Package recommend turns a classified intent into a single user-visible
// recommendation string. It is the only place that touches both the catalog
// and the completion service, and it never returns an error to its caller:
// every failure path collapses to a fixed, in-character apology.
package recommend

import (
	"context"

	"ScentyAI/app/dal/catalog"

	"github.com/zeromicro/go-zero/core/logx"
)

const (
	taggedPersona = "Ты ароматный помощник. Отвечай стильно, кратко и по сути."

	freeTextPersona = "Ты стильный и дружелюбный ароматный помощник. " +
		"Твоя задача — рекомендовать свечу из каталога, ориентируясь на настроение пользователя. " +
		"Говори коротко, красиво и по делу. Не объясняй, не повторяй весь каталог. " +
		"Ответ — не более 2 предложений. Упомяни название свечи и атмосферу, которую она создаёт."

	taggedFallback   = "Пока не могу подобрать свечу, но скоро всё исправим 🌙"
	freeTextFallback = "Сегодня аромат в пути, но я обязательно подберу его для тебя позже 🌙"
)

// CandleSource is the read-only slice of the catalog model the recommender
// needs.
type CandleSource interface {
	FindAll(ctx context.Context) ([]*catalog.Candles, error)
	FindByTag(ctx context.Context, tag string) ([]*catalog.Candles, error)
}

// Completer abstracts the completion client for substitution in tests.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type Recommender struct {
	candles   CandleSource
	completer Completer
}

func NewRecommender(candles CandleSource, completer Completer) *Recommender {
	return &Recommender{
		candles:   candles,
		completer: completer,
	}
}

// RecommendByTag answers a menu selection. An empty candidate set returns the
// tag apology without a completion call; catalog or completion failure
// returns the tagged fallback.
func (r *Recommender) RecommendByTag(ctx context.Context, tag, userMessage string) string {
	log := logx.WithContext(ctx)

	items, err := r.candles.FindByTag(ctx, tag)
	if err != nil {
		log.Errorf("recommend by tag %q: %v: %v", tag, ErrCatalogUnavailable, err)
		return taggedFallback
	}
	if len(items) == 0 {
		return EmptyTagReply(tag)
	}

	reply, err := r.completer.Complete(ctx, taggedPersona, BuildTaggedPrompt(tag, userMessage, items))
	if err != nil {
		log.Errorf("recommend by tag %q: %v", tag, err)
		return taggedFallback
	}
	return reply
}

// RecommendFreeText answers unconstrained text by offering the whole catalog
// to the model. An empty catalog returns the catalog-empty message without a
// completion call; any failure returns the free-text fallback.
func (r *Recommender) RecommendFreeText(ctx context.Context, userMessage string) string {
	log := logx.WithContext(ctx)

	items, err := r.candles.FindAll(ctx)
	if err != nil {
		log.Errorf("recommend free text: %v: %v", ErrCatalogUnavailable, err)
		return freeTextFallback
	}
	if len(items) == 0 {
		return EmptyCatalogReply
	}

	user := BuildCatalogPrompt(items) + "\n\nПользователь: " + userMessage
	reply, err := r.completer.Complete(ctx, freeTextPersona, user)
	if err != nil {
		log.Errorf("recommend free text: %v", err)
		return freeTextFallback
	}
	return reply
}
