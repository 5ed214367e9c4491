package catalog

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ CandlesModel = (*customCandlesModel)(nil)

type (
	// CandlesModel is an interface to be customized, add more methods here,
	// and implement the added methods in customCandlesModel.
	CandlesModel interface {
		candlesModel
		FindAll(ctx context.Context) ([]*Candles, error)
		FindByTag(ctx context.Context, tag string) ([]*Candles, error)
	}

	customCandlesModel struct {
		*defaultCandlesModel
	}
)

// NewCandlesModel returns a model for the database table.
func NewCandlesModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) CandlesModel {
	return &customCandlesModel{
		defaultCandlesModel: newCandlesModel(conn, c, opts...),
	}
}

// FindAll returns every candle in the store's natural order. The order is not
// guaranteed stable across calls.
func (m *customCandlesModel) FindAll(ctx context.Context) ([]*Candles, error) {
	query := fmt.Sprintf("select %s from %s", candlesRows, m.table)
	var resp []*Candles
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query)
	switch err {
	case nil:
		return resp, nil
	case sqlc.ErrNotFound:
		return []*Candles{}, nil
	default:
		return nil, err
	}
}

// FindByTag returns candles whose `tags` JSON array contains tag,
// case-insensitively. No match yields an empty slice, not an error.
func (m *customCandlesModel) FindByTag(ctx context.Context, tag string) ([]*Candles, error) {
	query := fmt.Sprintf("select %s from %s where json_search(lower(`tags`), 'one', lower(?)) is not null", candlesRows, m.table)
	var resp []*Candles
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query, tag)
	switch err {
	case nil:
		return resp, nil
	case sqlc.ErrNotFound:
		return []*Candles{}, nil
	default:
		return nil, err
	}
}
