package vandapay

import (
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/mrhaji1999/vandapay-sub001/infra/client/rest"
	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

// VandaPay wallet API (Service) Client.
//
// Thin typed bindings over the REST transport ; every operation
// returns the unwrapped payload, leaving envelope/shape tolerance
// to the model adapters.
type Client struct {
	rest  *rest.Client
	cache simplelru.LRUCache[string, *model.UserProfile]
	logs  *slog.Logger
}

// profile lookups are cached per bearer token ;
// a re-login issues a fresh token and misses naturally
const profileCacheTTL = time.Minute

func NewClient(logger *slog.Logger, transport *rest.Client) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		rest:  transport,
		cache: expirable.NewLRU[string, *model.UserProfile](0, nil, profileCacheTTL),
		logs:  logger,
	}
}

// Transport exposes the underlying REST client.
func (c *Client) Transport() *rest.Client {
	return c.rest
}

// dataset pages [rows] into a model.Dataset.
func dataset[T any](rows []T) *model.Dataset[T] {
	list := &model.Dataset[T]{
		Data:  make([]*T, 0, len(rows)),
		Total: len(rows),
	}
	for i := range rows {
		list.Data = append(list.Data, &rows[i])
	}
	return list
}
