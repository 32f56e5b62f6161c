package queries

import "context"

type BeeperQueries interface {
	List(ctx context.Context) ([]*BeeperView, error)
}

type BeeperReadStore interface {
	FindAll(ctx context.Context) ([]*BeeperView, error)
}

type beeperQueriesImpl struct {
	readStore BeeperReadStore
}

func NewBeeperQueries(readStore BeeperReadStore) BeeperQueries {
	return &beeperQueriesImpl{readStore: readStore}
}

func (q *beeperQueriesImpl) List(ctx context.Context) ([]*BeeperView, error) {
	return q.readStore.FindAll(ctx)
}
