package segment

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/parasplit/enclosure"
)

// Enclosure trackers are short-lived: one per paragraph. We keep them in a
// pool to recycle their stacks.

type trackerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalTrackerPool *trackerPool

func init() {
	globalTrackerPool = &trackerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return enclosure.NewTracker(), nil
		})
	globalTrackerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	//config.LIFO = false
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalTrackerPool.opool = pool.NewObjectPool(globalTrackerPool.ctx, factory, config)
}

func borrowTracker() *enclosure.Tracker {
	o, err := globalTrackerPool.opool.BorrowObject(globalTrackerPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow enclosure tracker from pool: %v", err)
		return enclosure.NewTracker()
	}
	return o.(*enclosure.Tracker)
}

func releaseTracker(t *enclosure.Tracker) {
	if t == nil {
		return
	}
	t.Reset()
	if err := globalTrackerPool.opool.ReturnObject(globalTrackerPool.ctx, t); err != nil {
		CT().Errorf("cannot return enclosure tracker to pool: %v", err)
	}
}
