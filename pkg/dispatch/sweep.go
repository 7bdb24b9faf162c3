package dispatch

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// sweepConcurrency bounds parallel pings so a large fleet does not open a
// burst of connections at once.
const sweepConcurrency = 8

// PingAll probes every known agent concurrently and reports per-agent
// reachability. A nil map value means the agent answered; unreachable agents
// are marked stale through the usual transport error path.
func (d *Dispatcher) PingAll(ctx context.Context) map[string]error {
	agents := d.disc.Discover(ctx, false)

	results := make(map[string]error, len(agents))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sweepConcurrency)
	for _, agent := range agents {
		g.Go(func() error {
			err := d.Ping(gctx, agent.AgentID)
			mu.Lock()
			results[agent.AgentID] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}
