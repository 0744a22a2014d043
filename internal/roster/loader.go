package roster

import (
	"context"
	"go.uber.org/zap"
	"sync"
	"sync/atomic"
	"vision-coach/internal/repository/model"
)

// Fetcher reads the club hierarchy. repository.Repository satisfies it.
type Fetcher interface {
	GetTeams(ctx context.Context, clubId string) ([]*model.Team, error)
	GetPlayers(ctx context.Context, clubId string, teamId string) ([]*model.Player, error)
}

// Loader drives a Machine from a single goroutine. Fetches run concurrently
// but their results are applied on the loop, so the staleness check and the
// commit cannot interleave with a selection change.
type Loader struct {
	logger  *zap.SugaredLogger
	fetcher Fetcher

	ctx    context.Context
	cancel context.CancelFunc
	ops    chan func()
	done   chan struct{}
	once   sync.Once

	// mu guards closed and every send on ops.
	mu     sync.Mutex
	closed bool

	current atomic.Pointer[Snapshot]

	// Owned by the loop goroutine.
	machine     *Machine
	subscribers map[chan Snapshot]struct{}
	waiters     []chan Snapshot
}

func NewLoader(ctx context.Context, logger *zap.SugaredLogger, fetcher Fetcher) *Loader {
	ctx, cancel := context.WithCancel(ctx)

	l := &Loader{
		logger:      logger,
		fetcher:     fetcher,
		ctx:         ctx,
		cancel:      cancel,
		ops:         make(chan func(), 64),
		done:        make(chan struct{}),
		machine:     NewMachine(),
		subscribers: make(map[chan Snapshot]struct{}),
	}

	snap := l.machine.Snapshot()
	l.current.Store(&snap)

	go l.run()

	return l
}

func (l *Loader) SetTenant(clubId string) {
	l.submit(func() {
		l.dispatch(l.machine.SetTenant(clubId))
	})
}

// Open switches to clubId with teamId as the preferred team in a single
// step, so the first team is never fetched when teamId belongs to the club.
func (l *Loader) Open(clubId string, teamId string) {
	l.submit(func() {
		reqs := l.machine.SetTenant(clubId)
		reqs = append(reqs, l.machine.SelectTeam(teamId)...)
		l.dispatch(reqs)
	})
}

func (l *Loader) SelectTeam(teamId string) {
	l.submit(func() {
		l.dispatch(l.machine.SelectTeam(teamId))
	})
}

func (l *Loader) Refresh() {
	l.submit(func() {
		l.dispatch(l.machine.Refresh())
	})
}

// Snapshot returns the latest published state.
func (l *Loader) Snapshot() Snapshot {
	return *l.current.Load()
}

// Subscribe streams snapshots, starting with the current one. Slow readers
// only see the latest snapshot. The channel is closed by cancel or Close.
func (l *Loader) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	if !l.submit(func() {
		l.subscribers[ch] = struct{}{}
		offer(ch, l.machine.Snapshot())
	}) {
		close(ch)
		return ch, func() {}
	}

	cancel := func() {
		l.submit(func() {
			if _, ok := l.subscribers[ch]; ok {
				delete(l.subscribers, ch)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// AwaitSettled blocks until no fetch is outstanding. Operations submitted
// before the call are taken into account.
func (l *Loader) AwaitSettled(ctx context.Context) (Snapshot, error) {
	reply := make(chan Snapshot, 1)

	if !l.submit(func() {
		snap := l.machine.Snapshot()
		if snap.Settled() {
			reply <- snap
			return
		}
		l.waiters = append(l.waiters, reply)
	}) {
		return Snapshot{}, context.Canceled
	}

	select {
	case snap := <-reply:
		return snap, nil
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	case <-l.done:
		return Snapshot{}, context.Canceled
	}
}

// Close stops the loop. Results of fetches still in flight are dropped.
func (l *Loader) Close() {
	l.once.Do(func() {
		l.cancel()
		<-l.done
	})
}

func (l *Loader) run() {
	defer close(l.done)

	for {
		select {
		case op := <-l.ops:
			op()
		case <-l.ctx.Done():
			l.shutdown()
			return
		}
	}
}

// shutdown refuses further ops, runs the ones already queued, then closes
// every subscriber channel.
func (l *Loader) shutdown() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()

	for {
		select {
		case op := <-l.ops:
			op()
		default:
			for ch := range l.subscribers {
				close(ch)
			}
			l.subscribers = nil
			return
		}
	}
}

// submit queues op on the loop. It returns false once the loader is closed,
// in which case op never runs.
func (l *Loader) submit(op func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return false
	}

	select {
	case l.ops <- op:
		return true
	case <-l.ctx.Done():
		return false
	}
}

// dispatch runs on the loop after every machine transition.
func (l *Loader) dispatch(reqs []Request) {
	for _, req := range reqs {
		go l.fetch(req)
	}
	l.publish()
}

func (l *Loader) fetch(req Request) {
	switch req.Stage {
	case StageTeams:
		teams, err := l.fetcher.GetTeams(l.ctx, req.ClubId)
		l.submit(func() {
			if err != nil {
				l.logger.Errorw("failed to load teams", "clubId", req.ClubId, "error", err)
			}
			reqs, ok := l.machine.TeamsFetched(req, teams, err)
			if !ok {
				l.logger.Debugw("discarding stale teams result", "clubId", req.ClubId)
				return
			}
			l.dispatch(reqs)
		})
	case StagePlayers:
		players, err := l.fetcher.GetPlayers(l.ctx, req.ClubId, req.TeamId)
		l.submit(func() {
			if err != nil {
				l.logger.Errorw("failed to load players", "clubId", req.ClubId, "teamId", req.TeamId, "error", err)
			}
			if !l.machine.PlayersFetched(req, players, err) {
				l.logger.Debugw("discarding stale players result", "clubId", req.ClubId, "teamId", req.TeamId)
				return
			}
			l.publish()
		})
	}
}

func (l *Loader) publish() {
	snap := l.machine.Snapshot()
	l.current.Store(&snap)

	for ch := range l.subscribers {
		offer(ch, snap)
	}

	if snap.Settled() && len(l.waiters) > 0 {
		for _, w := range l.waiters {
			w <- snap
		}
		l.waiters = nil
	}
}

// offer replaces any unread snapshot in ch with snap.
func offer(ch chan Snapshot, snap Snapshot) {
	select {
	case <-ch:
	default:
	}
	ch <- snap
}
