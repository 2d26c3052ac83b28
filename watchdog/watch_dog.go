package watchdog

import (
	"context"
	"sync"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/routineman"
)

type WatchDog interface {
	Touch()

	Start()
	Stop()
	Started() bool

	Close()
}

type INotify interface {
	NotifyTimeout(lastTouchAt time.Time)
}

type FNNotify func(lastTouchAt time.Time)

func (fn FNNotify) NotifyTimeout(lastTouchAt time.Time) {
	fn(lastTouchAt)
}

type Config struct {
	CheckInterval time.Duration

	CheckMaxDuration time.Duration
	CheckFailCount   int
}

// NewWatchDog calls notify when Touch has not been called for CheckMaxDuration on CheckFailCount
// consecutive checks while started.
func NewWatchDog(cfg Config, notify INotify, logger l.Wrapper) WatchDog {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "watchDogImpl"))

	if notify == nil {
		logger.Error("no notify")

		return nil
	}

	impl := &watchDogImpl{
		logger:      logger,
		cfg:         cfg,
		notify:      notify,
		lastTouchAt: time.Now(),
		routineMan:  routineman.NewRoutineMan(context.Background(), logger),
	}

	impl.init()

	return impl
}

type watchDogImpl struct {
	logger l.Wrapper
	cfg    Config
	notify INotify

	routineMan routineman.RoutineMan

	lock        sync.Mutex
	started     bool
	failCount   int
	lastTouchAt time.Time
}

func (impl *watchDogImpl) Touch() {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	impl.lastTouchAt = time.Now()
}

func (impl *watchDogImpl) Start() {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	impl.started = true
	impl.lastTouchAt = time.Now()
	impl.failCount = 0
}

func (impl *watchDogImpl) Stop() {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	impl.started = false
}

func (impl *watchDogImpl) Started() bool {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	return impl.started
}

func (impl *watchDogImpl) Close() {
	impl.routineMan.TriggerStop()
	impl.routineMan.Wait()
}

func (impl *watchDogImpl) init() {
	if impl.cfg.CheckInterval <= 0 {
		impl.cfg.CheckInterval = time.Second * 20
	}

	if impl.cfg.CheckMaxDuration <= 0 {
		impl.cfg.CheckMaxDuration = time.Minute
	}

	if impl.cfg.CheckFailCount <= 0 {
		impl.cfg.CheckFailCount = 1
	}

	impl.routineMan.StartRoutine(impl.mainRoutine, "mainRoutine")
}

// check reports whether notify is due and, if so, rearms the counter.
func (impl *watchDogImpl) check() (lastTouchAt time.Time, timeout bool) {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	if !impl.started {
		return
	}

	if time.Since(impl.lastTouchAt) < impl.cfg.CheckMaxDuration {
		impl.failCount = 0

		return
	}

	impl.failCount++

	if impl.failCount < impl.cfg.CheckFailCount {
		return
	}

	lastTouchAt = impl.lastTouchAt
	timeout = true

	impl.failCount = 0
	impl.lastTouchAt = time.Now()

	return
}

func (impl *watchDogImpl) mainRoutine(ctx context.Context, _ func() bool) {
	ticker := time.NewTicker(impl.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if lastTouchAt, timeout := impl.check(); timeout {
				impl.logger.WithFields(l.StringField("lastTouchAt", lastTouchAt.Format(time.RFC3339Nano))).
					Error("watchdog timeout")

				impl.notify.NotifyTimeout(lastTouchAt)
			}
		}
	}
}
