package loop

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/routineman"
	"github.com/sgostarter/libthermctl/history"
	"github.com/sgostarter/libthermctl/tracker"
	"github.com/sgostarter/libthermctl/usage"
	"github.com/sgostarter/libthermctl/watchdog"
)

// ErrStalled is returned by a Step that outlived the stall timeout; its output is dropped so the
// fail-safe forced meanwhile stays in effect.
var ErrStalled = errors.New("loop: step outlived the stall timeout")

// Loop drives one tracker session at a fixed interval.
type Loop struct {
	logger   l.Wrapper
	cfg      Config
	session  *tracker.Session
	sensor   Sensor
	actuator Actuator
	now      func() time.Time

	routineMan routineman.RoutineMan
	dog        watchdog.WatchDog
	usage      usage.TimeUsage[tracker.Status]

	name         string
	checkpointer Checkpointer

	// actLock serializes actuator commands; stallGen counts forced fail-safes.
	actLock  sync.Mutex
	stallGen uint64

	lock         sync.Mutex
	started      bool
	startAt      time.Time
	lastAt       time.Time
	sensorFaults int
}

func NewLoop(session *tracker.Session, sensor Sensor, actuator Actuator, cfg Config, logger l.Wrapper) *Loop {
	return NewLoopEx(session, sensor, actuator, cfg, nil, logger)
}

// NewLoopEx uses now as the clock for elapsed time and dt; nil means time.Now.
func NewLoopEx(session *tracker.Session, sensor Sensor, actuator Actuator, cfg Config, now func() time.Time,
	logger l.Wrapper) *Loop {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "loop"))

	if session == nil || sensor == nil || actuator == nil {
		logger.Fatal("no dependency objects")
	}

	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}

	if now == nil {
		now = time.Now
	}

	lp := &Loop{
		logger:     logger,
		cfg:        cfg,
		session:    session,
		sensor:     sensor,
		actuator:   actuator,
		now:        now,
		routineMan: routineman.NewRoutineMan(context.Background(), logger),
		usage:      usage.NewTimeUsageEx[tracker.Status](now),
	}

	if cfg.StallTimeout > 0 {
		lp.dog = watchdog.NewWatchDog(watchdog.Config{
			CheckInterval:    cfg.StallTimeout / 4,
			CheckMaxDuration: cfg.StallTimeout,
		}, watchdog.FNNotify(lp.onStall), logger)
	} else {
		lp.dog = watchdog.NewFakeWatchDog()
	}

	return lp
}

// WithCheckpoint saves the snapshot under name after every applied Step. Call before Start.
func (lp *Loop) WithCheckpoint(name string, checkpointer Checkpointer) *Loop {
	lp.name = name
	lp.checkpointer = checkpointer

	return lp
}

// Start runs Step every Interval until TriggerStop.
func (lp *Loop) Start() {
	lp.dog.Start()
	lp.routineMan.StartRoutine(lp.mainRoutine, "mainRoutine")
}

func (lp *Loop) TriggerStop() {
	lp.routineMan.TriggerStop()
}

func (lp *Loop) Wait() {
	lp.routineMan.Wait()
	lp.dog.Stop()
	lp.dog.Close()
}

func (lp *Loop) mainRoutine(ctx context.Context, _ func() bool) {
	ticker := time.NewTicker(lp.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := lp.Step(ctx); err != nil {
				lp.logger.WithFields(l.ErrorField(err)).Debug("step failed")
			}
		}
	}
}

// Step runs one control tick: read, track, apply. Elapsed time counts from the first Step after
// construction or Restart.
func (lp *Loop) Step(ctx context.Context) error {
	lp.lock.Lock()
	defer lp.lock.Unlock()

	lp.actLock.Lock()
	gen := lp.stallGen
	lp.actLock.Unlock()

	now := lp.now()
	if !lp.started {
		lp.started = true
		lp.startAt = now
		lp.lastAt = now
	}

	elapsed := now.Sub(lp.startAt).Seconds()
	dt := float32(now.Sub(lp.lastAt).Seconds())
	lp.lastAt = now

	measured, err := lp.sensor.ReadTemperature(ctx)
	if err != nil {
		lp.sensorFaults++
		lp.usage.Update(tracker.StatusFallback)

		lp.logger.WithFields(l.ErrorField(err)).Error("read temperature failed")

		lp.actLock.Lock()
		if fsErr := lp.actuator.FailSafe(ctx); fsErr != nil {
			lp.logger.WithFields(l.ErrorField(fsErr)).Error("fail-safe failed")
		}
		lp.actLock.Unlock()

		return fmt.Errorf("read temperature: %w", err)
	}

	output, tickErr := lp.session.Tick(elapsed, dt, measured)
	lp.usage.Update(lp.session.Snapshot().Status)

	lp.actLock.Lock()
	if lp.stallGen != gen {
		lp.actLock.Unlock()

		lp.usage.Update(tracker.StatusFallback)
		lp.logger.Error("step overtaken by stall, output dropped")

		return ErrStalled
	}

	err = lp.actuator.Apply(ctx, output)
	lp.actLock.Unlock()

	if err != nil {
		lp.logger.WithFields(l.ErrorField(err)).Error("apply output failed")

		return fmt.Errorf("apply output: %w", err)
	}

	lp.dog.Touch()

	if lp.checkpointer != nil {
		if err = lp.checkpointer.Save(lp.name, lp.session.Snapshot()); err != nil {
			lp.logger.WithFields(l.ErrorField(err)).Error("checkpoint failed")
		}
	}

	return tickErr
}

func (lp *Loop) onStall(lastTouchAt time.Time) {
	lp.logger.WithFields(l.StringField("lastTouchAt", lastTouchAt.Format(time.RFC3339Nano))).
		Error("control loop stalled, forcing fail-safe")

	lp.actLock.Lock()
	defer lp.actLock.Unlock()

	lp.stallGen++

	if err := lp.actuator.FailSafe(context.Background()); err != nil {
		lp.logger.WithFields(l.ErrorField(err)).Error("fail-safe failed")
	}
}

// Restart begins a new run of the profile on the next Step.
func (lp *Loop) Restart() {
	lp.lock.Lock()
	defer lp.lock.Unlock()

	lp.started = false
	lp.sensorFaults = 0
	lp.session.Restart()
	lp.usage.Update(tracker.StatusIdle)
}

func (lp *Loop) Snapshot() tracker.Snapshot {
	lp.lock.Lock()
	defer lp.lock.Unlock()

	return lp.session.Snapshot()
}

// StatusDurations reports how long the loop spent in each tracker status between tsB and tsE.
func (lp *Loop) StatusDurations(tsB, tsE time.Time) map[tracker.Status]time.Duration {
	return lp.usage.Statistics(tsB, tsE)
}

// RunRecord summarizes the current run since its first Step, for history.RunHistory.
func (lp *Loop) RunRecord() history.RunRecord {
	lp.lock.Lock()
	defer lp.lock.Unlock()

	if !lp.started {
		return history.RunRecord{}
	}

	ds := lp.usage.Statistics(lp.startAt, lp.now())

	return history.RunRecord{
		Faults:   lp.session.Snapshot().Faults + lp.sensorFaults,
		Tracking: ds[tracker.StatusTracking],
		Fallback: ds[tracker.StatusFallback],
	}
}
