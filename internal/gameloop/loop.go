// Package gameloop drives the engine at a fixed tick rate and fans out its
// responses to the connection registry's per-client outboxes.
//
// Grounded on original_source/server/src/routine/game.rs's game_routine: a
// monotonic start instant, a tick-index-scaled target time per frame, and a
// warning log (never a panic) when the server falls behind.
package gameloop

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Tick is the engine operation the loop calls once per frame: it applies
// one frame and delivers the resulting (id, response) pairs itself.
type Tick func()

// Runner calls a Tick at a fixed rate. It only needs to know how to trigger
// one frame, not the response type itself (kept decoupled from zappygame so
// gameloop has no import on the engine package).
type Runner struct {
	TicksPerSecond int
	Log            *logrus.Logger
}

// Run advances frames at TicksPerSecond until ctx is cancelled, invoking
// tick() once per frame. Sleeps to the next tick boundary measured from a
// single start instant, so drift does not accumulate across frames; if a
// frame overruns its slot it logs a warning and proceeds immediately,
// exactly as routine/game.rs does.
func (r *Runner) Run(ctx context.Context, tick Tick) {
	t0 := time.Now()
	nsPerTick := time.Second.Nanoseconds() / int64(r.TicksPerSecond)
	var frame int64

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		frame++
		tick()

		target := t0.Add(time.Duration(nsPerTick * frame))
		now := time.Now()
		if now.Before(target) {
			timer := time.NewTimer(target.Sub(now))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		} else if r.Log != nil {
			r.Log.WithFields(logrus.Fields{
				"frame":   frame,
				"overrun": now.Sub(target),
			}).Warn("tick overran its time slot")
		}
	}
}
