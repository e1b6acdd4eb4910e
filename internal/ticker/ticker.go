// Package ticker generates the one-decrement-per-second ticks that drive the
// session countdown in the interactive runners. The engine itself never
// generates ticks; collaborators own that.
package ticker

import (
	"time"

	"github.com/robfig/cron/v3"
)

// Ticker fires fn once per second until stopped.
type Ticker struct {
	cron *cron.Cron
	fn   func()
}

func New(fn func()) *Ticker {
	return &Ticker{
		cron: cron.New(cron.WithLocation(time.UTC)),
		fn:   fn,
	}
}

func (t *Ticker) Start() error {
	if _, err := t.cron.AddFunc("@every 1s", t.fn); err != nil {
		return err
	}
	t.cron.Start()
	return nil
}

// Stop halts tick generation and waits for a running tick to finish.
func (t *Ticker) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
}
