package profiler

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestProfiler(buf *bytes.Buffer, interval time.Duration) (*Profiler, *fakeClock) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(
		WithInterval(interval),
		WithLogger(slog.New(slog.NewTextHandler(buf, nil))),
	)
	p.now = clock.now
	p.lastTime = clock.now()
	return p, clock
}

func TestProfilerLogsOncePerInterval(t *testing.T) {
	var buf bytes.Buffer
	p, clock := newTestProfiler(&buf, time.Second)

	for range 49 {
		clock.advance(time.Second / 50)
		assert.False(t, p.Tick(2))
	}
	assert.Empty(t, buf.String())

	clock.advance(time.Second / 50)
	assert.True(t, p.Tick(2))

	out := buf.String()
	assert.Contains(t, out, "msg=profiler")
	assert.Contains(t, out, "tps=50")
	assert.Contains(t, out, "animating_avg=2")
	assert.Contains(t, out, "heap_mb=")

	buf.Reset()
	clock.advance(time.Second / 2)
	assert.False(t, p.Tick(0))
	assert.Empty(t, buf.String())
}

func TestProfilerAveragesAnimating(t *testing.T) {
	var buf bytes.Buffer
	p, clock := newTestProfiler(&buf, time.Second)

	clock.advance(time.Second / 2)
	p.Tick(4)
	clock.advance(time.Second / 2)
	assert.True(t, p.Tick(0))
	assert.Contains(t, buf.String(), "animating_avg=2")
	assert.Contains(t, buf.String(), "tps=2")
}

func TestProfilerOptionDefaults(t *testing.T) {
	p := NewProfiler(WithInterval(0), WithLogger(nil))
	assert.Equal(t, time.Second, p.updateInterval)
	assert.Same(t, slog.Default(), p.logger)
}
