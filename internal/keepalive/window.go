package keepalive

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/ibeloyar/printbee/internal/model"
)

const clockLayout = "15:04"

// Window is a daily span of whole hours [From, To) in Location. A window
// whose end is before its start runs over midnight; From == To is always
// open.
type Window struct {
	From     int
	To       int
	Location *time.Location
}

func (w Window) loc() *time.Location {
	if w.Location == nil {
		return time.UTC
	}
	return w.Location
}

func (w Window) Always() bool {
	return w.From == w.To
}

func (w Window) Contains(t time.Time) bool {
	if w.Always() {
		return true
	}

	h := t.In(w.loc()).Hour()
	if w.From < w.To {
		return h >= w.From && h < w.To
	}
	return h >= w.From || h < w.To
}

// NextOpen returns t itself when the window is open, otherwise the next
// moment it opens.
func (w Window) NextOpen(t time.Time) time.Time {
	if w.Contains(t) {
		return t
	}
	return w.nextAt(t, w.From)
}

// NextClose returns the next moment the window closes. It is meaningless for
// an always-open window and returns the zero time.
func (w Window) NextClose(t time.Time) time.Time {
	if w.Always() {
		return time.Time{}
	}
	return w.nextAt(t, w.To)
}

func (w Window) nextAt(t time.Time, hour int) time.Time {
	local := t.In(w.loc())
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, w.loc())
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, 0, 0, 0, w.loc())
	}
	return next
}

// Status is the body of GET /render-status.
func (w Window) Status(now time.Time) model.RenderStatus {
	status := model.RenderStatus{
		Success:   true,
		Active:    w.Contains(now),
		CheckedAt: now.In(w.loc()).Format(time.RFC3339),
	}

	switch {
	case w.Always():
		status.Message = "PrintBee server is awake"
	case status.Active:
		status.Message = fmt.Sprintf("PrintBee server is awake until %s", w.NextClose(now).Format(clockLayout))
	default:
		status.Message = fmt.Sprintf("PrintBee server is resting, back at %s", w.NextOpen(now).Format(clockLayout))
	}

	return status
}
