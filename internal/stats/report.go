package stats

import (
	"context"
	"io"

	"github.com/verte-zerg/fingerdrill/internal/model"
)

// SessionLister is the store query the report needs.
type SessionLister interface {
	ListSessions(ctx context.Context, cfg model.StatsConfig) ([]model.SessionRecord, error)
}

// Report contains precomputed data for stats rendering.
type Report struct {
	Sessions []model.SessionRecord
	Window   int
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st SessionLister, cfg model.StatsConfig) (Report, error) {
	sessions, err := st.ListSessions(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	return Report{Sessions: sessions, Window: cfg.CurveWindow}, nil
}

// Render writes the summary, curve and history table.
func (r Report) Render(w io.Writer) error {
	if err := RenderSummary(w, r.Sessions); err != nil {
		return err
	}
	if err := RenderCurve(w, r.Sessions, r.Window); err != nil {
		return err
	}
	return RenderHistory(w, r.Sessions)
}
