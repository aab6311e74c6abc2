package refresh

import (
	"context"
	"fmt"

	"github.com/sadopc/hours/internal/hours"
	"github.com/sadopc/hours/internal/log"
	"github.com/sadopc/hours/internal/store"
	"github.com/sadopc/hours/internal/toggl"
)

// ProviderToggl names Toggl Track integrations in the store.
const ProviderToggl = "toggl"

// Providers dispatches to a fetch implementation by integration provider.
type Providers struct {
	TogglAPIURL     string
	TogglReportsURL string
	Logger          *log.Logger
}

func (p Providers) Fetch(ctx context.Context, in store.Integration, w hours.Window) ([]hours.Interval, error) {
	switch in.Provider {
	case ProviderToggl:
		c := toggl.New(in.APIKey, toggl.WithURLs(p.TogglAPIURL, p.TogglReportsURL), toggl.WithLogger(p.logger()))
		ids := make([]int64, 0, len(in.Workspaces))
		for _, ws := range in.Workspaces {
			ids = append(ids, ws.ID)
		}
		return c.FetchWindow(ctx, in.UserID, ids, w)
	}
	return nil, fmt.Errorf("unknown provider %q", in.Provider)
}

func (p Providers) logger() *log.Logger {
	if p.Logger == nil {
		return log.Discard()
	}
	return p.Logger.WithComponent("toggl")
}
