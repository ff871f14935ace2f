package toggl

import (
	"time"

	"github.com/iimuz/toggl-tools-go/internal/core/model"
)

// timeEntry mirrors one element of the /me/time_entries response.
//
// A running entry arrives with stop set to null and a negative duration
// (seconds since the epoch, negated). The wire duration is never used: the
// core derives durations from start/stop so that running entries stay
// consistent within one report.
type timeEntry struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	ProjectID   *int64     `json:"project_id"`
	TagIDs      []int64    `json:"tag_ids"`
	Start       *time.Time `json:"start"`
	Stop        *time.Time `json:"stop"`
	Duration    int64      `json:"duration"`
	WorkspaceID int64      `json:"workspace_id"`
}

func (t timeEntry) toRaw() model.RawEntry {
	return model.RawEntry{
		ID:          t.ID,
		Description: t.Description,
		ProjectID:   t.ProjectID,
		TagIDs:      t.TagIDs,
		Start:       t.Start,
		Stop:        t.Stop,
	}
}

// project mirrors one element of the /me/projects response.
type project struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// tag mirrors one element of the /me/tags response.
type tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
