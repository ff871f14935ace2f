package report

import (
	"context"
	"fmt"

	"github.com/iimuz/toggl-tools-go/internal/core/model"
	"github.com/iimuz/toggl-tools-go/internal/util"
)

// catalog resolves project and tag ids to display names. Lookups never
// fail: unknown ids fall back to an id-based placeholder so a report still
// renders when the catalog endpoints are unavailable.
type catalog struct {
	projects map[int64]string
	tags     map[int64]string
}

// newCatalog fetches both catalogs, degrading to empty maps on error.
func newCatalog(ctx context.Context, fetcher Fetcher) catalog {
	cat := catalog{
		projects: make(map[int64]string),
		tags:     make(map[int64]string),
	}

	projects, err := fetcher.Projects(ctx)
	if err != nil {
		util.LogWarnf("Failed to fetch projects, falling back to ids: %v", err)
	}
	for _, p := range projects {
		cat.projects[p.ID] = p.Name
	}

	tags, err := fetcher.Tags(ctx)
	if err != nil {
		util.LogWarnf("Failed to fetch tags, falling back to ids: %v", err)
	}
	for _, t := range tags {
		cat.tags[t.ID] = t.Name
	}

	return cat
}

// project resolves an optional project reference.
func (c catalog) project(id *int64) string {
	if id == nil {
		return "(no project)"
	}
	return c.projectByID(*id)
}

// projectByID resolves a project id, with model.NoID meaning "no project".
func (c catalog) projectByID(id int64) string {
	if id == model.NoID {
		return "(no project)"
	}
	if name, ok := c.projects[id]; ok {
		return name
	}
	return fmt.Sprintf("project-%d", id)
}

// tag resolves a tag id, with model.NoID meaning "no tag".
func (c catalog) tag(id int64) string {
	if id == model.NoID {
		return "(no tag)"
	}
	if name, ok := c.tags[id]; ok {
		return name
	}
	return fmt.Sprintf("tag-%d", id)
}

func (c catalog) tagNames(ids []int64) []string {
	if len(ids) == 0 {
		return nil
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, c.tag(id))
	}
	return names
}
