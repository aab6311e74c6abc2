package hours

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// ProjectKey identifies a project by the SHA-256 of its exact title.
type ProjectKey string

func KeyOf(title string) ProjectKey {
	sum := sha256.Sum256([]byte(title))
	return ProjectKey(hex.EncodeToString(sum[:]))
}

// Project is the derived per-title view over the interval set.
type Project struct {
	Title     string
	Client    string
	Key       ProjectKey
	Intervals []Interval
}

func (p Project) Entries() []Interval {
	return p.Intervals
}

// DisplayTitle prefixes the client when there is one.
func (p Project) DisplayTitle() string {
	if p.Client == "" {
		return p.Title
	}
	return p.Client + " / " + p.Title
}

// GroupByProject partitions intervals by exact title, sorted by title. The
// client of the first interval seen for a title is kept for the project.
func GroupByProject(intervals []Interval) []Project {
	index := make(map[string]int)
	var projects []Project
	for _, i := range intervals {
		n, ok := index[i.Project]
		if !ok {
			n = len(projects)
			index[i.Project] = n
			projects = append(projects, Project{
				Title:  i.Project,
				Client: i.Client,
				Key:    KeyOf(i.Project),
			})
		}
		projects[n].Intervals = append(projects[n].Intervals, i)
	}
	sort.SliceStable(projects, func(a, b int) bool {
		return projects[a].Title < projects[b].Title
	})
	return projects
}
