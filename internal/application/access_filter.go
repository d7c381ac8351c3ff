package application

import (
	"strings"

	"github.com/talawarsneha/project-management-app/internal/domain/entity"
)

// TaskStats aggregates task counts by status. Any status other than
// Completed / In Progress counts as todo, so tasks with a missing or
// unknown status surface as work still to be done.
type TaskStats struct {
	TotalTasks int `json:"totalTasks"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	ToDo       int `json:"todo"`
}

// ProjectsForMember derives the member's dashboard view: projects where
// the user appears in the member list AND holds at least one assigned
// task, with the task list narrowed to their own tasks. The result is a
// copy; stored data is never mutated.
func ProjectsForMember(all []entity.Project, userEmail string) []entity.Project {
	out := []entity.Project{}
	for _, p := range all {
		if !p.HasMember(userEmail) {
			continue
		}
		mine := []entity.Task{}
		for _, t := range p.Tasks {
			if t.AssignedTo == userEmail {
				mine = append(mine, t)
			}
		}
		if len(mine) == 0 {
			continue
		}
		view := p
		view.Tasks = mine
		out = append(out, view)
	}
	return out
}

// ComputeStats runs a single pass over all tasks in the given projects.
func ComputeStats(projects []entity.Project) TaskStats {
	var stats TaskStats
	for _, p := range projects {
		for _, t := range p.Tasks {
			stats.TotalTasks++
			switch t.Status {
			case entity.StatusCompleted:
				stats.Completed++
			case entity.StatusInProgress:
				stats.InProgress++
			default:
				stats.ToDo++
			}
		}
	}
	return stats
}

// SearchAndFilter narrows each project's tasks to those matching the
// case-insensitive query (substring of title or description) AND the
// status filter. Projects left with no matching tasks are dropped.
// An empty query or an empty/"All" status filter matches everything.
func SearchAndFilter(projects []entity.Project, query, statusFilter string) []entity.Project {
	q := strings.ToLower(strings.TrimSpace(query))
	filterByStatus := statusFilter != "" && statusFilter != "All"

	out := []entity.Project{}
	for _, p := range projects {
		matched := []entity.Task{}
		for _, t := range p.Tasks {
			if q != "" &&
				!strings.Contains(strings.ToLower(t.Title), q) &&
				!strings.Contains(strings.ToLower(t.Description), q) {
				continue
			}
			if filterByStatus && t.Status != statusFilter {
				continue
			}
			matched = append(matched, t)
		}
		if len(matched) == 0 {
			continue
		}
		view := p
		view.Tasks = matched
		out = append(out, view)
	}
	return out
}
