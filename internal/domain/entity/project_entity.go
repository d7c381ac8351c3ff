package entity

// Task status values. Anything else found in stored data is treated as
// "To Do" when aggregating, but is preserved verbatim in storage.
const (
	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Task priority values. An empty priority renders as "Normal".
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
	PriorityNormal = "Normal"
)

// Project owns its member list and its task list by embedding; there is no
// separate task collection. The whole projects collection is serialized as
// one ordered JSON array.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Members     []ProjectMember `json:"members,omitempty"`
	Tasks       []Task          `json:"tasks"`
	CreatedAt   string          `json:"createdAt,omitempty"`
	DueDate     string          `json:"dueDate,omitempty"`
}

// ProjectMember references a User by id and email at the time the project
// was created. Membership is not re-validated against the users collection
// afterwards.
type ProjectMember struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
}

// Task is owned exclusively by its parent Project; its lifecycle ends with
// the project. IDs are unique within the owning project only.
type Task struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	AssignedTo  string        `json:"assignedTo,omitempty"`
	CreatedBy   string        `json:"createdBy,omitempty"`
	Status      string        `json:"status"`
	Priority    string        `json:"priority,omitempty"`
	DueDate     string        `json:"dueDate,omitempty"`
	CreatedAt   string        `json:"createdAt,omitempty"`
	Comments    []TaskComment `json:"comments"`
}

// TaskComment is stored inline on its task.
type TaskComment struct {
	Author    string `json:"author"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ValidStatus reports whether s is one of the three recognized statuses.
func ValidStatus(s string) bool {
	return s == StatusToDo || s == StatusInProgress || s == StatusCompleted
}

// PriorityLabel resolves the display priority; storage keeps the raw value.
func (t Task) PriorityLabel() string {
	if t.Priority == "" {
		return PriorityNormal
	}
	return t.Priority
}

// HasMember reports whether email belongs to the project's member list.
func (p Project) HasMember(email string) bool {
	for _, m := range p.Members {
		if m.Email == email {
			return true
		}
	}
	return false
}

// FindTask returns the index of the task with the given id, or -1.
func (p Project) FindTask(taskID string) int {
	for i, t := range p.Tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}
