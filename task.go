package todo

// Task is a single to-do item. New tasks start out not completed and the only mutation is toggling completion.
type Task struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// List is an ordered sequence of tasks. Insertion order is both the display order and the addressing order.
// Descriptions need not be unique.
type List struct {
	tasks []Task
}

func NewList() *List {
	return &List{}
}

// Add appends a task that is not completed. Any description is accepted, including the empty string.
func (l *List) Add(description string) {
	l.tasks = append(l.tasks, Task{Description: description})
}

// Toggle flips the completion flag of the task at the 0-based index. If the index is out of range the list is
// left untouched and false is returned.
func (l *List) Toggle(index int) bool {
	if index < 0 || index >= len(l.tasks) {
		return false
	}
	l.tasks[index].Completed = !l.tasks[index].Completed
	return true
}

// Tasks returns a copy of the tasks, in order.
func (l *List) Tasks() []Task {
	tasks := make([]Task, len(l.tasks))
	copy(tasks, l.tasks)
	return tasks
}

func (l *List) Len() int {
	return len(l.tasks)
}
