package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	log "github.com/sirupsen/logrus"
)

// ErrMalformed is returned by Load when the file is not JSON or does not have the shape of a saved list.
var ErrMalformed = errors.New("malformed task list")

// savedList is what Save writes.
type savedList struct {
	Tasks []Task `json:"tasks"`
}

// loadedList mirrors savedList with pointers so that Load can tell a missing key from a zero value.
type loadedList struct {
	Tasks *[]*loadedTask `json:"tasks"`
}

type loadedTask struct {
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// Load reads the list saved at pathname by Save. Every task in the file must have both a description and a
// completed flag; keys other than those are ignored.
func Load(pathname string) (*List, error) {
	b, err := os.ReadFile(pathname)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", pathname, err)
	}
	var loaded loadedList
	if err := json.Unmarshal(b, &loaded); err != nil {
		return nil, fmt.Errorf("load %s: %v: %w", pathname, err, ErrMalformed)
	}
	if loaded.Tasks == nil {
		return nil, fmt.Errorf("load %s: missing tasks: %w", pathname, ErrMalformed)
	}
	l := NewList()
	for i, t := range *loaded.Tasks {
		if t == nil || t.Description == nil || t.Completed == nil {
			return nil, fmt.Errorf("load %s: incomplete task at index %d: %w", pathname, i, ErrMalformed)
		}
		l.tasks = append(l.tasks, Task{Description: *t.Description, Completed: *t.Completed})
	}
	return l, nil
}

// LoadOrEmpty is like Load, except that it never fails: if the list can't be loaded, for whatever reason, the
// cause is logged and an empty list is returned.
func LoadOrEmpty(pathname string) *List {
	l, err := Load(pathname)
	if err == nil {
		return l
	}
	logEntry := log.WithFields(log.Fields{
		"path":  pathname,
		"cause": err,
	})
	if errors.Is(err, fs.ErrNotExist) {
		logEntry.Debug("No saved tasks, starting with an empty list")
	} else {
		logEntry.Warning("Could not load saved tasks, starting with an empty list")
	}
	return NewList()
}

// Save writes the whole list to pathname, replacing the file if it exists. The counterpart is Load. The file is
// written in place, so a crash halfway through the write can leave it truncated.
func (l *List) Save(pathname string) error {
	b, err := json.Marshal(savedList{Tasks: l.Tasks()})
	if err != nil {
		return fmt.Errorf("save %s: %w", pathname, err)
	}
	if err := os.WriteFile(pathname, b, 0644); err != nil {
		return fmt.Errorf("save %s: %w", pathname, err)
	}
	return nil
}
