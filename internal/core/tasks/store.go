// Package tasks keeps the ordered to-do list shown next to the timer.
package tasks

import (
	"strings"
	"sync"
	"time"

	"pomotask/internal/core/model"

	"github.com/google/uuid"
)

// Stats summarizes the list for reporting.
type Stats struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate float64
}

// Store is an insertion-ordered task collection safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	tasks []model.Task
	newID func() string
	now   func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		newID: func() string { return uuid.New().String() },
		now:   time.Now,
	}
}

// Add appends a task and returns it. Blank text is ignored and reported
// with ok=false. Unknown categories and priorities fall back to other and
// medium.
func (store *Store) Add(text string, category model.Category, priority model.Priority) (model.Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Task{}, false
	}
	if !category.Valid() {
		category = model.CategoryOther
	}
	if !priority.Valid() {
		priority = model.PriorityMedium
	}

	task := model.Task{
		ID:        store.newID(),
		Text:      text,
		Category:  category,
		Priority:  priority,
		CreatedAt: store.now(),
	}

	store.mu.Lock()
	store.tasks = append(store.tasks, task)
	store.mu.Unlock()
	return task, true
}

// Toggle flips the completion flag of the task with id.
func (store *Store) Toggle(id string) bool {
	store.mu.Lock()
	defer store.mu.Unlock()

	index := store.indexLocked(id)
	if index < 0 {
		return false
	}
	store.tasks[index].Completed = !store.tasks[index].Completed
	return true
}

// Remove deletes the task with id.
func (store *Store) Remove(id string) bool {
	store.mu.Lock()
	defer store.mu.Unlock()

	index := store.indexLocked(id)
	if index < 0 {
		return false
	}
	store.tasks = append(store.tasks[:index:index], store.tasks[index+1:]...)
	return true
}

// Get returns the task with id.
func (store *Store) Get(id string) (model.Task, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	index := store.indexLocked(id)
	if index < 0 {
		return model.Task{}, false
	}
	return store.tasks[index], true
}

// Tasks returns a copy of the list in insertion order.
func (store *Store) Tasks() []model.Task {
	store.mu.Lock()
	defer store.mu.Unlock()
	return append([]model.Task(nil), store.tasks...)
}

// Len returns the number of tasks.
func (store *Store) Len() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.tasks)
}

// CompletedCount returns the number of completed tasks.
func (store *Store) CompletedCount() int {
	return store.Stats().Completed
}

// PendingCount returns the number of open tasks.
func (store *Store) PendingCount() int {
	return store.Stats().Pending
}

// Stats computes the list summary.
func (store *Store) Stats() Stats {
	store.mu.Lock()
	defer store.mu.Unlock()
	return Summarize(store.tasks)
}

// Summarize computes Stats for any task slice.
func Summarize(list []model.Task) Stats {
	stats := Stats{Total: len(list)}
	for _, task := range list {
		if task.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Total)
	}
	return stats
}

func (store *Store) indexLocked(id string) int {
	for index, task := range store.tasks {
		if task.ID == id {
			return index
		}
	}
	return -1
}
