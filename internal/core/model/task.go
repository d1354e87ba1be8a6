package model

import (
	"fmt"
	"strings"
	"time"
)

// Category groups tasks on the list.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
	CategoryOther    Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryStudy, CategoryOther}

// Priority ranks tasks on the list.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Task is a single to-do entry. Only Completed changes after creation.
type Task struct {
	ID        string
	Text      string
	Completed bool
	Category  Category
	Priority  Priority
	CreatedAt time.Time
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(value string) (Category, error) {
	normalized := Category(strings.ToLower(strings.TrimSpace(value)))
	for _, category := range Categories {
		if category == normalized {
			return category, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", value)
}

// ParsePriority matches a priority name case-insensitively.
func ParsePriority(value string) (Priority, error) {
	normalized := Priority(strings.ToLower(strings.TrimSpace(value)))
	for _, priority := range Priorities {
		if priority == normalized {
			return priority, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q", value)
}

// Valid reports whether category is one of Categories.
func (category Category) Valid() bool {
	for _, candidate := range Categories {
		if candidate == category {
			return true
		}
	}
	return false
}

// Valid reports whether priority is one of Priorities.
func (priority Priority) Valid() bool {
	for _, candidate := range Priorities {
		if candidate == priority {
			return true
		}
	}
	return false
}

// Next cycles to the following category, wrapping around.
func (category Category) Next() Category {
	for index, candidate := range Categories {
		if candidate == category {
			return Categories[(index+1)%len(Categories)]
		}
	}
	return Categories[0]
}

// Next cycles to the following priority, wrapping around.
func (priority Priority) Next() Priority {
	for index, candidate := range Priorities {
		if candidate == priority {
			return Priorities[(index+1)%len(Priorities)]
		}
	}
	return Priorities[0]
}
