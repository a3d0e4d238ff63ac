package model

import "fmt"

// Item is the domain model for a list entry.
// ID is fixed at creation; Title is the only editable field.
type Item struct {
	ID    int    `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

func (it Item) String() string { return fmt.Sprintf("(%d,%q)", it.ID, it.Title) }
