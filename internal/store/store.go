// Package store defines the item store contract shared by the TUI and the
// CLI runner, and the sentinel errors callers match with errors.Is.
package store

import "github.com/Makepad-fr/itemlist/internal/model"

// Items is the call surface the presentation layer drives.
type Items interface {
	Insert(it model.Item) error
	Create(title string) (model.Item, error)
	UpdateTitle(id int, title string) error
	FindByID(id int) (model.Item, error)
	Specific() model.Item
	Filter(sub string) []model.Item
	Delete(it model.Item) error
	All() []model.Item
	Len() int
}
