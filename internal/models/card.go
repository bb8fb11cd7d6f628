package models

import (
	"slices"
	"time"

	"github.com/thenoetrevino/kanban/internal/types"
)

// Card is a single work item on the board.
// Card content lives only in Board.Cards; columns reference cards by id.
type Card struct {
	ID          types.CardID   `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Priority    types.Priority `json:"priority,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// CardUpdate holds the fields to merge into an existing card.
// Nil fields are left untouched.
type CardUpdate struct {
	Title       *string
	Description *string
	Priority    *types.Priority
	Tags        *[]string
}

// Empty reports whether the update carries no fields
func (u CardUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Priority == nil && u.Tags == nil
}

// Apply merges u into c and returns the result. UpdatedAt is not touched here.
func (u CardUpdate) Apply(c Card) Card {
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.Priority != nil {
		c.Priority = *u.Priority
	}
	if u.Tags != nil {
		c.Tags = normalizeTags(*u.Tags)
	}
	return c
}

// Clone returns a copy that does not share the Tags backing array
func (c Card) Clone() Card {
	c.Tags = slices.Clone(c.Tags)
	return c
}

// HasTag reports whether the card carries tag
func (c Card) HasTag(tag string) bool {
	return slices.Contains(c.Tags, tag)
}

// normalizeTags drops empty and repeated tags; tags behave as a set
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
