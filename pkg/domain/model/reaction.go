package model

import (
	"slices"
	"time"

	"github.com/cybergrind/slack-assistant/pkg/domain/types"
)

// Reaction is one stored (message, emoji, reactor) row. Rows for a
// message are always a complete snapshot of its current reaction set.
type Reaction struct {
	ID        int64
	MessageID int64
	Name      string // emoji name without colons
	UserID    types.UserID
	CreatedAt time.Time
}

// ReactionGroup is one (emoji, reactors) tuple as returned by the API
type ReactionGroup struct {
	Name  string
	Count int
	Users []types.UserID
}

// ReactionSnapshot is a full capture of a message's reaction set
type ReactionSnapshot []ReactionGroup

// canonical returns a copy sorted by emoji name with each reactor set
// sorted. The API does not guarantee stable ordering, so snapshots must
// be canonicalized before comparison.
func (s ReactionSnapshot) canonical() ReactionSnapshot {
	out := make(ReactionSnapshot, len(s))
	for i, g := range s {
		users := slices.Clone(g.Users)
		slices.Sort(users)
		out[i] = ReactionGroup{Name: g.Name, Count: g.Count, Users: users}
	}
	slices.SortFunc(out, func(a, b ReactionGroup) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	return out
}

// Equal reports whether two snapshots describe the same reaction state,
// ignoring ordering of groups and reactors
func (s ReactionSnapshot) Equal(other ReactionSnapshot) bool {
	a, b := s.canonical(), other.canonical()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Count != b[i].Count {
			return false
		}
		if !slices.Equal(a[i].Users, b[i].Users) {
			return false
		}
	}
	return true
}

// Rows flattens the snapshot into storage rows for the given message
func (s ReactionSnapshot) Rows(messageID int64) []*Reaction {
	var rows []*Reaction
	for _, g := range s {
		for _, uid := range g.Users {
			rows = append(rows, &Reaction{
				MessageID: messageID,
				Name:      g.Name,
				UserID:    uid,
			})
		}
	}
	return rows
}

// SnapshotFromRows reconstructs a snapshot from stored reaction rows
func SnapshotFromRows(rows []*Reaction) ReactionSnapshot {
	groups := map[string][]types.UserID{}
	var order []string
	for _, r := range rows {
		if _, ok := groups[r.Name]; !ok {
			order = append(order, r.Name)
		}
		groups[r.Name] = append(groups[r.Name], r.UserID)
	}
	snapshot := make(ReactionSnapshot, 0, len(order))
	for _, name := range order {
		snapshot = append(snapshot, ReactionGroup{
			Name:  name,
			Count: len(groups[name]),
			Users: groups[name],
		})
	}
	return snapshot
}
