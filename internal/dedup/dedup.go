// Package dedup collapses raw records into current views of logical entities.
//
// Records must be ordered by recency descending: the first record of an identifying group is
// considered its current version.
package dedup

import (
	"strconv"
	"strings"

	"github.com/Decentr-net/quill/internal/ledger"
	"github.com/Decentr-net/quill/internal/schema"
)

// Current returns the latest record of every logical entity excluding removed entities.
func Current(r []ledger.Record, t schema.EntityType) []ledger.Record {
	return DropRemoved(Collapse(r, t))
}

// Collapse keeps the first record of every identifying group.
func Collapse(r []ledger.Record, t schema.EntityType) []ledger.Record {
	names := schema.IdentifyingTags(t)

	seen := make(map[string]struct{}, len(r))
	out := make([]ledger.Record, 0, len(r))

	for _, v := range r {
		k := Key(v, names)
		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		out = append(out, v)
	}

	return out
}

// DropRemoved excludes records marked with Remove action.
func DropRemoved(r []ledger.Record) []ledger.Record {
	out := make([]ledger.Record, 0, len(r))

	for _, v := range r {
		if schema.ActionOf(v) == schema.Remove {
			continue
		}
		out = append(out, v)
	}

	return out
}

// Key returns identifying group key of record. Records without identifying tags are unique.
func Key(r ledger.Record, names []string) string {
	if len(names) == 0 {
		return "\x00" + r.ID
	}

	var b strings.Builder
	for _, name := range names {
		v := schema.Value(r, name)
		b.WriteString(strconv.Itoa(len(v)))
		b.WriteByte(':')
		b.WriteString(v)
	}

	return b.String()
}

// Version is a current state of a logical entity.
type Version struct {
	Origin ledger.Record // the first record of entity
	Latest ledger.Record
}

// View returns the latest record addressed by id of the first record.
// Entities keep the id of their first record through updates.
func (v Version) View() ledger.Record {
	r := v.Latest
	r.ID = v.Origin.ID
	return r
}

// Versions groups records by logical entity excluding removed entities.
// Entities are ordered by their latest records.
func Versions(r []ledger.Record, t schema.EntityType) []Version {
	names := schema.IdentifyingTags(t)

	index := make(map[string]int, len(r))
	out := make([]Version, 0, len(r))

	for _, v := range r {
		k := Key(v, names)
		if i, ok := index[k]; ok {
			out[i].Origin = v
			continue
		}

		index[k] = len(out)
		out = append(out, Version{Origin: v, Latest: v})
	}

	live := out[:0]
	for _, v := range out {
		if schema.ActionOf(v.Latest) != schema.Remove {
			live = append(live, v)
		}
	}

	return live
}
