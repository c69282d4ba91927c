package ledger

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidCursor is returned when cursor can not be decoded.
var ErrInvalidCursor = errors.New("invalid cursor")

// Before reports whether a goes before b: newer first, equal timestamps are ordered by id.
func Before(a, b Record) bool {
	if a.Timestamp != b.Timestamp {
		return a.Timestamp > b.Timestamp
	}

	return a.ID < b.ID
}

// SortRecords sorts records by recency descending.
func SortRecords(r []Record) {
	sort.SliceStable(r, func(i, j int) bool {
		return Before(r[i], r[j])
	})
}

// EncodeCursor encodes record position into cursor.
func EncodeCursor(r Record) string {
	return base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf("%d:%s", r.Timestamp, r.ID)))
}

// DecodeCursor decodes cursor into position. Records located after position are returned by
// a next page.
func DecodeCursor(cursor string) (Record, error) {
	b, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %s", ErrInvalidCursor, err)
	}

	p := strings.SplitN(string(b), ":", 2)
	if len(p) != 2 {
		return Record{}, ErrInvalidCursor
	}

	ts, err := strconv.ParseInt(p[0], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %s", ErrInvalidCursor, err)
	}

	return Record{ID: p[1], Timestamp: ts}, nil
}

// NewID returns a new 43-symbols record id built from body, tags and a random nonce.
func NewID(body []byte, tags Tags) string {
	h := sha256.New()
	h.Write(body)
	for _, v := range tags {
		h.Write([]byte(v.Name))
		h.Write([]byte{0})
		h.Write([]byte(v.Value))
		h.Write([]byte{0})
	}
	nonce := uuid.New()
	h.Write(nonce[:])

	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
