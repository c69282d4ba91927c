package ledger

// Tag is a name/value pair attached to a record.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Tags is an ordered sequence of tags. Names are not unique.
type Tags []Tag

// Value returns value of the first tag with name.
func (t Tags) Value(name string) (string, bool) {
	for _, v := range t {
		if v.Name == name {
			return v.Value, true
		}
	}

	return "", false
}

// Get returns value of the first tag with name or empty string.
func (t Tags) Get(name string) string {
	v, _ := t.Value(name)
	return v
}

// Optional returns pointer to value of the first tag with name or nil.
func (t Tags) Optional(name string) *string {
	v, ok := t.Value(name)
	if !ok {
		return nil
	}

	return &v
}

// Has checks if any tag with name has value.
func (t Tags) Has(name, value string) bool {
	for _, v := range t {
		if v.Name == name && v.Value == value {
			return true
		}
	}

	return false
}

// TagFilter matches records having tag Name with one of Values.
type TagFilter struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Match checks that record satisfies every filter.
func Match(r Record, filters []TagFilter) bool {
	for _, f := range filters {
		ok := false
		for _, v := range f.Values {
			if r.Tags.Has(f.Name, v) {
				ok = true
				break
			}
		}

		if !ok {
			return false
		}
	}

	return true
}
