package item

// Filter selects which items are visible. Pure UI state, never persisted.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterVoiceNotes Filter = "voiceNotes"
	FilterPhotos     Filter = "photos"
	FilterScans      Filter = "scans"
	FilterArchived   Filter = "archived"
)

// Filters returns all filters in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterVoiceNotes, FilterPhotos, FilterScans, FilterArchived}
}

var filterDescriptors = map[Filter]Descriptor{
	FilterAll:        {Label: "All", Icon: "tray"},
	FilterVoiceNotes: {Label: "Voice", Icon: "mic"},
	FilterPhotos:     {Label: "Photos", Icon: "camera"},
	FilterScans:      {Label: "Scans", Icon: "scanner"},
	FilterArchived:   {Label: "Archived", Icon: "archive"},
}

// Descriptor returns the presentation descriptor for the filter.
func (f Filter) Descriptor() Descriptor {
	if d, ok := filterDescriptors[f]; ok {
		return d
	}
	return Descriptor{Label: string(f), Icon: "tray"}
}

// Matches reports whether the entity satisfies the filter's predicate.
// Archived entities are only visible under FilterArchived.
func (f Filter) Matches(e Entity) bool {
	switch f {
	case FilterArchived:
		return e.Archived
	case FilterVoiceNotes:
		return e.Kind == KindVoiceNote && !e.Archived
	case FilterPhotos:
		return e.Kind == KindPhoto && !e.Archived
	case FilterScans:
		return e.Kind == KindScan && !e.Archived
	default:
		return !e.Archived
	}
}

// Visible returns the subset of items matching the filter, preserving
// collection order.
func Visible(items []Entity, f Filter) []Entity {
	var out []Entity
	for _, e := range items {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// UnprocessedCount is the inbox badge count: items neither processed nor
// archived.
func UnprocessedCount(items []Entity) int {
	n := 0
	for _, e := range items {
		if !e.Processed && !e.Archived {
			n++
		}
	}
	return n
}
