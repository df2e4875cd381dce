package item

import (
	"sort"
	"time"
)

const dayHeadingFormat = "Monday, Jan 2"

// Bucket is a run of items sharing a calendar day.
type Bucket struct {
	Label string
	Items []Entity
}

// Group buckets items by calendar day relative to now. Today's bucket sorts
// first, then Yesterday, then older days descending by the newest item in
// each bucket. Within a bucket, input order is preserved.
func Group(items []Entity, now time.Time) []Bucket {
	type bucket struct {
		day    time.Time
		items  []Entity
		newest time.Time
	}

	loc := now.Location()
	byDay := make(map[time.Time]*bucket)
	var order []*bucket
	for _, e := range items {
		day := dayOf(e.CreatedAt.In(loc))
		b, ok := byDay[day]
		if !ok {
			b = &bucket{day: day}
			byDay[day] = b
			order = append(order, b)
		}
		b.items = append(b.items, e)
		if e.CreatedAt.After(b.newest) {
			b.newest = e.CreatedAt
		}
	}

	today := dayOf(now)
	yesterday := today.AddDate(0, 0, -1)

	rank := func(b *bucket) int {
		switch b.day {
		case today:
			return 0
		case yesterday:
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		ri, rj := rank(order[i]), rank(order[j])
		if ri != rj {
			return ri < rj
		}
		return order[i].newest.After(order[j].newest)
	})

	out := make([]Bucket, 0, len(order))
	for _, b := range order {
		label := b.day.Format(dayHeadingFormat)
		switch b.day {
		case today:
			label = "Today"
		case yesterday:
			label = "Yesterday"
		}
		out = append(out, Bucket{Label: label, Items: b.items})
	}
	return out
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
