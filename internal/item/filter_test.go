package item

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testCollection(now time.Time) []Entity {
	return []Entity{
		{ID: "v1", Kind: KindVoiceNote, CreatedAt: now},
		{ID: "p1", Kind: KindPhoto, CreatedAt: now},
		{ID: "s1", Kind: KindScan, CreatedAt: now},
		{ID: "v2", Kind: KindVoiceNote, CreatedAt: now, Archived: true},
		{ID: "f1", Kind: KindFile, CreatedAt: now},
	}
}

func TestVisible(t *testing.T) {
	items := testCollection(time.Now())

	tests := []struct {
		filter  Filter
		wantIDs []string
	}{
		{FilterAll, []string{"v1", "p1", "s1", "f1"}},
		{FilterVoiceNotes, []string{"v1"}},
		{FilterPhotos, []string{"p1"}},
		{FilterScans, []string{"s1"}},
		{FilterArchived, []string{"v2"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			var got []string
			for _, e := range Visible(items, tt.filter) {
				got = append(got, e.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestVisibleExcludesArchivedUnlessArchivedFilter(t *testing.T) {
	items := testCollection(time.Now())

	for _, f := range Filters() {
		for _, e := range Visible(items, f) {
			if f == FilterArchived {
				assert.True(t, e.Archived, "filter %s item %s", f, e.ID)
			} else {
				assert.False(t, e.Archived, "filter %s item %s", f, e.ID)
			}
		}
	}
}

func TestVisiblePreservesOrder(t *testing.T) {
	now := time.Now()
	items := []Entity{
		{ID: "a", Kind: KindVoiceNote, CreatedAt: now},
		{ID: "b", Kind: KindPhoto, CreatedAt: now.Add(-time.Hour)},
		{ID: "c", Kind: KindVoiceNote, CreatedAt: now.Add(-2 * time.Hour)},
	}

	got := Visible(items, FilterVoiceNotes)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestUnprocessedCount(t *testing.T) {
	rec := "rec-1"
	now := time.Now()
	items := []Entity{
		{ID: "a", Kind: KindVoiceNote, CreatedAt: now},
		{ID: "b", Kind: KindPhoto, CreatedAt: now, Processed: true, RecordID: &rec},
		{ID: "c", Kind: KindScan, CreatedAt: now, Archived: true},
	}

	assert.Equal(t, 1, UnprocessedCount(items))
	assert.Equal(t, 0, UnprocessedCount(nil))
}
