package item

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEntity(t *testing.T) {
	now := time.Now()
	e := New(KindVoiceNote, now, []byte{0x01, 0x02}, "")

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, KindVoiceNote, e.Kind)
	assert.Equal(t, now, e.CreatedAt)
	assert.Nil(t, e.Transcription)
	assert.False(t, e.Processed)
	assert.False(t, e.Archived)
	assert.Nil(t, e.RecordID)

	other := New(KindVoiceNote, now, nil, "")
	assert.NotEqual(t, e.ID, other.ID, "ids must be unique")
}

func TestStatusDerivation(t *testing.T) {
	text := "hello"
	rec := "rec-1"
	tests := []struct {
		name string
		e    Entity
		want Status
	}{
		{name: "no transcription", e: Entity{}, want: StatusProcessing},
		{name: "transcribed", e: Entity{Transcription: &text}, want: StatusReady},
		{name: "processed", e: Entity{Processed: true, RecordID: &rec}, want: StatusProcessed},
		{name: "processed wins over transcription", e: Entity{Processed: true, RecordID: &rec, Transcription: &text}, want: StatusProcessed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.e.Status())
		})
	}
}

func TestText(t *testing.T) {
	transcribed := "transcribed"
	e := Entity{PreviewText: "preview"}
	assert.Equal(t, "preview", e.Text())

	e.Transcription = &transcribed
	assert.Equal(t, "transcribed", e.Text())
}

func TestKindDescriptors(t *testing.T) {
	for _, k := range []Kind{KindVoiceNote, KindPhoto, KindScan, KindFile} {
		d := k.Descriptor()
		assert.NotEmpty(t, d.Label, "kind %s", k)
		assert.NotEmpty(t, d.Icon, "kind %s", k)
	}

	d := Kind("unknown").Descriptor()
	assert.Equal(t, "unknown", d.Label)
}

func TestSamplesInvariant(t *testing.T) {
	// Processed and RecordID must agree on every sample.
	for _, e := range Samples(time.Now()) {
		assert.Equal(t, e.Processed, e.RecordID != nil, "item %s", e.ID)
	}
	assert.Len(t, Samples(time.Now()), 4)
}
