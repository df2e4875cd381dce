package item

import "time"

// Samples returns the fixture inbox used by demo mode and tests: two items
// from today, one from yesterday, one older and already processed.
func Samples(now time.Time) []Entity {
	transcribed := "Remember to follow up with the venue about catering options for the offsite."
	recordID := "7b1d3a90-6a3e-4f1c-9b26-0f6f4a1c2d58"

	return []Entity{
		{
			ID:            "f47ac10b-58cc-4372-a567-0e02b2c3d479",
			Kind:          KindVoiceNote,
			CreatedAt:     now.Add(-25 * time.Minute),
			Transcription: &transcribed,
		},
		{
			ID:          "9c858901-8a57-4791-81fe-4c455b099bc9",
			Kind:        KindPhoto,
			CreatedAt:   now.Add(-3 * time.Hour),
			PreviewText: "Whiteboard sketch from planning session",
		},
		{
			ID:        "16fd2706-8baf-433b-82eb-8c7fada847da",
			Kind:      KindScan,
			CreatedAt: now.Add(-26 * time.Hour),
		},
		{
			ID:          "6ecd8c99-4036-403d-bf84-cf8400f67836",
			Kind:        KindVoiceNote,
			CreatedAt:   now.Add(-72 * time.Hour),
			PreviewText: "Call notes, already filed",
			Processed:   true,
			RecordID:    &recordID,
		},
	}
}
