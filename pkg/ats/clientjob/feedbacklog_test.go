package clientjob

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeedbackLogOrdering(t *testing.T) {
	log := "Feedback-called:Remarks-interested:NFD-2024-03-20:EJD-:IFD-:Entry Time15-03-2024 10:30:00;Entry By-EMP01" +
		";;;;;" +
		"Feedback-follow up:Remarks-shortlisted:NFD-2024-03-25:EJD-:IFD-:Entry Time18-03-2024 09:00:00;Entry By-EMP02"

	entries := ParseFeedbackLog(log)

	require.Len(t, entries, 2)
	// Most recent entry first.
	assert.Equal(t, "follow up", entries[0].Feedback)
	assert.Equal(t, "EMP02", entries[0].EntryBy)
	assert.Equal(t, "called", entries[1].Feedback)
	assert.Equal(t, "interested", entries[1].Remarks)
	assert.Equal(t, "2024-03-20", entries[1].NFDDate)
}

func TestParseFeedbackLogMalformedEntryDegrades(t *testing.T) {
	log := "Feedback-ok:Remarks-fine:NFD-:EJD-:IFD-:Entry Time15-03-2024 10:30:00;Entry By-EMP01" +
		";;;;;" +
		"complete garbage with no labels at all"

	entries := ParseFeedbackLog(log)

	require.Len(t, entries, 2)
	// The well-formed entry sorts first; the garbage one has empty fields
	// and a zero entry time, placing it last.
	assert.Equal(t, "ok", entries[0].Feedback)
	assert.Empty(t, entries[1].Feedback)
	assert.Empty(t, entries[1].EntryBy)
	assert.True(t, entries[1].EntryTime.IsZero())
}

func TestParseFeedbackLogEmpty(t *testing.T) {
	assert.Empty(t, ParseFeedbackLog(""))
	assert.Empty(t, ParseFeedbackLog("   "))
}

func TestParseFeedbackLogDisplayTime(t *testing.T) {
	log := "Feedback-x:Remarks-y:NFD-:EJD-:IFD-:Entry Time15-03-2024 14:30:05;Entry By-EMP01"

	entries := ParseFeedbackLog(log)

	require.Len(t, entries, 1)
	assert.Equal(t, "15-03-2024 02:30:05 PM", entries[0].DisplayTime)
}

func TestEncodeFeedbackLogRoundTrip(t *testing.T) {
	early := time.Date(2024, 3, 15, 10, 30, 0, 0, kolkata)
	late := time.Date(2024, 3, 18, 9, 0, 0, 0, kolkata)
	nfd := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	encoded := EncodeFeedbackLog([]FeedbackEntry{
		{Feedback: "follow up", Remarks: "shortlisted", EntryBy: "EMP02", EntryTime: late},
		{Feedback: "called", Remarks: "interested", NFDDate: &nfd, EntryBy: "EMP01", EntryTime: early},
	})

	// Oldest first on the wire.
	assert.True(t, len(encoded) > 0)
	parsed := ParseFeedbackLog(encoded)
	require.Len(t, parsed, 2)
	assert.Equal(t, "follow up", parsed[0].Feedback)
	assert.Equal(t, "called", parsed[1].Feedback)
	assert.Equal(t, "2024-03-20", parsed[1].NFDDate)
	assert.Equal(t, early.Format("02-01-2006 15:04:05"), parsed[1].EntryTime.Format("02-01-2006 15:04:05"))
}
