package clientjob

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Legacy feedback log codec.
//
// The previous system stored a client job's feedback history as one
// delimited string instead of child rows:
//
//	Feedback-<text>:Remarks-<text>:NFD-<date>:EJD-<date>:IFD-<date>:Entry Time<DD-MM-YYYY HH:MM:SS>;Entry By-<name>
//
// with entries joined by ";;;;;". Internally feedback lives in the
// feedback_entries table; this codec exists only to import from and export
// to that wire format at the boundary.

const legacyEntrySeparator = ";;;;;"

var (
	reLegacyFeedback  = regexp.MustCompile(`Feedback-([^:;]*)`)
	reLegacyRemarks   = regexp.MustCompile(`Remarks-([^:;]*)`)
	reLegacyNFD       = regexp.MustCompile(`NFD-([^:;]*)`)
	reLegacyEJD       = regexp.MustCompile(`EJD-([^:;]*)`)
	reLegacyIFD       = regexp.MustCompile(`IFD-([^:;]*)`)
	reLegacyEntryTime = regexp.MustCompile(`Entry Time\s*(\d{2}-\d{2}-\d{4} \d{2}:\d{2}:\d{2})`)
	reLegacyEntryBy   = regexp.MustCompile(`Entry By-([^:;]*)`)
)

// kolkata is the display zone used by the legacy format.
var kolkata = loadKolkata()

func loadKolkata() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// LegacyFeedback is one decoded entry of the legacy log. Fields of
// malformed segments are empty strings, never errors.
type LegacyFeedback struct {
	Feedback string `json:"feedback"`
	Remarks  string `json:"remarks"`
	NFDDate  string `json:"nfd_date"`
	EJDDate  string `json:"ejd_date"`
	IFDDate  string `json:"ifd_date"`
	EntryBy  string `json:"entry_by"`

	// EntryTime is zero when the embedded timestamp was unparseable;
	// such entries sort after all dated ones.
	EntryTime   time.Time `json:"entry_time"`
	DisplayTime string    `json:"display_time"`
}

func matchLegacy(re *regexp.Regexp, entry string) string {
	m := re.FindStringSubmatch(entry)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ParseFeedbackLog decodes a legacy log string. Entries come back sorted
// descending by entry time, most recent first.
func ParseFeedbackLog(log string) []LegacyFeedback {
	var out []LegacyFeedback

	for _, raw := range strings.Split(log, legacyEntrySeparator) {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}

		fb := LegacyFeedback{
			Feedback: matchLegacy(reLegacyFeedback, entry),
			Remarks:  matchLegacy(reLegacyRemarks, entry),
			NFDDate:  matchLegacy(reLegacyNFD, entry),
			EJDDate:  matchLegacy(reLegacyEJD, entry),
			IFDDate:  matchLegacy(reLegacyIFD, entry),
			EntryBy:  matchLegacy(reLegacyEntryBy, entry),
		}

		if ts := matchLegacy(reLegacyEntryTime, entry); ts != "" {
			if t, err := time.ParseInLocation("02-01-2006 15:04:05", ts, kolkata); err == nil {
				fb.EntryTime = t
				fb.DisplayTime = t.In(kolkata).Format("02-01-2006 03:04:05 PM")
			}
		}

		out = append(out, fb)
	}

	// Most recent first; zero times (unparseable) land at the end.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EntryTime.After(out[j].EntryTime)
	})

	return out
}

func legacyDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// EncodeFeedbackLog renders feedback entries in the legacy wire format,
// oldest first, for consumers that still speak it.
func EncodeFeedbackLog(entries []FeedbackEntry) string {
	sorted := make([]FeedbackEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EntryTime.Before(sorted[j].EntryTime)
	})

	parts := make([]string, 0, len(sorted))
	for _, e := range sorted {
		parts = append(parts, fmt.Sprintf(
			"Feedback-%s:Remarks-%s:NFD-%s:EJD-%s:IFD-%s:Entry Time%s;Entry By-%s",
			e.Feedback,
			e.Remarks,
			legacyDate(e.NFDDate),
			legacyDate(e.EJDDate),
			legacyDate(e.IFDDate),
			e.EntryTime.In(kolkata).Format("02-01-2006 15:04:05"),
			e.EntryBy,
		))
	}
	return strings.Join(parts, legacyEntrySeparator)
}
