package calendar

const (
	badgeTruncateOver = 15 // texts longer than this get shortened
	badgeTruncateTo   = 12
	badgeMaxDots      = 5
	badgeMaxLines     = 2 // above this many events, show dots instead of text
)

// Badge is the compact per-cell summary of a day's events
type Badge struct {
	Lines []string // event texts, set for 1 or 2 events
	Dots  int      // indicator count, set for 3 or more events
}

// Empty reports whether the badge has nothing to show
func (b Badge) Empty() bool {
	return len(b.Lines) == 0 && b.Dots == 0
}

// BuildBadge summarizes an event list for display inside a grid cell
func BuildBadge(events []string) Badge {
	switch {
	case len(events) == 0:
		return Badge{}
	case len(events) <= badgeMaxLines:
		lines := make([]string, len(events))
		for i, e := range events {
			lines[i] = truncateEvent(e)
		}
		return Badge{Lines: lines}
	default:
		return Badge{Dots: min(len(events), badgeMaxDots)}
	}
}

func truncateEvent(s string) string {
	r := []rune(s)
	if len(r) <= badgeTruncateOver {
		return s
	}
	return string(r[:badgeTruncateTo]) + "..."
}
