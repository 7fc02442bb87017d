package model

// DayPublicHoliday is the pseudo-day key for holiday opening hours, alongside
// the seven weekday names.
const DayPublicHoliday = "PublicHoliday"

// OpeningHoursSpec is one flattened OpeningHoursSpecification entry: a single
// day with a single opens/closes range.
type OpeningHoursSpec struct {
	DayOfWeek string `json:"dayOfWeek"`
	Opens     string `json:"opens"`
	Closes    string `json:"closes"`
}

// Node renders the entry as a schema.org OpeningHoursSpecification node.
func (s OpeningHoursSpec) Node() Node {
	return Node{
		"@type":     "OpeningHoursSpecification",
		"dayOfWeek": s.DayOfWeek,
		"opens":     s.Opens,
		"closes":    s.Closes,
	}
}
