package domain

// Category and City are flat reference tables used for browsing; the
// event counters are display aggregates, not authoritative data.

type Category struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
	EventCount int    `json:"event_count"`
}

type City struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	EventCount int    `json:"event_count"`
}
