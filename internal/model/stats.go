package model

// StatsSnapshot is the per-kind count summary shown at the top of each
// dashboard tab. It has no identity of its own: it is recomputed from the
// in-memory collection whenever that collection changes, never stored.
//
// Total counts only active, non-archived records; AllTotal counts every
// record regardless of archive state or status. Completed and Cancelled
// are always zero for kinds without a workflow status.
type StatsSnapshot struct {
	Total     int `json:"total"`
	AllTotal  int `json:"all_total"`
	Unread    int `json:"unread"`
	Viewed    int `json:"viewed"`
	Archived  int `json:"archived"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}
