package models

// ResponderStats summarizes the responder pool. Active counts enrolled
// responders currently on a mission, Enrolled counts the whole pool.
type ResponderStats struct {
	Active   int64 `json:"active"`
	Enrolled int64 `json:"enrolled"`
}
