package protocol

// EventEnvelope wraps every message pushed over the websocket.
type EventEnvelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// LayoutGenerated announces that a new layout replaced the current one.
// Clients fetch the full snapshot from the layout endpoint.
type LayoutGenerated struct {
	RunID         string `json:"runId"`
	RepoID        string `json:"repoId"`
	Commit        string `json:"commit,omitempty"`
	Seed          string `json:"seed"`
	RoomCount     int    `json:"roomCount"`
	CorridorCount int    `json:"corridorCount"`
}
