package models

// SnapshotVersion tags the export format.
const SnapshotVersion = "1.0"

// Snapshot is a full backup of the store contents (the session is not included).
type Snapshot struct {
	Students   []Student `json:"students"`
	Teachers   []Teacher `json:"teachers"`
	Tasks      []Task    `json:"tasks"`
	Grades     []Grade   `json:"grades"`
	Settings   Settings  `json:"settings"`
	ExportDate string    `json:"exportDate"`
	Version    string    `json:"version"`
}

// ImportPayload replaces whichever collections are present. A nil field
// (absent from the JSON) leaves the stored collection untouched; an empty
// JSON array replaces it with nothing.
type ImportPayload struct {
	Students []Student `json:"students"`
	Teachers []Teacher `json:"teachers"`
	Tasks    []Task    `json:"tasks"`
	Grades   []Grade   `json:"grades"`
	Settings *Settings `json:"settings"`
}
