package model

// Message is a data-quality finding recorded during a pass. Malformed input
// never aborts scoring; it degrades to a message so the snapshot owner can
// fix the upstream data.
type Message struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)
