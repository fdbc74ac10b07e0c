package event

import "time"

// FormValidatedDestination is the default subject for submission summaries.
const FormValidatedDestination string = "identity.form_validated"

// FormValidatedMessage summarises one validated submission. Field values are
// never part of it.
type FormValidatedMessage struct {
	Form        string            `json:"form"`
	Valid       bool              `json:"valid"`
	Violations  map[string]string `json:"violations"`
	ValidatedAt time.Time         `json:"validated_at"`
}
