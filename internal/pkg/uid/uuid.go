package uid

import "github.com/google/uuid"

// UUID generates time-ordered UUIDv7 strings.
type UUID struct {
	newV7 func() (uuid.UUID, error)
}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{newV7: uuid.NewV7}
}

// Generate returns a new UUIDv7 string, or a random UUIDv4 when the clock
// sequence cannot be read.
func (u *UUID) Generate() string {
	id, err := u.newV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
