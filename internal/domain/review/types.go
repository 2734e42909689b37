package review

import "github.com/google/uuid"

// DefaultRating is the neutral rating shown when a product has no approved
// reviews or its review set could not be fetched. Fixed policy constant.
const DefaultRating = 3.0

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a read-only projection of a moderated product review. Reviews
// are owned by the moderation collaborator; this core never writes them.
type Review struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Rating    int32
	Approved  bool
}
