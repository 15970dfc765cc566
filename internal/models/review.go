package models

// Review is a traveler's review of a destination.
type Review struct {
	ID            int64  `json:"id"`
	DestinationID int64  `json:"destination_id"`
	TravelerName  string `json:"traveler_name,omitempty"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// ReviewInput is the create/update payload for a review.
type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
