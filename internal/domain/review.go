package domain

// Review records one user rating another for one delivery. At most one review
// per (delivery, reviewer, reviewee) triple.
type Review struct {
	ID         int64
	DeliveryID int64
	ReviewerID int64
	RevieweeID int64
	Rating     int
	Comment    string
}

// ValidRating reports whether the rating is within the 1..5 scale.
func (r Review) ValidRating() bool {
	return r.Rating >= 1 && r.Rating <= 5
}
