package common

// Offer activity flag values kept as integers the way the storage schema
// records them.
const (
	OfferOpen   = 1
	OfferClosed = 0
)
