package domain

// CollectionPoint is a physical drop-off location for recyclable waste.
type CollectionPoint struct {
	Placement
	Name         string
	Address      string
	Contact      *string
	OpeningHours *string
}
