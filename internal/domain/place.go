package domain

// Place is a named point stored with its canonical coordinate text.
// Entrance is optional and stored as NULL when absent.
type Place struct {
	PlaceID  int
	Name     string
	Point    LatLong
	Entrance *LatLong
}
