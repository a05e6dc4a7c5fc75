package model

// Station is a stop on the metro network.  Stations are seeded once at
// startup and act as read-only reference data for the booking flows.
// Position defines the display order among active stations; inactive
// stations remain in the table but are excluded from listings and
// booking validation.
//
// Fields:
//  Code     – unique, stable identifier (primary key).
//  Name     – rider-facing display name.
//  Position – ordering rank, ascending.
//  IsActive – whether the station is currently served.
type Station struct {
	Code     string // stations.code
	Name     string // stations.name
	Position uint32 // stations.position
	IsActive bool   // stations.is_active
}
