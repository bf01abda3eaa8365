package domain

import "strings"

// EntityType identifies the tier of a geographic entity.
// Tiers form a loose, display-only hierarchy; parent labels are
// informational and carry no referential integrity.
type EntityType string

// Entity tiers, broadest first.
const (
	// EntityTerritory is the broadest tier (a whole territory).
	EntityTerritory EntityType = "territory"

	// EntityRegion is an administrative region.
	EntityRegion EntityType = "region"

	// EntitySubregion is a subdivision of a region.
	EntitySubregion EntityType = "subregion"

	// EntityLocality is a town or city.
	EntityLocality EntityType = "locality"

	// EntitySettlement is a small settlement below locality level.
	EntitySettlement EntityType = "settlement"
)

// IsValid returns true if the entity type is recognised.
func (t EntityType) IsValid() bool {
	switch t {
	case EntityTerritory, EntityRegion, EntitySubregion, EntityLocality, EntitySettlement:
		return true
	default:
		return false
	}
}

// IsAdministrative returns true for the region/subregion tiers.
// These are capped jointly in ranked output so administrative
// levels do not dominate the list.
func (t EntityType) IsAdministrative() bool {
	return t == EntityRegion || t == EntitySubregion
}

// IsPoint returns true for tiers whose selection flies the map to a
// coordinate rather than fitting an administrative boundary.
func (t EntityType) IsPoint() bool {
	return t == EntityLocality || t == EntitySettlement
}

// String returns the string representation.
func (t EntityType) String() string {
	return string(t)
}

// ParseEntityType converts a string into an EntityType.
// Returns ErrInvalidInput for unknown values.
func ParseEntityType(s string) (EntityType, error) {
	t := EntityType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidInput
	}
	return t, nil
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	// Lat is the latitude in degrees.
	Lat float64

	// Lng is the longitude in degrees.
	Lng float64
}

// Entity represents one searchable place.
// Entities are loaded once per session and treated as immutable for
// the engine's lifetime; a reload replaces the whole collection.
type Entity struct {
	// Name is the display form of the place name.
	Name string

	// NameLower caches the lowercase name for equality and prefix checks.
	NameLower string

	// Type is the entity tier.
	Type EntityType

	// Coordinates is the point geometry, or nil for aggregated
	// parents without one.
	Coordinates *Coordinates

	// ParentRegion is the display-only parent region label.
	ParentRegion string

	// ParentSubregion is the display-only parent subregion label.
	ParentSubregion string

	// ParentTerritory is the display-only parent territory label.
	ParentTerritory string
}

// NewEntity builds an entity with its cached lowercase name.
func NewEntity(name string, t EntityType, coords *Coordinates) Entity {
	return Entity{
		Name:        name,
		NameLower:   strings.ToLower(name),
		Type:        t,
		Coordinates: coords,
	}
}

// HasCoordinates returns true if the entity carries point geometry.
func (e *Entity) HasCoordinates() bool {
	return e.Coordinates != nil
}

// ParentLabel returns the most specific parent label, for display.
func (e *Entity) ParentLabel() string {
	switch {
	case e.ParentSubregion != "":
		return e.ParentSubregion
	case e.ParentRegion != "":
		return e.ParentRegion
	default:
		return e.ParentTerritory
	}
}

// Collections holds the five entity tiers supplied by a data source.
type Collections struct {
	// Territories is the territory tier.
	Territories []Entity

	// Regions is the region tier.
	Regions []Entity

	// Subregions is the subregion tier.
	Subregions []Entity

	// Localities is the locality tier.
	Localities []Entity

	// Settlements is the settlement tier.
	Settlements []Entity
}

// All returns every entity across the five tiers, in tier order.
func (c *Collections) All() []Entity {
	out := make([]Entity, 0, c.Len())
	out = append(out, c.Territories...)
	out = append(out, c.Regions...)
	out = append(out, c.Subregions...)
	out = append(out, c.Localities...)
	out = append(out, c.Settlements...)
	return out
}

// Len returns the total entity count across all tiers.
func (c *Collections) Len() int {
	return len(c.Territories) + len(c.Regions) + len(c.Subregions) +
		len(c.Localities) + len(c.Settlements)
}

// IsEmpty returns true when no tier holds any entities.
func (c *Collections) IsEmpty() bool {
	return c.Len() == 0
}
