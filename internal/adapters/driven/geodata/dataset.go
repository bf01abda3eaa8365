package geodata

import (
	"encoding/json"
	"fmt"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
)

// record is one gazetteer entry on disk. Coordinates are optional;
// aggregated parents ship without them.
type record struct {
	Name      string   `json:"name"`
	Lat       *float64 `json:"lat,omitempty"`
	Lng       *float64 `json:"lng,omitempty"`
	Region    string   `json:"region,omitempty"`
	Subregion string   `json:"subregion,omitempty"`
	Territory string   `json:"territory,omitempty"`
}

// dataset is the on-disk gazetteer layout, one array per tier.
type dataset struct {
	Territories []record `json:"territories"`
	Regions     []record `json:"regions"`
	Subregions  []record `json:"subregions"`
	Localities  []record `json:"localities"`
	Settlements []record `json:"settlements"`
}

// decode parses a gazetteer document into domain collections.
// Records without a name are skipped rather than failing the load.
func decode(data []byte) (domain.Collections, error) {
	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return domain.Collections{}, fmt.Errorf("failed to parse gazetteer: %w", err)
	}

	return domain.Collections{
		Territories: toEntities(ds.Territories, domain.EntityTerritory),
		Regions:     toEntities(ds.Regions, domain.EntityRegion),
		Subregions:  toEntities(ds.Subregions, domain.EntitySubregion),
		Localities:  toEntities(ds.Localities, domain.EntityLocality),
		Settlements: toEntities(ds.Settlements, domain.EntitySettlement),
	}, nil
}

func toEntities(records []record, t domain.EntityType) []domain.Entity {
	entities := make([]domain.Entity, 0, len(records))
	for _, r := range records {
		if r.Name == "" {
			continue
		}

		var coords *domain.Coordinates
		if r.Lat != nil && r.Lng != nil {
			coords = &domain.Coordinates{Lat: *r.Lat, Lng: *r.Lng}
		}

		e := domain.NewEntity(r.Name, t, coords)
		e.ParentRegion = r.Region
		e.ParentSubregion = r.Subregion
		e.ParentTerritory = r.Territory
		entities = append(entities, e)
	}
	return entities
}
