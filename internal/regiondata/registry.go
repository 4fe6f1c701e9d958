package regiondata

import "errors"

// RegionRegistry holds the loaded region definitions.
type RegionRegistry struct {
	regions []RegionDef
}

// NewRegionRegistry creates a registry from loaded definitions.
func NewRegionRegistry(regions []RegionDef) *RegionRegistry {
	return &RegionRegistry{regions: regions}
}

// LoadRegionRegistry loads and creates a registry from the embedded
// regions.json.
func LoadRegionRegistry() (*RegionRegistry, error) {
	regions, err := LoadRegions()
	if err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return nil, errors.New("no regions loaded from regions.json")
	}
	return NewRegionRegistry(regions), nil
}

// MustLoadRegionRegistry loads a registry, panicking on error.
func MustLoadRegionRegistry() *RegionRegistry {
	registry, err := LoadRegionRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the region definition with the given ID, or nil if
// not found.
func (r *RegionRegistry) GetByID(id string) *RegionDef {
	for i := range r.regions {
		if r.regions[i].ID == id {
			return &r.regions[i]
		}
	}
	return nil
}

// All returns all region definitions.
func (r *RegionRegistry) All() []RegionDef {
	return r.regions
}

// IDs returns the region identifiers in definition order.
func (r *RegionRegistry) IDs() []string {
	ids := make([]string, len(r.regions))
	for i := range r.regions {
		ids[i] = r.regions[i].ID
	}
	return ids
}

// Count returns the number of regions in the registry.
func (r *RegionRegistry) Count() int {
	return len(r.regions)
}
