package nlquery

// Filter parameter keys shared with the storage layer.
const (
	FilterCategory     = "category"
	FilterStockStatus  = "stock_status"
	FilterLocation     = "location"
	FilterPackage      = "package"
	FilterManufacturer = "manufacturer"
	FilterMinPrice     = "min_price"
	FilterMaxPrice     = "max_price"
	FilterExactPrice   = "exact_price"
)

// mappingOrder fixes which entity claims a filter key first. Entities are
// mapped in this order and a key already written is never overwritten, so
// cross-type collisions resolve the same way on every parse.
var mappingOrder = []EntityType{
	EntityComponentType,
	EntityStockStatus,
	EntityLocation,
	EntityValue,
	EntityPackage,
	EntityManufacturer,
	EntityPrice,
}

// MapParameters translates deduplicated entities into the flat filter map the
// storage layer consumes. Electrical values map onto a key named after their
// physical kind ("resistance", "voltage", ...) holding the base-unit magnitude.
func MapParameters(entities map[EntityType]EntityMatch) map[string]any {
	filters := make(map[string]any, len(entities)+1)
	set := func(key string, value any) {
		if _, taken := filters[key]; !taken {
			filters[key] = value
		}
	}

	for _, t := range mappingOrder {
		m, ok := entities[t]
		if !ok {
			continue
		}
		switch t {
		case EntityComponentType:
			set(FilterCategory, m.Normalized)
		case EntityStockStatus:
			set(FilterStockStatus, m.Normalized)
		case EntityLocation:
			set(FilterLocation, m.Normalized)
		case EntityValue:
			if m.Value != nil {
				set(string(m.Value.Kind), m.Value.Magnitude)
			}
		case EntityPackage:
			set(FilterPackage, m.Normalized)
		case EntityManufacturer:
			set(FilterManufacturer, m.Normalized)
		case EntityPrice:
			if m.Price != nil {
				mapPrice(set, m.Price)
			}
		}
	}
	return filters
}

func mapPrice(set func(string, any), p *PriceDetail) {
	switch p.Kind {
	case PriceUnder:
		set(FilterMaxPrice, p.Max)
	case PriceOver:
		set(FilterMinPrice, p.Min)
	case PriceExact:
		set(FilterExactPrice, p.Min)
	case PriceRange:
		set(FilterMinPrice, p.Min)
		set(FilterMaxPrice, p.Max)
	}
}

// MergeFilters overlays manually supplied filters on the parsed ones.
// Manual values always win: an explicit UI selection outranks anything
// inferred from free text.
func MergeFilters(parsed, manual map[string]any) map[string]any {
	merged := make(map[string]any, len(parsed)+len(manual))
	for k, v := range parsed {
		merged[k] = v
	}
	for k, v := range manual {
		merged[k] = v
	}
	return merged
}
