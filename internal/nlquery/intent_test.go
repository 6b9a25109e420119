package nlquery

import "testing"

func TestClassifier(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	ents := func(types ...EntityType) map[EntityType]EntityMatch {
		m := make(map[EntityType]EntityMatch, len(types))
		for _, t := range types {
			m[t] = EntityMatch{Type: t}
		}
		return m
	}

	tests := []struct {
		name     string
		text     string
		entities map[EntityType]EntityMatch
		intent   Intent
		base     float64
	}{
		{
			"verb plus type",
			"find resistors",
			ents(EntityComponentType),
			IntentSearchByType, baseSearchByType,
		},
		{
			"type without verb is not a search",
			"resistors with low stock",
			ents(EntityComponentType, EntityStockStatus),
			IntentFilterByStock, baseFilterByStock,
		},
		{
			"stock outranks location",
			"low stock in a3",
			ents(EntityStockStatus, EntityLocation),
			IntentFilterByStock, baseFilterByStock,
		},
		{
			"location",
			"parts in drawer b2",
			ents(EntityLocation),
			IntentFilterByLocation, baseFilterByLocation,
		},
		{
			"value",
			"10k resistors",
			ents(EntityValue, EntityComponentType),
			IntentFilterByValue, baseFilterByValue,
		},
		{
			"price",
			"caps under $1",
			ents(EntityPrice, EntityComponentType),
			IntentFilterByPrice, baseFilterByPrice,
		},
		{
			"verb without entities",
			"show me everything",
			ents(),
			IntentUnclassified, 0,
		},
		{
			"no rule matches",
			"hello there",
			ents(),
			IntentUnclassified, 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, base := c.Classify(tt.text, tt.entities)
			if intent != tt.intent {
				t.Errorf("intent = %s, want %s", intent, tt.intent)
			}
			if base != tt.base {
				t.Errorf("base = %g, want %g", base, tt.base)
			}
		})
	}
}

func TestIntentString(t *testing.T) {
	tests := []struct {
		intent Intent
		want   string
	}{
		{IntentSearchByType, "search_by_type"},
		{IntentFilterByStock, "filter_by_stock"},
		{IntentFilterByLocation, "filter_by_location"},
		{IntentFilterByValue, "filter_by_value"},
		{IntentFilterByPrice, "filter_by_price"},
		{IntentUnclassified, "unclassified"},
		{Intent(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.intent.String(); got != tt.want {
			t.Errorf("Intent(%d).String() = %q, want %q", tt.intent, got, tt.want)
		}
	}
}
