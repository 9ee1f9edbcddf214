package speedrun

import "github.com/albapepper/speedrun-lb/internal/provider"

// BuildCatalog indexes a game's categories by id. Upstream ids are expected
// to be unique; a repeated id overwrites the earlier entry.
func BuildCatalog(raw []RawCategory) provider.Catalog {
	catalog := make(provider.Catalog, len(raw))
	for _, c := range raw {
		catalog[c.ID] = normalizeCategory(c)
	}
	return catalog
}

func normalizeCategory(raw RawCategory) provider.Category {
	kind := provider.CategoryKind(raw.Type)
	if raw.Miscellaneous && kind == provider.KindPerGame {
		kind = provider.KindMisc
	}
	return provider.Category{
		ID:   raw.ID,
		Name: raw.Name,
		Kind: kind,
	}
}
