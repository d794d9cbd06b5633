package registry

import "brewing-items/internal/item"

// Built-in item providers.
const (
	ProviderMinecraft  item.Provider = "MINECRAFT"
	ProviderItemsAdder item.Provider = "ITEMS_ADDER"
	ProviderOraxen     item.Provider = "ORAXEN"
	ProviderMMOItems   item.Provider = "MMO_ITEMS"
)

// Providers returns the built-in provider table.
func Providers() *Static[item.Provider] {
	return NewStatic("provider", ProviderMinecraft, ProviderItemsAdder, ProviderOraxen, ProviderMMOItems)
}
