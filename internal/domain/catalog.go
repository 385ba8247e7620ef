package domain

// Catalog is the static port and carrier dataset behind autocomplete.
// Implementations return slices the caller must not modify.
type Catalog interface {
	Ports() []CatalogPort
	Carriers() []CatalogCarrier
}
