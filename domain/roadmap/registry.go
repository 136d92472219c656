package roadmap

// Variants holds one instance of each layout variant.
type Variants struct {
	Desktop Variant
	Mobile  Variant
}

// NewVariants builds both variants.
func NewVariants() Variants {
	return Variants{Desktop: NewDesktop(), Mobile: NewMobile()}
}

// Get returns the variant of the given kind.
func (v Variants) Get(kind Kind) Variant {
	if kind == KindMobile {
		return v.Mobile
	}
	return v.Desktop
}
