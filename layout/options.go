package layout

// CollectionOption configures a FontCollection.
type CollectionOption func(*collectionOptions)

type collectionOptions struct {
	defaultFamily string
	builtin       bool
}

func defaultCollectionOptions() collectionOptions {
	return collectionOptions{
		defaultFamily: DefaultFamily,
		builtin:       true,
	}
}

// WithDefaultFamily sets the family used when a requested family is empty
// or not registered.
func WithDefaultFamily(family string) CollectionOption {
	return func(o *collectionOptions) {
		o.defaultFamily = family
	}
}

// WithoutBuiltinFonts skips registration of the Go font families.
// The collection then only holds fonts added with Register or LoadFile.
func WithoutBuiltinFonts() CollectionOption {
	return func(o *collectionOptions) {
		o.builtin = false
	}
}
