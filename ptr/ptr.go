package ptr

func Ptr[T any](v T) *T {
	return &v
}

func String(s string) *string {
	return &s
}

// NonEmpty is String, except the empty string becomes nil so it drops out
// of omitempty JSON.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Value dereferences p, giving the zero value for nil.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
