package domain

// StringPtr returns a pointer to a copy of s.
func StringPtr(s string) *string {
	return &s
}

// CopyStringPtr returns an independent copy of p, or nil.
func CopyStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// SameParent reports whether two parent references point at the same
// parent. Two nil references both mean root.
func SameParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// ParentKey flattens a parent reference into a map key; root is "".
func ParentKey(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// DerefOr returns *p, or fallback when p is nil.
func DerefOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
