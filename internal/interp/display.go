package interp

// Display renders v in the form `print` and other user-visible output use:
// nil/true/false, a shortest round-trip number, the raw string, or an
// opaque stable handle tag. Each Value variant's own String() already
// produces this form; Display is the named entry point callers are
// expected to use, so the display-form mapping lives in one place.
func Display(v Value) string {
	return v.String()
}
