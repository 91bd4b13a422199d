package profiles

// Profile is a display profile keyed by numeric user id.
type Profile struct {
	ID    int64
	Name  string
	Email string
}
