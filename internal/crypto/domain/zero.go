package domain

// Zero securely overwrites a byte slice with zeros to clear sensitive data from memory.
// Key material decoded for a single call is wiped with Zero before the handler returns.
func Zero(b []byte) {
	clear(b)
}

