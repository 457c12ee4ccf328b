package types

// Hints carries identity data the caller already knows, typically from
// the user's account. Parsers prefer hinted values over anything scanned
// from the document.
type Hints struct {
	Name  string
	Email string
}
