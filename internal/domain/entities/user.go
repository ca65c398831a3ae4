package entities

// User represents the authenticated practitioner as reported by the session
// verification endpoint. It lives only in memory for the lifetime of the
// process; the session itself is the cookie held by the HTTP client.
type User struct {
	Username string `json:"user"`
}
