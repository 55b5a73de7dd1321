package entity

// Actor is the authenticated identity attached to every engine operation.
// It is supplied by the external session layer; the engine performs no
// credential verification itself.
type Actor struct {
	ID      string `json:"id"`
	Email   string `json:"email,omitempty"`
	IsAdmin bool   `json:"is_admin"`
}

// Owns reports whether the actor is the owner of the given request.
func (a Actor) Owns(r *ExchangeRequest) bool {
	return a.ID != "" && a.ID == r.OwnerID
}
