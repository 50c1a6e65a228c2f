package models

// Identity is the authenticated user as reported by the identity provider.
type Identity struct {
	UserID string
	Email  string
}

// Session is either anonymous or carries an Identity.
type Session struct {
	identity *Identity
}

func Anonymous() Session {
	return Session{}
}

func Authenticated(id Identity) Session {
	return Session{identity: &id}
}

// Identity returns the signed-in user and false for anonymous sessions.
func (s Session) Identity() (Identity, bool) {
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

func (s Session) IsAuthenticated() bool {
	return s.identity != nil
}
