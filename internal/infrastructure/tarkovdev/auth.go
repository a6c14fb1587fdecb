package tarkovdev

import "context"

// StaticTokenAuthenticator presents a pre-issued API token. tarkov.dev
// tokens do not expire, so Authenticate has nothing to refresh.
type StaticTokenAuthenticator struct {
	token string
}

func NewStaticTokenAuthenticator(token string) StaticTokenAuthenticator {
	return StaticTokenAuthenticator{token: token}
}

func (a StaticTokenAuthenticator) Authenticate(context.Context) error {
	return nil
}

func (a StaticTokenAuthenticator) BearerToken() string {
	return a.token
}
