package httpx

import "context"

// StaticAuthenticator отдаёт заранее известный токен. Подходит для
// источников с долгоживущими ключами, где отдельного шага логина нет.
type StaticAuthenticator struct {
	token string
}

func NewStaticAuthenticator(token string) StaticAuthenticator {
	return StaticAuthenticator{token: token}
}

func (a StaticAuthenticator) Authenticate(context.Context) error {
	return nil
}

func (a StaticAuthenticator) BearerToken() string {
	return a.token
}
