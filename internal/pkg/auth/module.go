package auth

import "go.uber.org/fx"

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenSource),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

func newTokenSource() TokenSource {
	return NewRandomTokenSource()
}
