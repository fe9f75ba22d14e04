package console

import (
	"context"

	"github.com/marketbay/storefront/internal/client"
	"github.com/marketbay/storefront/internal/commerce/ports"
	"github.com/marketbay/storefront/internal/session"
	"github.com/marketbay/storefront/internal/validate"
)

// AuthView handles the login, registration and logout screens. It is the
// only view that writes to the session store, and it does so strictly
// after the backend call's outcome is known.
type AuthView struct {
	auth    ports.AuthService
	session *session.Store
	notify  Notifier
}

func NewAuthView(auth ports.AuthService, store *session.Store, notify Notifier) *AuthView {
	return &AuthView{auth: auth, session: store, notify: notify}
}

func (v *AuthView) Login(ctx context.Context, username, password string) bool {
	identity, err := v.auth.Login(ctx, ports.LoginInput{Username: username, Password: password})
	if err != nil {
		v.notify.Error(failureMessage(err, "Login failed. Please try again."))
		return false
	}
	v.session.Login(*identity)
	v.notify.Success("Login successful! Welcome back, " + identity.Username)
	return true
}

func (v *AuthView) Register(ctx context.Context, username, email, password, confirm string) bool {
	identity, err := v.auth.Register(ctx, ports.RegisterInput{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		v.notify.Error(failureMessage(err, "Registration failed"))
		return false
	}
	v.session.Login(*identity)
	v.notify.Success("Account created successfully!")
	return true
}

func (v *AuthView) Logout(ctx context.Context) {
	if err := v.auth.Signout(ctx); err != nil {
		v.notify.Error("Logout failed")
		return
	}
	v.session.Logout()
	v.notify.Success("Logged out successfully")
}

// failureMessage picks the user-facing text for a failed action: the
// validation message as-is, the server-provided message when the backend
// rejected the request, else the view's generic fallback (which also
// covers transport failures).
func failureMessage(err error, fallback string) string {
	if validate.IsValidation(err) {
		return err.Error()
	}
	return client.ServerMessage(err, fallback)
}
