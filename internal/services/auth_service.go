package services

import (
	"github.com/RaoulHolzer/cat-food-tracker/internal/myerrors"
	"github.com/RaoulHolzer/cat-food-tracker/internal/sessions"
)

// the app has exactly one account, so every session carries this id
const householdUserId = 1

type AuthService interface {
	Login(username, password string) (sessions.Session, error)
	Logout(token string) error
	Authenticate(token string) (sessions.Session, bool)
}

type DefaultAuthService struct {
	store    sessions.Store
	username string
	password string
}

func NewDefaultAuthService(store sessions.Store, username, password string) *DefaultAuthService {
	return &DefaultAuthService{
		store:    store,
		username: username,
		password: password,
	}
}

func (d *DefaultAuthService) Login(username, password string) (sessions.Session, error) {
	if username != d.username || password != d.password {
		return sessions.Session{}, myerrors.Unauthorized("Ungültiger Benutzername oder Passwort")
	}
	return d.store.Create(householdUserId, d.username)
}

func (d *DefaultAuthService) Logout(token string) error {
	if err := d.store.Delete(token); err != nil {
		return myerrors.Internal("Fehler beim Abmelden")
	}
	return nil
}

func (d *DefaultAuthService) Authenticate(token string) (sessions.Session, bool) {
	if token == "" {
		return sessions.Session{}, false
	}
	return d.store.Get(token)
}
