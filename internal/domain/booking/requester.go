package booking

import (
	"coliving-payments/internal/domain/user"

	"github.com/google/uuid"
)

// Requester is the guest a booking is made for. UserID is set only when the
// request carried a valid access token.
type Requester struct {
	name   string
	email  string
	phone  string
	userID *uuid.UUID
}

func NewRequester(name, email, phone string, userID *uuid.UUID) (Requester, error) {
	n, err := user.NewName(name)
	if err != nil {
		return Requester{}, err
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return Requester{}, err
	}
	p, err := user.NewPhone(phone)
	if err != nil {
		return Requester{}, err
	}
	return Requester{name: n.Value(), email: e.Value(), phone: p.Value(), userID: userID}, nil
}

// RestoreRequester rebuilds a stored requester without re-validating it.
func RestoreRequester(name, email, phone string, userID *uuid.UUID) Requester {
	return Requester{name: name, email: email, phone: phone, userID: userID}
}

func (r Requester) Name() string       { return r.name }
func (r Requester) Email() string      { return r.email }
func (r Requester) Phone() string      { return r.phone }
func (r Requester) UserID() *uuid.UUID { return r.userID }
