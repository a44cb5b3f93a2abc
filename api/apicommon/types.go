package apicommon

import (
	"time"

	"github.com/bishnupur-union/society-backend/db"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberInfo is the request to register a new member.
type MemberInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// LoginRequest is the request to authenticate a member.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the response of the login and refresh endpoints.
type LoginResponse struct {
	Token    string    `json:"token"`
	Expirity time.Time `json:"expirity"`
}

// MemberCreatedResponse is the response of the member registration endpoint.
type MemberCreatedResponse struct {
	ID uint64 `json:"id"`
}

// ContentCreatedResponse is the response of the content creation endpoints.
type ContentCreatedResponse struct {
	ID primitive.ObjectID `json:"id"`
}

// UpdateRoleRequest is the request to change a member role.
type UpdateRoleRequest struct {
	Role db.MemberRole `json:"role"`
}

// UpdateStatusRequest is the request to change a registration workflow state.
type UpdateStatusRequest struct {
	Status db.RegistrationStatus `json:"status"`
}

// MigrationResponse is the response of the committee bulk migration endpoint.
type MigrationResponse struct {
	Migrated int `json:"migrated"`
}

// ContactRequest is a contact form submission relayed to the association
// inbox.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// DonationCheckoutRequest is the request to start a donation checkout
// session. Amount is expressed in the smallest currency unit.
type DonationCheckoutRequest struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Amount int64  `json:"amount"`
}

// DonationCheckoutResponse carries the hosted checkout session the client
// must redirect to.
type DonationCheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}
