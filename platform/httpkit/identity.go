// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity represents the authenticated user's identity.
// This interface abstracts identity extraction from the web framework,
// allowing handlers to access user information without depending on Gin.
type Identity interface {
	// UserID returns the authenticated user's ID.
	UserID() uuid.UUID
	// Name returns the user's display name.
	Name() string
	// PhoneNumber returns the user's own phone number.
	PhoneNumber() string
	// Email returns the user's email, or nil when none is registered.
	Email() *string
	// IsAuthenticated returns true if the user is authenticated.
	IsAuthenticated() bool
}

// identity is the concrete implementation of Identity.
type identity struct {
	userID        uuid.UUID
	name          string
	phoneNumber   string
	email         *string
	authenticated bool
}

func (i *identity) UserID() uuid.UUID { return i.userID }

func (i *identity) Name() string { return i.name }

func (i *identity) PhoneNumber() string { return i.phoneNumber }

func (i *identity) Email() *string { return i.email }

func (i *identity) IsAuthenticated() bool { return i.authenticated }

// SetIdentity stores the authenticated user's details on the Gin context.
// Called by the auth middleware after the token subject has been loaded.
func SetIdentity(c *gin.Context, userID uuid.UUID, name, phoneNumber string, email *string) {
	c.Set(ContextUserIDKey, userID)
	c.Set(ContextUserNameKey, name)
	c.Set(ContextUserPhoneKey, phoneNumber)
	if email != nil {
		c.Set(ContextUserEmailKey, *email)
	}
}

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if user info is not present.
func GetIdentity(c *gin.Context) Identity {
	userID, userOK := c.Get(ContextUserIDKey)
	if !userOK {
		return &identity{authenticated: false}
	}

	uid, ok := userID.(uuid.UUID)
	if !ok {
		return &identity{authenticated: false}
	}

	id := &identity{userID: uid, authenticated: true}
	if name, ok := c.Get(ContextUserNameKey); ok {
		id.name, _ = name.(string)
	}
	if phoneNumber, ok := c.Get(ContextUserPhoneKey); ok {
		id.phoneNumber, _ = phoneNumber.(string)
	}
	if email, ok := c.Get(ContextUserEmailKey); ok {
		if text, ok := email.(string); ok {
			id.email = &text
		}
	}

	return id
}

// MustGetIdentity extracts the Identity from a Gin context.
// If the user is not authenticated, it aborts with 401 Unauthorized and returns nil.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil
	}
	return id
}
