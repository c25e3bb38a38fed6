package entities

import "time"

// User is the current operator as seen by the rest of the application:
// just the identity fields carried through the request context.
type User struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// Account is the persisted operator record behind the identity module.
//
// Storage model (DynamoDB):
//   - PK: uid
//   - GSI1 (email-index): email
type Account struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
