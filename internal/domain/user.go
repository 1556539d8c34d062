package domain

import "time"

// User identity. The id is the OIDC subject for provider-issued users or a
// "local-" prefixed id fabricated by the client SDK's local sign-in mode.
type User struct {
	ID              string    `db:"id" json:"id"`
	Email           string    `db:"email" json:"email"`
	FirstName       *string   `db:"first_name" json:"firstName"`
	LastName        *string   `db:"last_name" json:"lastName"`
	ProfileImageURL *string   `db:"profile_image_url" json:"profileImageUrl"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// LocalUserIDPrefix marks identities fabricated by local sign-in, which the
// server never verifies.
const LocalUserIDPrefix = "local-"
