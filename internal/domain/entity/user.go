package entity

import "time"

// User is an operator account. Password holds the legacy plaintext value for
// rows created before hashing was introduced; it is cleared once the row has
// been upgraded to a bcrypt hash.
type User struct {
	ID           uint
	Username     string
	Password     string
	PasswordHash string
	AccessLevel  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
