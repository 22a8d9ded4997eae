package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Password always holds a bcrypt hash, never the plaintext credential,
// despite the column name the schema inherited.
type User struct {
	ID        int64
	Email     string
	Username  string
	Password  string
	Alamat    string
	NomorHP   string
	Disabled  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
