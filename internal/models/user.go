package models

// UserDB represents a user record in the database
type UserDB struct {
	ID             int64   `json:"id" db:"id"`                           // Primary key
	Username       string  `json:"username" db:"username"`               // Unique username
	FirstName      string  `json:"first_name" db:"first_name"`           // First name
	LastName       *string `json:"last_name" db:"last_name"`             // Optional last name
	Email          string  `json:"email" db:"email"`                     // Unique email
	HashedPassword string  `json:"-" db:"hashed_password"`               // Argon2id password hash
	IsActive       bool    `json:"is_active" db:"is_active"`             // Active flag, inactive accounts cannot log in
}

// UserCreate carries the fields required to insert a user.
type UserCreate struct {
	Username       string
	FirstName      string
	LastName       *string
	Email          string
	HashedPassword string
}

// UserUpdate is a partial update: nil fields are left untouched,
// non-nil fields overwrite, including with empty strings.
type UserUpdate struct {
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	IsActive  *bool   `json:"is_active"`
}
