package domain

type User struct {
	ID       int64
	Username string
	// Password holds the bcrypt hash, never the plain text.
	Password string
}
