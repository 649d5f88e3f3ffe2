package models

// Session proves that Account is authenticated on this device.
type Session struct {
	Token   string
	Account Account
}

// LoginInput carries login credentials. It is never persisted.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput carries registration data. It is never persisted.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}
