package entity

// Session is the single active authenticated user context on a device.
// The embedded user never carries a password hash.
type Session struct {
	User User `json:"user"`
}
