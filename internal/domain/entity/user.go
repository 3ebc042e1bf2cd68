package entity

// User represents the authenticated user as returned by GET /auth/me/.
// Role is the raw API string; an empty value means no role was recorded.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	ShopID   *int64 `json:"shop,omitempty"`
}

// HasShop reports whether the user is associated with a shop.
func (u *User) HasShop() bool {
	return u != nil && u.ShopID != nil
}
