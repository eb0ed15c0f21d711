package model

import "time"

// Profile is the public projection of a User. It carries everything a client
// may see about a member and nothing it may not: there is deliberately no
// password hash field, so a stored secret can never leak through this type.
type Profile struct {
	Id            string    `json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	Email         string    `json:"email"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Location      string    `json:"location"`
	Occupation    string    `json:"occupation"`
	PicturePath   string    `json:"picturePath"`
	ViewedProfile int64     `json:"viewedProfile"`
	Impressions   int64     `json:"impressions"`
}

// AuthResponse is the login payload: a bearer token plus the public profile
// of the authenticated user.
type AuthResponse struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}
