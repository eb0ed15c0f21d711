package model

import (
	"time"

	"gorm.io/gorm"
)

/*

User is a registered member of the network

Id: primary key, use to identify a user
CreatedAt: time when entity is created
UpdatedAt: time when entity is last updated
DeletedAt: time when entity is deleted

Email: unique login handle
PasswordHash: bcrypt digest of the login secret, never serialized
FirstName, LastName, Location, Occupation: display fields
PicturePath: profile picture filename under the static asset dir

ViewedProfile: how many distinct members viewed this profile
Impressions: how many times this member's content was shown

Friends: symmetric friendship, "many-to-many" self relation through
user_friends. The friend toggle keeps both directions in sync.

*/

type User struct {
	Id           string `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `json:"-"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	Location     string         `json:"location"`
	Occupation   string         `json:"occupation"`
	PicturePath  string         `json:"picturePath"`

	ViewedProfile int64 `json:"viewedProfile"`
	Impressions   int64 `json:"impressions"`

	Friends []*User `json:"friends,omitempty" gorm:"many2many:user_friends;joinForeignKey:UserID;joinReferences:FriendID"`
}
