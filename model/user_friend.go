package model

import (
	"time"
)

/*

UserFriend is a "many-to-many" relation of a user befriending another user

UserID: user id
FriendID: friend's user id
CreatedAt: time when relation is created

Rows are written in pairs (A->B and B->A) inside one transaction so the
relation stays symmetric. Unfriending hard-deletes both rows, which keeps a
later re-friend from colliding on the composite primary key.

*/

type UserFriend struct {
	UserID    string `gorm:"primaryKey"`
	FriendID  string `gorm:"primaryKey"`
	CreatedAt time.Time
}
