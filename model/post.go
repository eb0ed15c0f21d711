package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*

Post is a piece of content published by a user

Id: primary key, use to identify a post
CreatedAt: time when entity is created
DeletedAt: time when entity is deleted

UserID: id of the authoring user. This is an advisory reference, not an
enforced foreign key; the users and posts tables stay independent.

FirstName, LastName, Location, UserPicturePath:
		author display fields copied from the User at creation time. These are
		a snapshot, never synced back when the author updates their profile.

Description: post text content
PicturePath: optional attached picture filename under the static asset dir

Likes: JSON object mapping user id -> true. Absence of a key means the user
has not liked the post. Toggling twice restores the original state.
Comments: JSON array of comment strings in append order.

Cursor: The auto-inc global-unique index to keep the relative order of posts

*/

type Post struct {
	Id        string `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `json:"-"`

	UserID          string `gorm:"index" json:"userId"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Location        string `json:"location"`
	UserPicturePath string `json:"userPicturePath"`

	Description string `json:"description"`
	PicturePath string `json:"picturePath"`

	Likes    datatypes.JSON `json:"likes"`
	Comments datatypes.JSON `json:"comments"`

	Cursor int32 `gorm:"autoIncrement" json:"-"`
}

// LikedBy decodes the Likes column into a set of user ids. An empty or unset
// column decodes to an empty set.
func (p *Post) LikedBy() (map[string]bool, error) {
	likes := map[string]bool{}
	if len(p.Likes) == 0 {
		return likes, nil
	}
	if err := json.Unmarshal(p.Likes, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

// SetLikedBy encodes the given set of user ids back into the Likes column.
func (p *Post) SetLikedBy(likes map[string]bool) error {
	raw, err := json.Marshal(likes)
	if err != nil {
		return err
	}
	p.Likes = datatypes.JSON(raw)
	return nil
}

// CommentList decodes the Comments column, oldest comment first.
func (p *Post) CommentList() ([]string, error) {
	comments := []string{}
	if len(p.Comments) == 0 {
		return comments, nil
	}
	if err := json.Unmarshal(p.Comments, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// SetCommentList encodes the given comments back into the Comments column.
func (p *Post) SetCommentList(comments []string) error {
	raw, err := json.Marshal(comments)
	if err != nil {
		return err
	}
	p.Comments = datatypes.JSON(raw)
	return nil
}
