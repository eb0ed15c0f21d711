package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/socialpedia/backend/model"
	"github.com/socialpedia/backend/server/middlewares"
	"github.com/socialpedia/backend/utils"
	Logger "github.com/socialpedia/backend/utils/log"
	"gorm.io/gorm"
)

// GetUser returns a user's public profile. When a view store is configured,
// looking at someone else's profile bumps their view counter, once per
// distinct viewer.
func (a *API) GetUser(c *gin.Context) {
	id := c.Param("id")

	var user model.User
	res := a.DB.Where("id = ?", id).First(&user)
	if res.RowsAffected != 1 {
		abortNotFound(c, "user does not exist")
		return
	}

	a.countProfileView(c, &user)

	c.JSON(http.StatusOK, publicProfile(&user))
}

func (a *API) countProfileView(c *gin.Context, user *model.User) {
	if a.Views == nil {
		return
	}
	viewer := middlewares.ActingUser(c)
	if viewer == "" || viewer == user.Id {
		return
	}

	first, err := a.Views.MarkProfileViewed(viewer, user.Id)
	if err != nil {
		// View counting is best effort, a flaky redis must not fail the read.
		Logger.Log.Warn("fail to mark profile view: ", err)
		return
	}
	if !first {
		return
	}
	if err := a.DB.Model(user).UpdateColumn("viewed_profile", gorm.Expr("viewed_profile + 1")).Error; err != nil {
		Logger.Log.Warn("fail to bump profile view counter: ", err)
		return
	}
	user.ViewedProfile++
}

// GetFriends resolves the user's friend set into public profile summaries.
// A friend row whose user no longer resolves is skipped and logged instead of
// failing the whole call.
func (a *API) GetFriends(c *gin.Context) {
	id := c.Param("id")

	var user model.User
	res := a.DB.Where("id = ?", id).First(&user)
	if res.RowsAffected != 1 {
		abortNotFound(c, "user does not exist")
		return
	}

	c.JSON(http.StatusOK, a.friendProfiles(&user))
}

func (a *API) friendProfiles(user *model.User) []model.Profile {
	var links []model.UserFriend
	a.DB.Where("user_id = ?", user.Id).Order("created_at asc").Find(&links)

	profiles := []model.Profile{}
	for _, link := range links {
		var friend model.User
		res := a.DB.Where("id = ?", link.FriendID).First(&friend)
		if res.RowsAffected != 1 {
			Logger.Log.Warn("skipping dangling friend reference ", link.FriendID, " of user ", user.Id)
			continue
		}
		profiles = append(profiles, publicProfile(&friend))
	}
	return profiles
}

// ToggleFriend adds or removes a symmetric friendship between the acting user
// and :friendId. Both directions are written in one transaction so either both
// users see the change or neither does. Toggling twice is a no-op round trip.
func (a *API) ToggleFriend(c *gin.Context) {
	id := c.Param("id")
	friendId := c.Param("friendId")

	if acting := middlewares.ActingUser(c); acting != "" && acting != id {
		abortWithError(c, http.StatusBadRequest, utils.ErrorValidation, "path user does not match bearer identity")
		return
	}
	if id == friendId {
		abortWithError(c, http.StatusBadRequest, utils.ErrorSelfReference, "cannot befriend yourself")
		return
	}

	var user, friend model.User
	if res := a.DB.Where("id = ?", id).First(&user); res.RowsAffected != 1 {
		abortNotFound(c, "user does not exist")
		return
	}
	if res := a.DB.Where("id = ?", friendId).First(&friend); res.RowsAffected != 1 {
		abortNotFound(c, "friend does not exist")
		return
	}

	var link model.UserFriend
	isFriend := a.DB.Where("user_id = ? AND friend_id = ?", user.Id, friend.Id).First(&link).RowsAffected == 1

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		if isFriend {
			if err := tx.Model(&user).Association("Friends").Delete(&friend); err != nil {
				return err
			}
			return tx.Model(&friend).Association("Friends").Delete(&user)
		}
		if err := tx.Model(&user).Association("Friends").Append(&friend); err != nil {
			return err
		}
		return tx.Model(&friend).Association("Friends").Append(&user)
	})
	if err != nil {
		abortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, a.friendProfiles(&user))
}
