package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/socialpedia/backend/model"
	"github.com/socialpedia/backend/server/middlewares"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errPostMissing = errors.New("post does not exist")

// CreatePost publishes a new post as the acting user. The author's current
// display name and picture are copied onto the post as an immutable snapshot;
// later profile edits do not rewrite old posts. The response is the entire
// refreshed feed, newest first, which is the contract clients rely on.
func (a *API) CreatePost(c *gin.Context) {
	var input model.CreatePostInput
	if err := c.ShouldBind(&input); err != nil {
		abortValidation(c, err)
		return
	}

	// Re-resolve the acting user: a token can outlive its account.
	var author model.User
	res := a.DB.Where("id = ?", middlewares.ActingUser(c)).First(&author)
	if res.RowsAffected != 1 {
		abortNotFound(c, "user does not exist")
		return
	}

	picturePath, err := a.savePicture(c)
	if err != nil {
		abortInternal(c, err)
		return
	}

	post := model.Post{
		Id:              uuid.New().String(),
		UserID:          author.Id,
		FirstName:       author.FirstName,
		LastName:        author.LastName,
		Location:        author.Location,
		UserPicturePath: author.PicturePath,
		Description:     input.Description,
		PicturePath:     picturePath,
	}
	if err := post.SetLikedBy(map[string]bool{}); err != nil {
		abortInternal(c, err)
		return
	}
	if err := post.SetCommentList([]string{}); err != nil {
		abortInternal(c, err)
		return
	}
	if err := a.DB.Create(&post).Error; err != nil {
		abortInternal(c, err)
		return
	}

	posts := []model.Post{}
	if err := a.DB.Order("cursor desc").Find(&posts).Error; err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusCreated, posts)
}

// GetFeedPosts returns every post, most recent first. An empty feed renders
// as an empty array, never null.
func (a *API) GetFeedPosts(c *gin.Context) {
	posts := []model.Post{}
	if err := a.DB.Order("cursor desc").Find(&posts).Error; err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetUserPosts returns the posts authored by :userId, most recent first.
func (a *API) GetUserPosts(c *gin.Context) {
	posts := []model.Post{}
	if err := a.DB.Where("user_id = ?", c.Param("userId")).Order("cursor desc").Find(&posts).Error; err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// LikePost toggles the acting user's like on a post. Liking twice removes the
// like. The read-modify-write of the likes column runs under a row lock so two
// concurrent toggles cannot drop each other's update.
func (a *API) LikePost(c *gin.Context) {
	acting := middlewares.ActingUser(c)

	var post model.Post
	err := a.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", c.Param("id")).First(&post)
		if res.RowsAffected != 1 {
			return errPostMissing
		}

		likes, err := post.LikedBy()
		if err != nil {
			return err
		}
		if likes[acting] {
			delete(likes, acting)
		} else {
			likes[acting] = true
		}
		if err := post.SetLikedBy(likes); err != nil {
			return err
		}
		return tx.Model(&post).UpdateColumn("likes", post.Likes).Error
	})
	if errors.Is(err, errPostMissing) {
		abortNotFound(c, "post does not exist")
		return
	}
	if err != nil {
		abortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// CommentPost appends a comment to a post. Comments keep append order.
func (a *API) CommentPost(c *gin.Context) {
	var input model.CommentInput
	if err := c.ShouldBind(&input); err != nil {
		abortValidation(c, err)
		return
	}

	var post model.Post
	err := a.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", c.Param("id")).First(&post)
		if res.RowsAffected != 1 {
			return errPostMissing
		}

		comments, err := post.CommentList()
		if err != nil {
			return err
		}
		if err := post.SetCommentList(append(comments, input.Comment)); err != nil {
			return err
		}
		return tx.Model(&post).UpdateColumn("comments", post.Comments).Error
	})
	if errors.Is(err, errPostMissing) {
		abortNotFound(c, "post does not exist")
		return
	}
	if err != nil {
		abortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
