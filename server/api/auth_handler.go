package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/socialpedia/backend/model"
	"github.com/socialpedia/backend/utils"
	Logger "github.com/socialpedia/backend/utils/log"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new user. The submitted password is bcrypt-hashed (salted,
// one way) before anything is persisted; the plaintext never leaves this
// handler and the hash never leaves the server.
func (a *API) Register(c *gin.Context) {
	var input model.RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		abortValidation(c, err)
		return
	}

	var existing model.User
	res := a.DB.Where("email = ?", input.Email).First(&existing)
	if res.RowsAffected == 1 {
		abortWithError(c, http.StatusConflict, utils.ErrorDuplicateIdentity, "email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		abortInternal(c, err)
		return
	}

	picturePath, err := a.savePicture(c)
	if err != nil {
		abortInternal(c, err)
		return
	}

	user := model.User{
		Id:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Location:     input.Location,
		Occupation:   input.Occupation,
		PicturePath:  picturePath,
		Friends:      []*model.User{},
	}
	if err := a.DB.Create(&user).Error; err != nil {
		// The unique index on email backstops the lookup above when two
		// registrations race; any other store failure is internal.
		if isUniqueViolation(err) {
			abortWithError(c, http.StatusConflict, utils.ErrorDuplicateIdentity, "email already registered")
			return
		}
		abortInternal(c, err)
		return
	}

	Logger.Log.Info("registered user ", user.Id)
	c.JSON(http.StatusCreated, publicProfile(&user))
}

// Login checks the submitted secret against the stored bcrypt hash and mints
// a bearer token on success. bcrypt's comparison is constant-time over the
// digest, so the check leaks no timing signal about the stored hash.
func (a *API) Login(c *gin.Context) {
	var input model.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		abortValidation(c, err)
		return
	}

	var user model.User
	res := a.DB.Where("email = ?", input.Email).First(&user)
	if res.RowsAffected != 1 {
		abortNotFound(c, "user does not exist")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		abortWithError(c, http.StatusUnauthorized, utils.ErrorInvalidCredential, "invalid credentials")
		return
	}

	raw, err := a.Tokens.Mint(user.Id)
	if err != nil {
		abortInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, model.AuthResponse{
		Token: raw,
		User:  publicProfile(&user),
	})
}
