package api

import (
	"github.com/jinzhu/copier"
	"github.com/socialpedia/backend/model"
	"github.com/socialpedia/backend/server/token"
	"github.com/socialpedia/backend/utils"
	"gorm.io/gorm"
)

// It serves as dependency injection for your app, add any dependencies you require here.

type API struct {
	DB     *gorm.DB
	Tokens *token.Service
	// Views is optional. When nil, profile view counting is disabled.
	Views    *utils.ProfileViewStore
	AssetDir string
}

func New(db *gorm.DB, tokens *token.Service, views *utils.ProfileViewStore, assetDir string) *API {
	return &API{
		DB:       db,
		Tokens:   tokens,
		Views:    views,
		AssetDir: assetDir,
	}
}

// publicProfile projects a User onto its public shape. Field-by-field copy via
// copier so new display fields flow through without touching this function;
// the password hash can never leak because Profile has no matching field.
func publicProfile(user *model.User) model.Profile {
	var profile model.Profile
	copier.Copy(&profile, user)
	return profile
}
