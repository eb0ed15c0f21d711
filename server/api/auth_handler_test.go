package api_test

import (
	"net/http"
	"testing"

	"github.com/socialpedia/backend/model"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterNeverStoresPlaintextSecret(t *testing.T) {
	s := newTestServer(t)

	profile := registerAndValidate(t, s, "alice@example.com", "plaintext-secret", "Alice", "Appleton")

	var stored model.User
	res := s.db.Where("id = ?", profile.Id).First(&stored)
	require.Equal(t, int64(1), res.RowsAffected)
	require.NotEqual(t, "plaintext-secret", stored.PasswordHash)
	require.Nil(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("plaintext-secret")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newTestServer(t)

	registerAndValidate(t, s, "alice@example.com", "plaintext-secret", "Alice", "Appleton")

	w := s.do(t, "POST", "/auth/register", "", model.RegisterInput{
		FirstName: "Other",
		LastName:  "Alice",
		Email:     "alice@example.com",
		Password:  "another-secret",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "DUPLICATE_IDENTITY")
}

func TestRegisterStoreFailureIsInternal(t *testing.T) {
	s := newTestServer(t)

	// A store failure that is not a duplicate email must surface as 500, not
	// be misread as a conflict.
	require.Nil(t, s.db.Migrator().DropTable(&model.User{}))

	w := s.do(t, "POST", "/auth/register", "", model.RegisterInput{
		FirstName: "Alice",
		LastName:  "Appleton",
		Email:     "alice@example.com",
		Password:  "plaintext-secret",
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}

func TestRegisterMissingFields(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, "POST", "/auth/register", "", model.RegisterInput{
		FirstName: "Alice",
		Email:     "alice@example.com",
		// no last name, no password
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestRegisterRejectsMalformedEmail(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, "POST", "/auth/register", "", model.RegisterInput{
		FirstName: "Alice",
		LastName:  "Appleton",
		Email:     "not-an-email",
		Password:  "plaintext-secret",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterWithPicture(t *testing.T) {
	s := newTestServer(t)

	w := s.postForm(t, "/auth/register", "", map[string]string{
		"firstName": "Alice",
		"lastName":  "Appleton",
		"email":     "alice@example.com",
		"password":  "plaintext-secret",
	}, "picture", "avatar.jpg", []byte("fake image bytes"))
	require.Equal(t, http.StatusCreated, w.Code)

	var profile model.Profile
	decodeBody(t, w, &profile)
	require.Equal(t, "avatar.jpg", profile.PicturePath)
}

func TestLoginRoundTrip(t *testing.T) {
	s := newTestServer(t)

	profile := registerAndValidate(t, s, "alice@example.com", "plaintext-secret", "Alice", "Appleton")
	loginAndValidate(t, s, "alice@example.com", "plaintext-secret", profile.Id)
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestServer(t)

	registerAndValidate(t, s, "alice@example.com", "plaintext-secret", "Alice", "Appleton")

	w := s.do(t, "POST", "/auth/login", "", model.LoginInput{Email: "alice@example.com", Password: "wrong-secret"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "INVALID_CREDENTIAL")
}

func TestLoginUnknownUser(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, "POST", "/auth/login", "", model.LoginInput{Email: "nobody@example.com", Password: "whatever"})
	require.Equal(t, http.StatusNotFound, w.Code)
}
