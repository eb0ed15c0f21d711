package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/socialpedia/backend/model"
	"github.com/socialpedia/backend/utils"
	"github.com/stretchr/testify/require"
)

func TestGetUser(t *testing.T) {
	s := newTestServer(t)
	profile, bearer := registerAndLogin(t, s, "alice@example.com")

	w := s.do(t, "GET", "/users/"+profile.Id, bearer, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Profile
	decodeBody(t, w, &got)
	require.Equal(t, profile.Id, got.Id)
	require.Equal(t, "alice@example.com", got.Email)
	require.NotContains(t, w.Body.String(), "secret-password")
}

func TestGetUserNotFound(t *testing.T) {
	s := newTestServer(t)
	_, bearer := registerAndLogin(t, s, "alice@example.com")

	w := s.do(t, "GET", "/users/no-such-id", bearer, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileViewCounting(t *testing.T) {
	views, err := utils.GetProfileViewStore()
	require.Nil(t, err)

	s := newTestServerWithViews(t, views)
	alice, aliceBearer := registerAndLogin(t, s, "alice@example.com")
	_, bobBearer := registerAndLogin(t, s, "bob@example.com")

	viewAlice := func(bearer string) model.Profile {
		w := s.do(t, "GET", "/users/"+alice.Id, bearer, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var got model.Profile
		decodeBody(t, w, &got)
		return got
	}

	// Bob's first view counts.
	require.Equal(t, int64(1), viewAlice(bobBearer).ViewedProfile)

	// Repeat views by the same viewer do not.
	require.Equal(t, int64(1), viewAlice(bobBearer).ViewedProfile)

	// Neither does looking at your own profile.
	require.Equal(t, int64(1), viewAlice(aliceBearer).ViewedProfile)

	var stored model.User
	require.Equal(t, int64(1), s.db.Where("id = ?", alice.Id).First(&stored).RowsAffected)
	require.Equal(t, int64(1), stored.ViewedProfile)
}

func TestFriendToggleRoundTrip(t *testing.T) {
	s := newTestServer(t)
	alice, aliceBearer := registerAndLogin(t, s, "alice@example.com")
	bob, bobBearer := registerAndLogin(t, s, "bob@example.com")

	// First toggle: both sides gain the friendship.
	friends := toggleFriend(t, s, aliceBearer, alice.Id, bob.Id)
	require.True(t, utils.ContainsString(friendEmails(friends), "bob@example.com"))
	require.True(t, utils.ContainsString(friendEmails(getFriends(t, s, bobBearer, bob.Id)), "alice@example.com"))

	// Second toggle: idempotent round trip back to the original sets.
	friends = toggleFriend(t, s, aliceBearer, alice.Id, bob.Id)
	require.Empty(t, friends)
	require.Empty(t, getFriends(t, s, bobBearer, bob.Id))
}

func TestFriendToggleSelfReference(t *testing.T) {
	s := newTestServer(t)
	alice, bearer := registerAndLogin(t, s, "alice@example.com")

	w := s.do(t, "PATCH", fmt.Sprintf("/users/%s/%s", alice.Id, alice.Id), bearer, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "SELF_REFERENCE")
}

func TestFriendToggleUnknownTarget(t *testing.T) {
	s := newTestServer(t)
	alice, bearer := registerAndLogin(t, s, "alice@example.com")

	w := s.do(t, "PATCH", fmt.Sprintf("/users/%s/no-such-id", alice.Id), bearer, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestFriendToggleRequiresOwnPath(t *testing.T) {
	s := newTestServer(t)
	_, aliceBearer := registerAndLogin(t, s, "alice@example.com")
	bob, _ := registerAndLogin(t, s, "bob@example.com")
	carol, _ := registerAndLogin(t, s, "carol@example.com")

	// Alice cannot toggle a friendship on Bob's behalf.
	w := s.do(t, "PATCH", fmt.Sprintf("/users/%s/%s", bob.Id, carol.Id), aliceBearer, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetFriendsSkipsDanglingReference(t *testing.T) {
	s := newTestServer(t)
	alice, aliceBearer := registerAndLogin(t, s, "alice@example.com")
	bob, _ := registerAndLogin(t, s, "bob@example.com")

	toggleFriend(t, s, aliceBearer, alice.Id, bob.Id)

	// Hard-delete Bob behind the store's back, leaving Alice's friend row
	// dangling. The listing skips it instead of failing.
	require.Nil(t, s.db.Unscoped().Where("id = ?", bob.Id).Delete(&model.User{}).Error)

	require.Empty(t, getFriends(t, s, aliceBearer, alice.Id))
}
