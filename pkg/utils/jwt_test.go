package utils

import (
	"testing"

	"github.com/nourishnet/ordering-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := CreateSessionToken(42, "Jane Wanjiku", "01J0ABCDEFGHJKMNPQRSTVWXYZ", testSecret)
	require.NoError(t, err)

	userID, err := ParseSessionToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	token, err := CreateSessionToken(42, "Jane Wanjiku", "01J0ABCDEFGHJKMNPQRSTVWXYZ", testSecret)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "other-secret")
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
}

func TestParseSessionTokenGarbage(t *testing.T) {
	_, err := ParseSessionToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
}

func TestRefreshSessionToken(t *testing.T) {
	token, err := CreateSessionToken(42, "Jane Wanjiku", "01J0ABCDEFGHJKMNPQRSTVWXYZ", testSecret)
	require.NoError(t, err)

	refreshed, err := RefreshSessionToken(token, testSecret)
	require.NoError(t, err)

	userID, err := ParseSessionToken(refreshed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestRefreshSessionTokenInvalid(t *testing.T) {
	_, err := RefreshSessionToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
}
