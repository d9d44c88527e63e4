package http

import (
	"net/http"

	"github.com/programme-lv/scoreboard/srvcerror"
)

const ErrCodeContestNotLoaded = "contest_not_loaded"

func errContestNotLoaded() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeContestNotLoaded,
		"no contest feed has been loaded yet",
	).SetHttpStatusCode(http.StatusServiceUnavailable)
}

const ErrCodeGroupNotFound = "group_not_found"

func errGroupNotFound(groupID string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeGroupNotFound,
		"unknown team group: "+groupID,
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeInvalidWidth = "invalid_replay_width"

func errInvalidWidth() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidWidth,
		"replay width must be an integer between 0 and 10000",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidCredentials = "invalid_credentials"

func errInvalidCredentials() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidCredentials,
		"username or password is incorrect",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeUnauthorized = "unauthorized"

func errUnauthorized() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnauthorized,
		"admin scope required",
	).SetHttpStatusCode(http.StatusForbidden)
}
