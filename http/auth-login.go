package http

import (
	"encoding/json"
	"net/http"

	"github.com/programme-lv/scoreboard/auth"
	"github.com/programme-lv/scoreboard/httpjson"
	"github.com/programme-lv/scoreboard/logger"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// authLogin issues an admin token. The single admin account comes from
// the environment as a username plus a bcrypt hash; standings are
// public and never need a token.
func (s *HttpServer) authLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	req := LoginRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteErrorJson(w, "invalid request body",
			http.StatusBadRequest, "invalid_request_body")
		return
	}

	if s.adminUsername == "" || req.Username != s.adminUsername {
		httpjson.HandleError(log, w, errInvalidCredentials())
		return
	}
	err := bcrypt.CompareHashAndPassword([]byte(s.adminBcryptHash), []byte(req.Password))
	if err != nil {
		httpjson.HandleError(log, w, errInvalidCredentials())
		return
	}

	token, err := auth.GenerateJWT(req.Username, []string{auth.ScopeAdmin}, s.jwtKey)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, LoginResponse{Token: token})
}
