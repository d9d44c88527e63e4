package http

import (
	"net/http"

	"github.com/programme-lv/scoreboard/auth"
	"github.com/programme-lv/scoreboard/httpjson"
	"github.com/programme-lv/scoreboard/logger"
	"github.com/programme-lv/scoreboard/srvcerror"
)

type ReloadResponse struct {
	SnapshotID string `json:"snapshot_id"`
}

func (s *HttpServer) reloadFeed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	claims := auth.ClaimsFromContext(r.Context())
	if !claims.HasScope(auth.ScopeAdmin) {
		httpjson.HandleError(log, w, errUnauthorized())
		return
	}

	snapshotID, err := s.Reload(r.Context())
	if err != nil {
		httpjson.HandleError(log, w,
			srvcerror.ErrInternalSE().SetDebug(err))
		return
	}

	log.Info("contest feed reloaded", "snapshot_id", snapshotID)
	httpjson.WriteSuccessJson(w, ReloadResponse{SnapshotID: snapshotID})
}
