package web

import (
	"encoding/json"
	"net/http"

	"github.com/yildizm/swdex/internal/logger"
	"github.com/yildizm/swdex/internal/navigation"
	"github.com/yildizm/swdex/internal/people"
	"github.com/yildizm/swdex/internal/session"
)

// ListResponse is the body of GET /list
type ListResponse struct {
	Status string          `json:"status"`
	Error  string          `json:"error,omitempty"`
	People []people.Record `json:"people"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleList reports the holder's status and records. 202 while the fetch
// is pending, 502 once it failed.
func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	status := s.holder.Status()

	resp := ListResponse{
		Status: status.String(),
		Error:  session.ErrorText(status),
		People: session.RecordsOf(status),
	}
	if resp.People == nil {
		resp.People = []people.Record{}
	}

	code := http.StatusOK
	switch status.(type) {
	case session.Idle, session.Loading:
		code = http.StatusAccepted
	case session.Failed:
		code = http.StatusBadGateway
	}

	writeJSON(w, code, resp)
}

// handleDetail returns the first record with the requested name. No match
// is not an error and yields 204.
func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	route, err := navigation.FromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	rec, ok := s.holder.Lookup(route.Person)
	if !ok {
		s.log.DebugWithFields("detail miss", []logger.Field{logger.F("name", route.Person)})
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
