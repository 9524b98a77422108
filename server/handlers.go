package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/trace"
)

// maxBody bounds request bodies; a 256-row layout fits comfortably.
const maxBody = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	rn, err := req.prepare(s.maxSize)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	var rec trace.Recorder
	out, err := engine.RunSearch(r.Context(), rn.strategy, rn.g, rn.start, rn.end, &rec, rn.opts...)
	resp := Response{Outcome: out, Events: rec.Events()}
	if resp.Events == nil {
		resp.Events = []trace.Event{}
	}
	code := http.StatusOK
	if err != nil {
		resp.Error = err.Error()
		code = faultStatus(err)
	}
	s.entry(r, rn, out, start).Info("search")
	writeJSON(w, code, resp)
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	var req Request
	if err := conn.ReadJSON(&req); err != nil {
		s.closeWith(conn, websocket.CloseUnsupportedData, err)
		return
	}
	rn, err := req.prepare(s.maxSize)
	if err != nil {
		_ = conn.WriteJSON(Final{Error: err.Error()})
		s.closeWith(conn, websocket.ClosePolicyViolation, err)
		return
	}

	started := time.Now()
	st, err := engine.NewStepper(r.Context(), rn.strategy, rn.g, rn.start, rn.end, rn.opts...)
	if err != nil {
		_ = conn.WriteJSON(Final{Error: err.Error()})
		s.closeWith(conn, websocket.CloseInternalServerErr, err)
		return
	}
	defer st.Close()

	var runErr error
	for {
		ev, ok, err := st.Next()
		if err != nil {
			runErr = err
			break
		}
		if !ok {
			break
		}
		if err := conn.WriteJSON(ev); err != nil {
			s.log.WithError(err).Warn("websocket write failed")
			return
		}
		if s.delay > 0 {
			select {
			case <-time.After(s.delay):
			case <-r.Context().Done():
				return
			}
		}
	}

	final := Final{Outcome: st.Outcome()}
	if runErr != nil {
		final.Error = runErr.Error()
	}
	s.entry(r, rn, final.Outcome, started).Info("stream")
	if err := conn.WriteJSON(final); err != nil {
		return
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
}

func (s *Server) entry(r *http.Request, rn *run, out engine.Outcome, started time.Time) *logrus.Entry {
	return s.log.WithFields(logrus.Fields{
		"path":     r.URL.Path,
		"strategy": rn.strategy.String(),
		"size":     rn.g.Size(),
		"kind":     out.Kind.String(),
		"replans":  out.Replans,
		"elapsed":  time.Since(started).String(),
	})
}

func (s *Server) fail(w http.ResponseWriter, code int, err error) {
	s.log.WithError(err).WithField("code", code).Warn("request rejected")
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func (s *Server) closeWith(conn *websocket.Conn, code int, err error) {
	s.log.WithError(err).Warn("stream rejected")
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, err.Error()))
}

// faultStatus maps engine faults to HTTP status codes.
func faultStatus(err error) int {
	switch {
	case errors.Is(err, grid.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, engine.ErrUnknownStrategy):
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
