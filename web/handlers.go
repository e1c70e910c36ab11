package web

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"golang.org/x/oauth2"

	"github.com/AdriaVH/makeCalendar/calendar"
	"github.com/AdriaVH/makeCalendar/reader"
	"github.com/AdriaVH/makeCalendar/schedule"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r)
	data := pageData{
		SignedIn: tokenFromSession(sess) != nil,
	}
	if msg, ok := sess.Values[sessionKeyFlash].(string); ok {
		data.Message = msg
		delete(sess.Values, sessionKeyFlash)
		if err := sess.Save(r, w); err != nil {
			s.logger.Warn("session save failed", "err", err)
		}
	}
	renderIndex(w, data)
}

func (s *Server) handleAuthStart(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r)
	state := uuid.NewString()
	sess.Values[sessionKeyState] = state
	if err := sess.Save(r, w); err != nil {
		s.logger.Error("session save failed", "err", err)
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}

	url := s.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))
	http.Redirect(w, r, url, http.StatusFound)
}

func (s *Server) handleAuthCallback(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r)

	want, _ := sess.Values[sessionKeyState].(string)
	delete(sess.Values, sessionKeyState)
	if want == "" || r.URL.Query().Get("state") != want {
		http.Error(w, "state mismatch", http.StatusBadRequest)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "missing authorization code", http.StatusBadRequest)
		return
	}

	tok, err := calendar.Exchange(r.Context(), s.oauth, code)
	if err != nil {
		s.logger.Error("code exchange failed", "err", err)
		http.Error(w, "authentication failed", http.StatusBadGateway)
		return
	}

	saveToken(sess, tok)
	if err := sess.Save(r, w); err != nil {
		s.logger.Error("session save failed", "err", err)
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := s.session(r)
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		s.logger.Warn("session save failed", "err", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	logger := s.logger.With("request_id", uuid.NewString())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, _, err := r.FormFile("roster")
	if err != nil {
		s.redirectFlash(w, r, "Please choose a PDF file to upload.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Warn("upload read failed", "err", err)
		s.redirectFlash(w, r, "The upload could not be read. Please try again.")
		return
	}

	doc, err := reader.Read(data)
	if err != nil {
		logger.Warn("pdf open failed", "err", err)
		s.redirectFlash(w, r, "That file does not look like a readable PDF.")
		return
	}

	loc := s.cfg.Parse.Location()
	shifts, err := schedule.ParseDocument(doc, s.regions, s.tuning, loc, logger)
	if err != nil {
		if errors.Is(err, schedule.ErrNoShifts) {
			s.redirectFlash(w, r, "No shifts were found in the document. Is this the right roster?")
			return
		}
		logger.Warn("roster parse failed", "err", err)
		s.redirectFlash(w, r, "The roster could not be parsed.")
		return
	}

	rec, sess, ok := s.reconcilerFromSession(w, r, logger)
	if !ok {
		return
	}

	result, err := rec.Reconcile(r.Context(), shifts, loc)
	if err != nil {
		logger.Error("reconciliation failed", "err", err)
		s.redirectFlash(w, r, "Google Calendar could not be reached. Nothing was changed.")
		return
	}

	logger.Info("upload processed",
		"shifts", len(shifts),
		"inserted", result.Inserted, "updated", result.Updated, "deleted", result.Deleted)
	s.flashAndSave(w, r, sess, fmt.Sprintf(
		"Synced %d shifts: %d added, %d updated, %d removed.",
		len(shifts), result.Inserted, result.Updated, result.Deleted))
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handlePurge(w http.ResponseWriter, r *http.Request) {
	logger := s.logger.With("request_id", uuid.NewString())

	rec, sess, ok := s.reconcilerFromSession(w, r, logger)
	if !ok {
		return
	}

	deleted, err := rec.Purge(r.Context())
	if err != nil {
		logger.Error("purge failed", "err", err)
		s.redirectFlash(w, r, "Google Calendar could not be reached. Nothing was changed.")
		return
	}

	logger.Info("purge processed", "deleted", deleted)
	s.flashAndSave(w, r, sess, fmt.Sprintf("Removed %d uploaded shifts.", deleted))
	http.Redirect(w, r, "/", http.StatusFound)
}

// reconcilerFromSession builds a Reconciler from the session credential. On
// any credential problem it redirects to the consent flow and reports
// not-ok.
func (s *Server) reconcilerFromSession(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*calendar.Reconciler, *sessions.Session, bool) {
	sess := s.session(r)
	tok := tokenFromSession(sess)

	client, ts, err := calendar.Client(r.Context(), s.oauth, tok)
	if err != nil {
		logger.Info("credential unusable, redirecting to consent", "err", err)
		http.Redirect(w, r, "/auth/google", http.StatusFound)
		return nil, nil, false
	}

	// Persist a refreshed token so the next request skips the refresh.
	if fresh, err := ts.Token(); err == nil && fresh.AccessToken != tok.AccessToken {
		saveToken(sess, fresh)
		if err := sess.Save(r, w); err != nil {
			logger.Warn("session save failed", "err", err)
		}
	}

	gw, err := s.newGateway(r.Context(), client)
	if err != nil {
		logger.Error("calendar service unavailable", "err", err)
		s.redirectFlash(w, r, "Google Calendar could not be reached. Nothing was changed.")
		return nil, nil, false
	}

	return calendar.NewReconciler(gw, logger), sess, true
}

func (s *Server) redirectFlash(w http.ResponseWriter, r *http.Request, msg string) {
	s.flashAndSave(w, r, s.session(r), msg)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) flashAndSave(w http.ResponseWriter, r *http.Request, sess *sessions.Session, msg string) {
	sess.Values[sessionKeyFlash] = msg
	if err := sess.Save(r, w); err != nil {
		s.logger.Warn("session save failed", "err", err)
	}
}
