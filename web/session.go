package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
	"golang.org/x/oauth2"
)

const sessionName = "shiftcal"

// Session value keys. The token is stored as JSON because cookie sessions
// serialize values with gob and oauth2.Token round-trips more predictably
// as a flat string.
const (
	sessionKeyToken = "token"
	sessionKeyState = "state"
	sessionKeyFlash = "flash"
)

func (s *Server) session(r *http.Request) *sessions.Session {
	// An undecodable cookie yields a fresh session plus an error; the
	// fresh session is all we need.
	sess, _ := s.store.Get(r, sessionName)
	return sess
}

func tokenFromSession(sess *sessions.Session) *oauth2.Token {
	raw, ok := sess.Values[sessionKeyToken].(string)
	if !ok || raw == "" {
		return nil
	}
	var tok oauth2.Token
	if err := json.Unmarshal([]byte(raw), &tok); err != nil {
		return nil
	}
	return &tok
}

func saveToken(sess *sessions.Session, tok *oauth2.Token) {
	if tok == nil {
		delete(sess.Values, sessionKeyToken)
		return
	}
	raw, err := json.Marshal(tok)
	if err != nil {
		return
	}
	sess.Values[sessionKeyToken] = string(raw)
}
