package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hsc-elite/progress-hub/internal/application/command"
	"github.com/hsc-elite/progress-hub/internal/application/query"
	"github.com/hsc-elite/progress-hub/internal/domain/curriculum"
	"github.com/hsc-elite/progress-hub/internal/domain/profile"
)

// ══════════════════════════════════════════════════════════════════════════════
// AUTH HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	res, err := s.deps.SignUp.Handle(r.Context(), command.SignUpCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s.profileView(res.Profile))
}

func (s *Server) handleLogIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	res, err := s.deps.LogIn.Handle(r.Context(), command.LogInCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"profile":     s.profileView(res.Profile),
		"from_mirror": res.FromMirror,
	})
}

func (s *Server) handleLogOut(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.LogOut.Handle(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// session resolves the active session username, or writes a 401.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (profile.Username, bool) {
	username, err := s.deps.Store.Session(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(envelope{OK: false, Error: &apiError{
			Code:    "no_session",
			Message: "log in first",
		}})
		return "", false
	}
	return username, true
}

// ══════════════════════════════════════════════════════════════════════════════
// PROFILE & PROGRESS HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	username, ok := s.session(w, r)
	if !ok {
		return
	}

	dto, err := s.deps.GetProfile.Handle(r.Context(), query.GetProfileQuery{Username: username.String()})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	username, ok := s.session(w, r)
	if !ok {
		return
	}

	res, err := s.deps.GetStats.Handle(r.Context(), query.GetStatsQuery{
		Username: username.String(),
		Subject:  r.URL.Query().Get("subject"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.GetLevels.Handle(r.Context()))
}

type toggleTopicRequest struct {
	Subject string `json:"subject"`
	Chapter string `json:"chapter"`
	Topic   string `json:"topic"`
}

func (s *Server) handleToggleTopic(w http.ResponseWriter, r *http.Request) {
	username, ok := s.session(w, r)
	if !ok {
		return
	}

	var req toggleTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}
	if req.Subject == "" || req.Chapter == "" || req.Topic == "" {
		writeBadRequest(w, "subject, chapter and topic are required")
		return
	}

	res, err := s.deps.ToggleProgress.HandleTopic(r.Context(), command.ToggleTopicCommand{
		Username: username.String(),
		Subject:  req.Subject,
		Chapter:  req.Chapter,
		Topic:    req.Topic,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.toggleView(res))
}

type toggleMilestoneRequest struct {
	Subject   string `json:"subject"`
	Chapter   string `json:"chapter"`
	Milestone string `json:"milestone"`
}

func (s *Server) handleToggleMilestone(w http.ResponseWriter, r *http.Request) {
	username, ok := s.session(w, r)
	if !ok {
		return
	}

	var req toggleMilestoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}
	if req.Subject == "" || req.Chapter == "" || req.Milestone == "" {
		writeBadRequest(w, "subject, chapter and milestone are required")
		return
	}

	res, err := s.deps.ToggleProgress.HandleMilestone(r.Context(), command.ToggleMilestoneCommand{
		Username:  username.String(),
		Subject:   req.Subject,
		Chapter:   req.Chapter,
		Milestone: curriculum.MilestoneType(req.Milestone),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.toggleView(res))
}

// ══════════════════════════════════════════════════════════════════════════════
// SHARE & SOCIAL HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	username, ok := s.session(w, r)
	if !ok {
		return
	}

	res, err := s.deps.GetShareLink.Handle(r.Context(), query.GetShareLinkQuery{
		Username: username.String(),
		BaseURL:  s.config.ShareBaseURL,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type tokenRequest struct {
	Token string `json:"token"`
}

func (s *Server) handleFollow(w http.ResponseWriter, r *http.Request) {
	username, ok := s.session(w, r)
	if !ok {
		return
	}

	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	res, err := s.deps.FollowPeer.Handle(r.Context(), command.FollowPeerCommand{
		Username: username.String(),
		Token:    req.Token,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"peer":      res.Peer.String(),
		"refreshed": res.Refreshed,
	})
}

func (s *Server) handleRestore(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	res, err := s.deps.RestoreProfile.Handle(r.Context(), command.RestoreProfileCommand{Token: req.Token})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.profileView(res.Profile))
}

type linkRequest struct {
	Link string `json:"link"`
}

func (s *Server) handleShareLink(w http.ResponseWriter, r *http.Request) {
	var req linkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	res, err := s.deps.ProcessShareLink.Handle(r.Context(), command.ProcessShareLinkCommand{Link: req.Link})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	username, ok := s.session(w, r)
	if !ok {
		return
	}

	res, err := s.deps.GetPeerBoard.Handle(r.Context(), query.GetPeerBoardQuery{Username: username.String()})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handlePeerProfile(w http.ResponseWriter, r *http.Request) {
	username, ok := s.session(w, r)
	if !ok {
		return
	}

	res, err := s.deps.GetPeerProfile.Handle(r.Context(), query.GetPeerProfileQuery{
		Username: username.String(),
		Peer:     chi.URLParam(r, "username"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ══════════════════════════════════════════════════════════════════════════════
// EXPLAIN & HEALTH HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := s.deps.ExplainTopic.Handle(r.Context(), query.ExplainTopicQuery{
		Subject: q.Get("subject"),
		Chapter: q.Get("chapter"),
		Topic:   q.Get("topic"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]interface{}{"status": "ok"}
	if s.deps.Syncer != nil {
		body["cloud"] = s.deps.Syncer.Probe(r.Context())
	}
	writeJSON(w, http.StatusOK, body)
}

// ──────────────────────────────────────────────────────────────────────────────
// VIEW HELPERS
// ──────────────────────────────────────────────────────────────────────────────

// profileView renders a full owned profile without the password.
func (s *Server) profileView(p *profile.Profile) map[string]interface{} {
	return map[string]interface{}{
		"username":       p.Username.String(),
		"xp":             p.XP,
		"progress":       p.Progress,
		"last_active":    p.LastActive,
		"followed_count": len(p.FollowedUsers),
	}
}

func (s *Server) toggleView(res *command.ToggleResult) map[string]interface{} {
	return map[string]interface{}{
		"done":       res.Done,
		"old_xp":     res.OldXP,
		"new_xp":     res.NewXP,
		"leveled_up": res.LeveledUp,
		"level":      res.Level,
	}
}
