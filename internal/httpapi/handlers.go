package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/fika/internal/badges"
	"github.com/abhisek/fika/internal/progress"
	"github.com/abhisek/fika/internal/spacedrep"
)

type xpRequest struct {
	Amount int `json:"amount" validate:"gt=0"`
}

type completeRequest struct {
	Score int `json:"score" validate:"gte=0"`
	Total int `json:"total" validate:"gt=0"`
}

type wordRequest struct {
	Correct *bool `json:"correct" validate:"required"`
}

type sessionRequest struct {
	UserID string `json:"userId" validate:"required,max=128"`
}

type progressResponse struct {
	Progress progress.State `json:"progress"`
}

type completeResponse struct {
	Progress progress.State `json:"progress"`
	Percent  int            `json:"percent"`
}

type dueWordsResponse struct {
	Words []spacedrep.ReviewState `json:"words"`
}

type sessionResponse struct {
	Progress progress.State `json:"progress"`
	Synced   bool           `json:"synced"`
}

func (s *Server) getProgress(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, progressResponse{Progress: s.cache.Progress()})
}

func (s *Server) addXP(w http.ResponseWriter, r *http.Request) {
	var req xpRequest
	if !s.decode(w, r, &req) {
		return
	}
	st := s.cache.AddXP(r.Context(), req.Amount)
	writeJSON(w, http.StatusOK, progressResponse{Progress: st})
}

func (s *Server) incrementStreak(w http.ResponseWriter, r *http.Request) {
	st := s.cache.IncrementStreak(r.Context())
	writeJSON(w, http.StatusOK, progressResponse{Progress: st})
}

func (s *Server) completeTopic(w http.ResponseWriter, r *http.Request) {
	var req completeRequest
	if !s.decode(w, r, &req) {
		return
	}
	topicID := chi.URLParam(r, "topicID")
	st, err := s.cache.MarkTopicComplete(r.Context(), topicID, req.Score, req.Total)
	switch {
	case errors.Is(err, progress.ErrInvalidScore), errors.Is(err, progress.ErrInvalidTopic):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.log.Error("complete topic", "topic", topicID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, completeResponse{
		Progress: st,
		Percent:  progress.Percent(req.Score, req.Total),
	})
}

func (s *Server) recordWord(w http.ResponseWriter, r *http.Request) {
	var req wordRequest
	if !s.decode(w, r, &req) {
		return
	}
	st := s.cache.RecordWordAttempt(r.Context(), chi.URLParam(r, "word"), *req.Correct)
	writeJSON(w, http.StatusOK, progressResponse{Progress: st})
}

func (s *Server) dueWords(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	due := spacedrep.Due(s.cache.Progress(), s.clock(), limit)
	if due == nil {
		due = []spacedrep.ReviewState{}
	}
	writeJSON(w, http.StatusOK, dueWordsResponse{Words: due})
}

func (s *Server) signIn(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !s.decode(w, r, &req) {
		return
	}
	st, err := s.reconciler.LoadCloudProgress(r.Context(), req.UserID)
	if errors.Is(err, progress.ErrNoUser) {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}
	synced := err == nil
	if err != nil {
		s.log.Warn("reconcile on sign-in", "user", req.UserID, "error", err)
	}
	writeJSON(w, http.StatusOK, sessionResponse{Progress: st, Synced: synced})
}

func (s *Server) signOut(w http.ResponseWriter, r *http.Request) {
	st := s.cache.SetUserID(r.Context(), "")
	writeJSON(w, http.StatusOK, progressResponse{Progress: st})
}

func (s *Server) getBadges(w http.ResponseWriter, r *http.Request) {
	st, err := s.badges.Refresh(r.Context())
	if err != nil {
		s.log.Warn("badge refresh", "error", err)
	}
	if st.All == nil {
		st.All = []badges.WithStatus{}
	}
	// Background passes may already have surfaced this session's unlocks.
	st.NewlyUnlocked = s.badges.SessionUnlocked()
	if st.NewlyUnlocked == nil {
		st.NewlyUnlocked = []badges.WithStatus{}
	}
	writeJSON(w, http.StatusOK, st)
}
