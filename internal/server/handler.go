package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/Decentr-net/quill/internal/entities"
	"github.com/Decentr-net/quill/internal/ledger"
	"github.com/Decentr-net/quill/internal/resolver"
)

var errInvalidRequest = errors.New("invalid request")

type pageParams struct {
	limit  int
	cursor string
}

func extractPageParamsFromQuery(q url.Values) (pageParams, error) {
	out := pageParams{
		limit:  defaultLimit,
		cursor: q.Get("cursor"),
	}

	if s := q.Get("limit"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return pageParams{}, fmt.Errorf("%w: failed to parse limit", errInvalidRequest)
		}

		if v == 0 {
			return pageParams{}, fmt.Errorf("%w: limit should be positive", errInvalidRequest)
		}

		if v > maxLimit {
			return pageParams{}, fmt.Errorf("%w: limit is too big", errInvalidRequest)
		}

		out.limit = int(v)
	}

	return out, nil
}

// writeReadError writes error of reading operation; client errors are reported with 400.
func writeReadError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, ledger.ErrInvalidCursor) || errors.Is(err, resolver.ErrInvalidLimit) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeInternalErrorf(r.Context(), w, "failed to %s: %s", op, err.Error())
}

type worksPageFunc func(r *http.Request, p pageParams) (*entities.Page[entities.WorkWithAuthor], error)

func (s server) worksPage(op string, f worksPageFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := extractPageParamsFromQuery(r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		page, err := f(r, p)
		if err != nil {
			writeReadError(w, r, op, err)
			return
		}

		writeOK(w, http.StatusOK, toAPIWorksPage(page))
	}
}

func (s server) listWorks(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /works Works ListWorks
	//
	// Returns the latest works with their authors.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: limit
	//   description: limits count of scanned records
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// - name: cursor
	//   description: continues listing from the cursor of the previous page
	//   in: query
	//   required: false
	// responses:
	//   '200':
	//     description: Works
	//     schema:
	//       "$ref": "#/definitions/WorksPage"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.worksPage("list works", func(r *http.Request, p pageParams) (*entities.Page[entities.WorkWithAuthor], error) {
		return s.s.GetLatestWorks(r.Context(), p.limit, p.cursor)
	})(w, r)
}

func (s server) listWorksTop(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /works/top Works ListWorksTop
	//
	// Returns works of the page ordered by like count.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Works
	//     schema:
	//       "$ref": "#/definitions/WorksPage"

	s.worksPage("list top works", func(r *http.Request, p pageParams) (*entities.Page[entities.WorkWithAuthor], error) {
		return s.s.GetWorksTop(r.Context(), p.limit, p.cursor)
	})(w, r)
}

func (s server) listAuthorWorks(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /authors/{id}/works Works ListAuthorWorks
	//
	// Returns works of the author. Works are ordered by like count when sortBy=likes.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: sortBy
	//   in: query
	//   required: false
	//   type: string
	//   enum: [createdAt, likes]
	// responses:
	//   '200':
	//     description: Works
	//     schema:
	//       "$ref": "#/definitions/WorksPage"

	id := chi.URLParam(r, "id")

	var f worksPageFunc
	switch r.URL.Query().Get("sortBy") {
	case "", "createdAt":
		f = func(r *http.Request, p pageParams) (*entities.Page[entities.WorkWithAuthor], error) {
			return s.s.GetAuthorWorks(r.Context(), id, p.limit, p.cursor)
		}
	case "likes":
		f = func(r *http.Request, p pageParams) (*entities.Page[entities.WorkWithAuthor], error) {
			return s.s.GetAuthorWorksTop(r.Context(), id, p.limit, p.cursor)
		}
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%s: invalid sortBy", errInvalidRequest))
		return
	}

	s.worksPage("list author works", f)(w, r)
}

func (s server) listFeed(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /profiles/{id}/feed Works ListFeed
	//
	// Returns works of authors followed by the profile.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Works
	//     schema:
	//       "$ref": "#/definitions/WorksPage"

	id := chi.URLParam(r, "id")

	s.worksPage("list feed", func(r *http.Request, p pageParams) (*entities.Page[entities.WorkWithAuthor], error) {
		return s.s.GetWorksByAllFollowed(r.Context(), id, p.limit, p.cursor)
	})(w, r)
}

func (s server) listTopicWorks(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.worksPage("list topic works", func(r *http.Request, p pageParams) (*entities.Page[entities.WorkWithAuthor], error) {
		return s.s.GetWorksByTopic(r.Context(), id, p.limit, p.cursor)
	})(w, r)
}

func (s server) getWork(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /works/{id} Works GetWork
	//
	// Get current version of the work by id of any of its records.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Work
	//     schema:
	//       "$ref": "#/definitions/Work"
	//   '404':
	//     description: work not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	work, err := s.s.GetWork(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get work: %s", err.Error())
		return
	}

	if work == nil {
		writeError(w, http.StatusNotFound, "work not found")
		return
	}

	writeOK(w, http.StatusOK, toAPIWork(*work))
}

func (s server) getWorkLikes(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /works/{id}/likes Works GetWorkLikes
	//
	// Returns count of like records of the work.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: likedBy
	//   in: query
	//   description: adds liked flag to response
	//   required: false
	// responses:
	//   '200':
	//     description: Likes
	//     schema:
	//       "$ref": "#/definitions/Likes"

	id := chi.URLParam(r, "id")

	count, err := s.s.GetWorkLikeCount(r.Context(), id)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get like count: %s", err.Error())
		return
	}

	resp := Likes{Count: count}

	if likedBy := r.URL.Query().Get("likedBy"); likedBy != "" {
		liked, err := s.s.HasLiked(r.Context(), id, likedBy)
		if err != nil {
			writeInternalErrorf(r.Context(), w, "failed to get like: %s", err.Error())
			return
		}

		resp.Liked = &liked
	}

	writeOK(w, http.StatusOK, resp)
}

func (s server) listWorkLikers(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /works/{id}/likers Works ListWorkLikers
	//
	// Returns current likes of the work ordered by like time.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: limit
	//   description: limits count of scanned records
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// - name: cursor
	//   description: continues listing from the cursor of the previous page
	//   in: query
	//   required: false
	// responses:
	//   '200':
	//     description: Likes page
	//     schema:
	//       "$ref": "#/definitions/WorkLikesPage"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	p, err := extractPageParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := s.s.GetWorkLikes(r.Context(), chi.URLParam(r, "id"), p.limit, p.cursor)
	if err != nil {
		writeReadError(w, r, "list likes", err)
		return
	}

	writeOK(w, http.StatusOK, toAPIWorkLikesPage(page))
}

func (s server) getWorkTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := s.s.GetWorkTopics(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get work topics: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPITopics(topics))
}

func (s server) listWorkResponses(w http.ResponseWriter, r *http.Request) {
	s.responsesPage(w, r, "list work responses", s.s.GetWorkResponses)
}

func (s server) listProfileResponses(w http.ResponseWriter, r *http.Request) {
	s.responsesPage(w, r, "list profile responses", s.s.GetWorkResponsesByProfile)
}

func (s server) responsesPage(w http.ResponseWriter, r *http.Request, op string,
	f func(ctx context.Context, id string, limit int, cursor string) (*entities.Page[entities.WorkResponseWithProfile], error)) {
	p, err := extractPageParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := f(r.Context(), chi.URLParam(r, "id"), p.limit, p.cursor)
	if err != nil {
		writeReadError(w, r, op, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIResponsesPage(page))
}

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /profiles/{id} Profiles GetProfile
	//
	// Get current version of the profile.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Profile
	//     schema:
	//       "$ref": "#/definitions/Profile"
	//   '404':
	//     description: profile not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	p, err := s.s.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get profile: %s", err.Error())
		return
	}

	if p == nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}

	writeOK(w, http.StatusOK, toAPIProfile(p))
}

func (s server) getProfileByOwner(w http.ResponseWriter, r *http.Request) {
	p, err := s.s.GetProfileByOwner(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get profile: %s", err.Error())
		return
	}

	if p == nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}

	writeOK(w, http.StatusOK, toAPIProfile(p))
}

func (s server) getAvatar(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /profiles/{id}/avatar Profiles GetAvatar
	//
	// Returns raw avatar of the profile.
	//
	// ---
	// produces:
	// - application/octet-stream
	// responses:
	//   '200':
	//     description: avatar
	//   '404':
	//     description: avatar not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	b, err := s.s.GetAvatar(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get avatar: %s", err.Error())
		return
	}

	if len(b) == 0 {
		writeError(w, http.StatusNotFound, "avatar not found")
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(b))
	_, _ = w.Write(b)
}

func (s server) listFollowers(w http.ResponseWriter, r *http.Request) {
	s.followsPage(w, r, "list followers", s.s.GetFollowers)
}

func (s server) listFollowed(w http.ResponseWriter, r *http.Request) {
	s.followsPage(w, r, "list followed", s.s.GetFollowed)
}

func (s server) followsPage(w http.ResponseWriter, r *http.Request, op string,
	f func(ctx context.Context, id string, limit int, cursor string) (*entities.Page[entities.Follow], error)) {
	p, err := extractPageParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := f(r.Context(), chi.URLParam(r, "id"), p.limit, p.cursor)
	if err != nil {
		writeReadError(w, r, op, err)
		return
	}

	writeOK(w, http.StatusOK, toAPIFollowsPage(page))
}

func (s server) listTopics(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /topics Topics ListTopics
	//
	// Returns all current topics.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Topics
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Topic"

	topics, err := s.s.GetTopics(r.Context())
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get topics: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPITopics(topics))
}

func (s server) getTopic(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, err := s.s.GetTopic(r.Context(), id)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to get topic: %s", err.Error())
		return
	}

	if t == nil {
		writeError(w, http.StatusNotFound, "topic not found")
		return
	}

	writeOK(w, http.StatusOK, toAPITopics([]entities.Topic{*t})[0])
}
