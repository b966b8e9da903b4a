package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tomasen/realip"

	"github.com/Decentr-net/go-api"

	"github.com/Decentr-net/demeter/internal/entities"
	"github.com/Decentr-net/demeter/internal/guard"
	"github.com/Decentr-net/demeter/internal/level"
	"github.com/Decentr-net/demeter/internal/service"
	"github.com/Decentr-net/demeter/internal/storage"
)

var log = logrus.WithField("package", "server")

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Community CreatePost
	//
	// Create a mood post and evaluate the daily reward for its owner.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreatePostRequest"
	// responses:
	//   '200':
	//     description: post with reward outcome
	//     schema:
	//       "$ref": "#/definitions/CreatePostResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: post already exists
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if req.Owner == "" {
		api.WriteError(w, http.StatusBadRequest, "owner is required")
		return
	}

	if req.Mood > maxMood {
		api.WriteError(w, http.StatusBadRequest, "invalid mood")
		return
	}

	if len(req.Text) > maxTextLength {
		api.WriteError(w, http.StatusBadRequest, "text is too long")
		return
	}

	if req.UUID == "" {
		req.UUID = uuid.NewString()
	}

	post := entities.Post{
		UUID:      req.UUID,
		Owner:     req.Owner,
		Mood:      req.Mood,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}

	reward, err := s.s.CreatePost(r.Context(), &post)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			api.WriteError(w, http.StatusConflict, "post already exists")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to create post: %s", err.Error())
		return
	}

	log.WithFields(logrus.Fields{
		"owner": post.Owner,
		"ip":    realip.FromRequest(r),
	}).Debug("post created")

	api.WriteOK(w, http.StatusOK, CreatePostResponse{
		Post:   *toAPIPost(&post),
		Reward: toAPIReward(reward),
	})
}

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts Community ListPosts
	//
	// Return mood posts.
	//
	// ---
	// parameters:
	// - name: owner
	//   description: filters posts by owner
	//   in: query
	//   required: false
	// - name: limit
	//   description: limits count of returned posts
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// - name: after
	//   description: sets not-including bound for list by post uuid
	//   in: query
	//   required: false
	// responses:
	//   '200':
	//     description: Posts
	//     schema:
	//       "$ref": "#/definitions/ListPostsResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	params, err := extractListParamsFromQuery(r.URL.Query())
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := s.s.ListPosts(r.Context(), params)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to list posts: %s", err.Error())
		return
	}

	resp := ListPostsResponse{Posts: make([]Post, len(posts))}
	for i, v := range posts {
		resp.Posts[i] = *toAPIPost(v)
	}

	api.WriteOK(w, http.StatusOK, resp)
}

func (s server) setReaction(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{owner}/{uuid}/reactions Community SetReaction
	//
	// Set or replace an emoji reaction on a post.
	//
	// ---
	// parameters:
	// - name: owner
	//   in: path
	//   required: true
	//   type: string
	// - name: uuid
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/SetReactionRequest"
	// responses:
	//   '200':
	//     description: reaction set
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	owner, postUUID := chi.URLParam(r, "owner"), chi.URLParam(r, "uuid")
	if owner == "" || postUUID == "" {
		api.WriteError(w, http.StatusBadRequest, "invalid owner or uuid")
		return
	}

	var req SetReactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if req.ReactedBy == "" {
		api.WriteError(w, http.StatusBadRequest, "reacted_by is required")
		return
	}

	if req.Mood > maxMood {
		api.WriteError(w, http.StatusBadRequest, "invalid mood")
		return
	}

	if err := s.s.SetReaction(r.Context(), owner, postUUID, req.Mood, time.Now(), req.ReactedBy); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "post not found")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to set reaction: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, struct{}{})
}

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /profiles/{owner} Profiles GetProfile
	//
	// Get profile with pet, unlocked images and usage limits.
	//
	// ---
	// parameters:
	// - name: owner
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Profile
	//     schema:
	//       "$ref": "#/definitions/ProfileResponse"
	//   '404':
	//     description: profile not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	owner := chi.URLParam(r, "owner")
	if owner == "" {
		api.WriteError(w, http.StatusBadRequest, "invalid owner")
		return
	}

	profile, err := s.s.GetProfile(r.Context(), owner)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "profile not found")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to get profile: %s", err.Error())
		return
	}

	images, err := s.s.GetUnlockedImages(r.Context(), owner)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to get unlocked images: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, toProfileResponse(profile, images))
}

func (s server) adoptPet(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /profiles/{owner}/pet Profiles AdoptPet
	//
	// Adopt a new pet. Allowed with no pet or with a pet at max level;
	// the replaced pet's unlocked images stay.
	//
	// ---
	// parameters:
	// - name: owner
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/AdoptPetRequest"
	// responses:
	//   '200':
	//     description: adopted pet
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: profile not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: current pet has not reached max level
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	owner := chi.URLParam(r, "owner")
	if owner == "" {
		api.WriteError(w, http.StatusBadRequest, "invalid owner")
		return
	}

	var req AdoptPetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	pet, err := s.s.AdoptPet(r.Context(), owner, entities.Species(req.Species))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownSpecies):
			api.WriteError(w, http.StatusBadRequest, "unknown species")
		case errors.Is(err, storage.ErrNotFound):
			api.WriteError(w, http.StatusNotFound, "profile not found")
		case errors.Is(err, service.ErrPetNotRetired):
			api.WriteError(w, http.StatusConflict, "current pet has not reached max level")
		default:
			api.WriteInternalErrorf(r.Context(), w, "failed to adopt pet: %s", err.Error())
		}
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPet(pet))
}

func (s server) releasePet(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /profiles/{owner}/pet Profiles ReleasePet
	//
	// Release the current pet. Unlocked images are kept.
	//
	// ---
	// parameters:
	// - name: owner
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: pet released
	//   '404':
	//     description: profile not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: no pet owned
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	owner := chi.URLParam(r, "owner")
	if owner == "" {
		api.WriteError(w, http.StatusBadRequest, "invalid owner")
		return
	}

	if err := s.s.ReleasePet(r.Context(), owner); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			api.WriteError(w, http.StatusNotFound, "profile not found")
		case errors.Is(err, service.ErrNoPet):
			api.WriteError(w, http.StatusConflict, "no pet owned")
		default:
			api.WriteInternalErrorf(r.Context(), w, "failed to release pet: %s", err.Error())
		}
		return
	}

	api.WriteOK(w, http.StatusOK, struct{}{})
}

func (s server) setUsageLimits(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /profiles/{owner}/limits Profiles SetUsageLimits
	//
	// Set parental play-time limits and the blackout window.
	//
	// ---
	// parameters:
	// - name: owner
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/UsageLimits"
	// responses:
	//   '200':
	//     description: limits set
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: profile not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	owner := chi.URLParam(r, "owner")
	if owner == "" {
		api.WriteError(w, http.StatusBadRequest, "invalid owner")
		return
	}

	var req UsageLimits
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if req.BlackoutEnabled {
		if _, err := guard.ParseWindow(req.BlackoutStart, req.BlackoutEnd); err != nil {
			api.WriteError(w, http.StatusBadRequest, "invalid blackout window")
			return
		}
	}

	l := entities.UsageLimits{
		SessionMinutes:  req.SessionMinutes,
		DailyMinutes:    req.DailyMinutes,
		BlackoutEnabled: req.BlackoutEnabled,
		BlackoutStart:   req.BlackoutStart,
		BlackoutEnd:     req.BlackoutEnd,
	}

	if err := s.s.SetUsageLimits(r.Context(), owner, l); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "profile not found")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to set usage limits: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, struct{}{})
}

func (s server) getSpecies(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /species Profiles GetSpecies
	//
	// Return the adoptable species catalog.
	//
	// ---
	// responses:
	//   '200':
	//     description: Species
	//     schema:
	//       "$ref": "#/definitions/SpeciesResponse"

	resp := SpeciesResponse{Species: make([]string, len(entities.Catalog))}
	for i, v := range entities.Catalog {
		resp.Species[i] = string(v)
	}

	api.WriteOK(w, http.StatusOK, resp)
}

func extractListParamsFromQuery(q url.Values) (*storage.ListPostsParams, error) {
	out := storage.ListPostsParams{
		Limit: defaultLimit,
	}

	if s := q.Get("limit"); s != "" {
		limit, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return nil, errors.New("failed to parse limit")
		}
		if limit == 0 || limit > maxLimit {
			return nil, errors.New("limit is out of bounds")
		}

		out.Limit = uint16(limit)
	}

	if s := q.Get("owner"); s != "" {
		out.Owner = &s
	}

	if s := q.Get("after"); s != "" {
		out.After = &s
	}

	return &out, nil
}

func toAPIPet(p *entities.Pet) *Pet {
	if p == nil {
		return nil
	}

	return &Pet{
		Species:   string(p.Species),
		Level:     p.Level,
		XP:        p.XP,
		NextLevel: level.Threshold(p.Level),
		Stage:     level.Stage(p.Level),
		StartDate: uint64(p.StartDate.Unix()),
	}
}

func toProfileResponse(p *entities.Profile, images []string) ProfileResponse {
	if images == nil {
		images = []string{}
	}

	return ProfileResponse{
		Owner:          p.Owner,
		Pet:            toAPIPet(p.Pet),
		UnlockedImages: images,
		Limits:         toAPILimits(p.Limits),
		CreatedAt:      uint64(p.CreatedAt.Unix()),
	}
}
