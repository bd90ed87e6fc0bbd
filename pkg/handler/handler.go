package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	blackhole "github.com/MohnajibG/BlackHole"
	"github.com/MohnajibG/BlackHole/pkg/consts"
	srvc "github.com/MohnajibG/BlackHole/pkg/service"

	"github.com/sirupsen/logrus"

	"github.com/gorilla/mux"
)

// fixed user-facing messages, one per page
const (
	msgApodFailed   = "unable to load picture of the day"
	msgMarsFailed   = "unable to load mars photos"
	msgEpicFailed   = "unable to load earth imagery"
	msgSearchFailed = "unable to load search results"
	msgStoreFailed  = "unable to access stored pictures"
)

type Handler struct {
	services *srvc.Service
}

func NewHandler(services *srvc.Service) *Handler {
	return &Handler{services}
}

func (h *Handler) InitRoutes() *mux.Router {

	router := mux.NewRouter()

	router.HandleFunc("/v1/apod", h.Apod).Methods(http.MethodGet)
	router.HandleFunc("/v1/stored", h.StoredPictures).Methods(http.MethodGet)
	router.HandleFunc("/v1/stored", h.ForgetPicture).Methods(http.MethodDelete)
	router.HandleFunc("/v1/mars", h.MarsPhotos).Methods(http.MethodGet)
	router.HandleFunc("/v1/epic", h.EpicFeed).Methods(http.MethodGet)
	router.HandleFunc("/v1/search", h.SearchImages).Methods(http.MethodGet)
	router.HandleFunc("/v1/surprise", h.Surprise).Methods(http.MethodGet)

	return router
}

// Apod returns today's record, from the cache when present.
func (h *Handler) Apod(w http.ResponseWriter, r *http.Request) {

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	md, err := h.services.Today(ctx)
	if err != nil {
		logrus.Errorf("apod fetch failed: %q", err)
		sendResponse(w, http.StatusBadGateway, msgApodFailed, nil)
		return
	}

	sendResponse(w, http.StatusOK, "ok", md)
}

// StoredPictures lists cached records, either for a single date or a
// date range. Only the cache is consulted, never upstream.
func (h *Handler) StoredPictures(w http.ResponseWriter, r *http.Request) {

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	date := getTimeParam(r, consts.ParamDate)
	start, end := getTimeParam(r, consts.ParamStartDate), getTimeParam(r, consts.ParamEndDate)

	var data []blackhole.ApodModel
	switch {
	case !date.IsZero():
		md, err := h.services.ByDate(ctx, date)
		if err != nil {
			logrus.Errorf("stored lookup failed: %q", err)
			sendResponse(w, http.StatusInternalServerError, msgStoreFailed, nil)
			return
		}
		if md != nil {
			data = append(data, *md)
		}
	case !start.IsZero() && !end.IsZero():
		var err error
		data, err = h.services.ByDateRange(ctx, start, end)
		if err != nil {
			logrus.Errorf("stored range lookup failed: %q", err)
			sendResponse(w, http.StatusInternalServerError, msgStoreFailed, nil)
			return
		}
	default:
		sendResponse(w, http.StatusBadRequest, "invalid request params", nil)
		return
	}

	sendResponse(w, http.StatusOK, "ok", data)
}

// ForgetPicture drops one cached record by date.
func (h *Handler) ForgetPicture(w http.ResponseWriter, r *http.Request) {

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	date := getTimeParam(r, consts.ParamDate)
	if date.IsZero() {
		sendResponse(w, http.StatusBadRequest, "invalid request params", nil)
		return
	}

	n, err := h.services.Forget(ctx, date)
	if err != nil {
		logrus.Errorf("stored delete failed: %q", err)
		sendResponse(w, http.StatusInternalServerError, msgStoreFailed, nil)
		return
	}

	if n == 0 {
		sendResponse(w, http.StatusNotFound, "nothing stored for that date", nil)
		return
	}

	sendResponse(w, http.StatusOK, "ok", nil)
}

// MarsPhotos answers rover/camera/sol queries. Unknown rover or camera
// is the caller's fault, anything else maps to the page message.
func (h *Handler) MarsPhotos(w http.ResponseWriter, r *http.Request) {

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	rover := getStringParam(r, consts.ParamRover)
	camera := getStringParam(r, consts.ParamCamera)
	sol := getIntParam(r, consts.ParamSol)

	photos, err := h.services.Photos(ctx, rover, camera, sol)
	if err != nil {
		if errors.Is(err, srvc.ErrUnknownRover) || errors.Is(err, srvc.ErrUnknownCamera) {
			sendResponse(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		logrus.Errorf("mars fetch failed: %q", err)
		sendResponse(w, http.StatusBadGateway, msgMarsFailed, nil)
		return
	}

	sendResponse(w, http.StatusOK, "ok", photos)
}

// EpicFeed returns the natural-color list with derived image urls.
func (h *Handler) EpicFeed(w http.ResponseWriter, r *http.Request) {

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	items, err := h.services.Feed(ctx)
	if err != nil {
		logrus.Errorf("epic fetch failed: %q", err)
		sendResponse(w, http.StatusBadGateway, msgEpicFailed, nil)
		return
	}

	sendResponse(w, http.StatusOK, "ok", items)
}

// SearchImages runs one free-text query.
func (h *Handler) SearchImages(w http.ResponseWriter, r *http.Request) {

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	q := getStringParam(r, consts.ParamQuery)
	if q == "" {
		sendResponse(w, http.StatusBadRequest, "empty query", nil)
		return
	}

	items, err := h.services.Query(ctx, q)
	if err != nil {
		logrus.Errorf("search failed: %q", err)
		sendResponse(w, http.StatusBadGateway, msgSearchFailed, nil)
		return
	}

	sendResponse(w, http.StatusOK, "ok", items)
}

// Surprise rolls random topics and returns the mixed set.
func (h *Handler) Surprise(w http.ResponseWriter, r *http.Request) {

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	items, err := h.services.Surprise(ctx)
	if err != nil {
		logrus.Errorf("surprise failed: %q", err)
		sendResponse(w, http.StatusBadGateway, msgSearchFailed, nil)
		return
	}

	sendResponse(w, http.StatusOK, "ok", items)
}
