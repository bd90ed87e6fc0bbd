package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/MohnajibG/BlackHole/pkg/consts"

	"github.com/sirupsen/logrus"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func getStringParam(r *http.Request, name string) string {

	if r == nil {
		return ""
	}

	return r.URL.Query().Get(name)
}

// getTimeParam parses the named query param as a date, anything
// unparseable is the zero time.
func getTimeParam(r *http.Request, name string) time.Time {

	if r == nil {
		return time.Time{}
	}

	t, err := time.Parse(consts.TimeFormat, r.URL.Query().Get(name))
	if err != nil {
		return time.Time{}
	}

	return t
}

// getIntParam parses the named query param, anything unparseable is 0.
func getIntParam(r *http.Request, name string) int {

	if r == nil {
		return 0
	}

	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}

	return n
}

func sendResponse(w http.ResponseWriter, status int, msg string, data interface{}) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(Response{Message: msg, Data: data}); err != nil {
		logrus.Errorf("error while sending response %q", err)
	}
}
