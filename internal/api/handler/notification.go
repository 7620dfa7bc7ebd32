package handler

import (
	"net/http"

	"github.com/buildbridge/dashboard/internal/api/response"
	"github.com/buildbridge/dashboard/internal/notify"
)

// ListNotifications returns the recent mutation notifications for the
// shell's toast area.
func ListNotifications(ring *notify.Ring) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, ring.Recent())
	}
}
