package api

import (
	"net/http"
	"time"

	"github.com/Gayatrinj/Your-Personal-Stylists/utils"
)

// HealthHandler reports server liveness
func (a *API) HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}
