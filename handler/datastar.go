package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is the Accept value sent by DataStar actions.
	DataStarAcceptHeader = "text/event-stream"
	// DataStarQueryParam carries signals on DataStar GET requests.
	DataStarQueryParam = "datastar"
)

const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchRemove  = datastar.ElementPatchModeRemove
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
)

// IsDataStar reports whether r was issued by a DataStar action.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return r.Header.Get("Datastar-Request") == "true"
}
