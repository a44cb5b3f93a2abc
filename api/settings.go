package api

import (
	"encoding/json"
	"net/http"

	"github.com/bishnupur-union/society-backend/api/apicommon"
	"github.com/bishnupur-union/society-backend/db"
	"github.com/bishnupur-union/society-backend/errors"
)

// siteSettingsHandler returns the settings singleton. The first read on an
// empty database writes the defaults before returning them.
func (a *API) siteSettingsHandler(w http.ResponseWriter, _ *http.Request) {
	settings, err := a.db.SiteSettings()
	if err != nil {
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, settings)
}

// updateSiteSettingsHandler applies a patch-style save of the settings
// singleton: only the fields present in the body are written and the version
// counter is bumped. The version of the body, when set, must match the
// stored one, otherwise the save is rejected with a conflict.
func (a *API) updateSiteSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings := &db.SiteSettings{}
	if err := json.NewDecoder(r.Body).Decode(settings); err != nil {
		errors.ErrMalformedBody.Write(w)
		return
	}
	if err := a.db.SetSiteSettings(settings, settings.Version); err != nil {
		if err == db.ErrConflict {
			errors.ErrVersionConflict.Write(w)
			return
		}
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	updated, err := a.db.SiteSettings()
	if err != nil {
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, updated)
}
