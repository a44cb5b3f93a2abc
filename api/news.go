package api

import (
	"encoding/json"
	"net/http"

	"github.com/bishnupur-union/society-backend/api/apicommon"
	"github.com/bishnupur-union/society-backend/db"
	"github.com/bishnupur-union/society-backend/errors"
	"github.com/bishnupur-union/society-backend/objectstorage"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// newsListHandler returns every news item, newest first.
func (a *API) newsListHandler(w http.ResponseWriter, _ *http.Request) {
	news, err := a.db.NewsItems()
	if err != nil {
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, news)
}

// newsItemFromRequest decodes a news item from the request. It accepts a
// JSON body or a multipart form with title, content and imageUrl fields plus
// an optional image file. When a file is present, the stored upload URL takes
// precedence over the submitted imageUrl.
func (a *API) newsItemFromRequest(r *http.Request) (*db.NewsItem, error) {
	item := &db.NewsItem{}
	if !isMultipartForm(r) {
		if err := json.NewDecoder(r.Body).Decode(item); err != nil {
			return nil, errors.ErrMalformedBody
		}
		return item, nil
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, errors.ErrMalformedBody.Withf("could not parse form: %v", err)
	}
	item.Title = r.FormValue("title")
	item.Content = r.FormValue("content")
	item.ImageURL = r.FormValue("imageUrl")
	member, _ := apicommon.MemberFromContext(r.Context())
	imageURL, err := a.storedImageURL(r, member.Email)
	if err != nil {
		if objectstorage.IsPermissionError(err) {
			return nil, errors.ErrStoragePermission.WithErr(err)
		}
		return nil, errors.ErrInternalStorageError.WithErr(err)
	}
	if imageURL != "" {
		item.ImageURL = imageURL
	}
	return item, nil
}

// createNewsItemHandler creates a news item from a JSON body or a multipart
// form.
func (a *API) createNewsItemHandler(w http.ResponseWriter, r *http.Request) {
	item, err := a.newsItemFromRequest(r)
	if err != nil {
		errors.WriteAs(err, w)
		return
	}
	if item.Title == "" {
		errors.ErrInvalidContentData.With("title is required").Write(w)
		return
	}
	item.ID = primitive.NilObjectID
	newsID, err := a.db.SetNewsItem(item)
	if err != nil {
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, &apicommon.ContentCreatedResponse{ID: newsID})
}

// updateNewsItemHandler fully overwrites a news item.
func (a *API) updateNewsItemHandler(w http.ResponseWriter, r *http.Request) {
	newsID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "newsID"))
	if err != nil {
		errors.ErrMalformedURLParam.Write(w)
		return
	}
	if _, err := a.db.NewsItem(newsID); err != nil {
		if err == db.ErrNotFound {
			errors.ErrNewsNotFound.Write(w)
			return
		}
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	item, err := a.newsItemFromRequest(r)
	if err != nil {
		errors.WriteAs(err, w)
		return
	}
	if item.Title == "" {
		errors.ErrInvalidContentData.With("title is required").Write(w)
		return
	}
	item.ID = newsID
	if _, err := a.db.SetNewsItem(item); err != nil {
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteOK(w)
}

// deleteNewsItemHandler deletes a news item.
func (a *API) deleteNewsItemHandler(w http.ResponseWriter, r *http.Request) {
	newsID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "newsID"))
	if err != nil {
		errors.ErrMalformedURLParam.Write(w)
		return
	}
	if err := a.db.DelNewsItem(newsID); err != nil {
		if err == db.ErrNotFound {
			errors.ErrNewsNotFound.Write(w)
			return
		}
		errors.ErrGenericInternalServerError.WithErr(err).Write(w)
		return
	}
	apicommon.HTTPWriteOK(w)
}
