package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/bishnupur-union/society-backend/api/apicommon"
	"github.com/bishnupur-union/society-backend/db"
	qt "github.com/frankban/quicktest"
)

// pngSample is a minimal buffer carrying the PNG magic bytes, enough for
// content type sniffing.
var pngSample = append([]byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 32)...)

func TestNews(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	token := adminToken(t)
	// creating news requires the admin role
	status, _ := doRequest(t, http.MethodPost, newsEndpoint, "", mustMarshal(&db.NewsItem{Title: "nope"}))
	c.Assert(status, qt.Equals, http.StatusUnauthorized)
	// a title is required
	status, _ = doRequest(t, http.MethodPost, newsEndpoint, token, mustMarshal(&db.NewsItem{Content: "no title"}))
	c.Assert(status, qt.Equals, http.StatusBadRequest)
	// create a news item from a JSON body
	status, body := doRequest(t, http.MethodPost, newsEndpoint, token, mustMarshal(&db.NewsItem{
		Title:    "Eid reunion announced",
		Content:  "The annual reunion will take place at the community center.",
		ImageURL: "https://img.test/eid.jpg",
	}))
	c.Assert(status, qt.Equals, http.StatusOK)
	created := &apicommon.ContentCreatedResponse{}
	c.Assert(json.Unmarshal(body, created), qt.IsNil)
	// the public list shows the item without authentication
	status, body = doRequest(t, http.MethodGet, newsEndpoint, "", nil)
	c.Assert(status, qt.Equals, http.StatusOK)
	news := []db.NewsItem{}
	c.Assert(json.Unmarshal(body, &news), qt.IsNil)
	c.Assert(news, qt.HasLen, 1)
	c.Assert(news[0].Title, qt.Equals, "Eid reunion announced")
	c.Assert(news[0].Date.IsZero(), qt.IsFalse)
	// update is a full overwrite
	itemPath := fmt.Sprintf("/news/%s", created.ID.Hex())
	status, _ = doRequest(t, http.MethodPut, itemPath, token, mustMarshal(&db.NewsItem{
		Title: "Eid reunion postponed",
	}))
	c.Assert(status, qt.Equals, http.StatusOK)
	item, err := testDB.NewsItem(created.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(item.Title, qt.Equals, "Eid reunion postponed")
	c.Assert(item.Content, qt.Equals, "")
	// updating a missing item is a 404
	status, _ = doRequest(t, http.MethodPut, "/news/ffffffffffffffffffffffff", token, mustMarshal(&db.NewsItem{
		Title: "ghost",
	}))
	c.Assert(status, qt.Equals, http.StatusNotFound)
	// delete the item
	status, _ = doRequest(t, http.MethodDelete, itemPath, token, nil)
	c.Assert(status, qt.Equals, http.StatusOK)
	status, _ = doRequest(t, http.MethodDelete, itemPath, token, nil)
	c.Assert(status, qt.Equals, http.StatusNotFound)
}

func TestCreateNewsWithImage(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	token := adminToken(t)
	// an uploaded file wins over the submitted imageUrl
	status, body := doMultipartRequest(t, http.MethodPost, newsEndpoint, token, map[string]string{
		"title":    "Photo report",
		"content":  "Pictures from the last event.",
		"imageUrl": "https://img.test/ignored.jpg",
	}, pngSample)
	c.Assert(status, qt.Equals, http.StatusOK)
	created := &apicommon.ContentCreatedResponse{}
	c.Assert(json.Unmarshal(body, created), qt.IsNil)
	item, err := testDB.NewsItem(created.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(strings.Contains(item.ImageURL, "/storage/"), qt.IsTrue)
	c.Assert(strings.HasSuffix(item.ImageURL, ".png"), qt.IsTrue)
	// the stored image is publicly downloadable
	objectName := item.ImageURL[strings.LastIndex(item.ImageURL, "/")+1:]
	status, data := doRequest(t, http.MethodGet, "/storage/"+objectName, "", nil)
	c.Assert(status, qt.Equals, http.StatusOK)
	c.Assert(data, qt.DeepEquals, pngSample)
	// without a file the submitted imageUrl is kept
	status, body = doMultipartRequest(t, http.MethodPost, newsEndpoint, token, map[string]string{
		"title":    "Link only",
		"imageUrl": "https://img.test/kept.jpg",
	}, nil)
	c.Assert(status, qt.Equals, http.StatusOK)
	c.Assert(json.Unmarshal(body, created), qt.IsNil)
	item, err = testDB.NewsItem(created.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(item.ImageURL, qt.Equals, "https://img.test/kept.jpg")
}
