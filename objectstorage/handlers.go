package objectstorage

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/bishnupur-union/society-backend/api/apicommon"
	"github.com/bishnupur-union/society-backend/errors"
	"github.com/go-chi/chi/v5"
)

// isObjectNameRgx is a regular expression to match object names.
var isObjectNameRgx = regexp.MustCompile(`^([a-zA-Z0-9]+)\.(jpg|jpeg|png)`)

// UploadImageWithFormHandler uploads images through a multipart form. It
// expects the request to contain a "file" field with one or more files to be
// uploaded, and returns the URLs of the stored images.
func (osc *Client) UploadImageWithFormHandler(w http.ResponseWriter, r *http.Request) {
	// get the member from the request context
	member, ok := apicommon.MemberFromContext(r.Context())
	if !ok {
		errors.ErrUnauthorized.Write(w)
		return
	}

	// 32 MB is the default used by FormFile() function
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		errors.ErrStorageInvalidObject.Withf("could not parse form: %v", err).Write(w)
		return
	}

	// the fileHeaders are accessible only after ParseMultipartForm is called
	filesFound := false
	var returnURLs []string
	for _, fileHeaders := range r.MultipartForm.File {
		for _, fileHeader := range fileHeaders {
			file, err := fileHeader.Open()
			if err != nil {
				errors.ErrStorageInvalidObject.Withf("cannot open file %s %v", fileHeader.Filename, err).Write(w)
				return
			}
			defer func() {
				if err := file.Close(); err != nil {
					errors.ErrStorageInvalidObject.Withf("cannot close file %s %v", fileHeader.Filename, err).Write(w)
					return
				}
			}()
			// upload the file and get the URL of the stored object
			filesFound = true
			storedFileID, err := osc.Put(file, fileHeader.Size, member.Email)
			if err != nil {
				if IsPermissionError(err) {
					errors.ErrStoragePermission.Withf("%s %v", fileHeader.Filename, err).Write(w)
					return
				}
				errors.ErrInternalStorageError.Withf("%s %v", fileHeader.Filename, err).Write(w)
				return
			}
			returnURLs = append(returnURLs, ObjectURL(osc.ServerURL, storedFileID))
		}
	}
	if !filesFound {
		errors.ErrStorageInvalidObject.With("no files found").Write(w)
		return
	}
	apicommon.HTTPWriteJSON(w, map[string][]string{"urls": returnURLs})
}

// DownloadImageInlineHandler retrieves the object from storage and serves it
// inline so the browser displays it.
func (osc *Client) DownloadImageInlineHandler(w http.ResponseWriter, r *http.Request) {
	objectName := chi.URLParam(r, "objectName")
	if objectName == "" {
		errors.ErrMalformedURLParam.With("objectName is required").Write(w)
		return
	}
	objectID, ok := objectIDfromName(objectName)
	if !ok {
		errors.ErrStorageInvalidObject.With("invalid objectName").Write(w)
		return
	}
	object, err := osc.Get(objectID)
	if err != nil {
		if err == ErrorObjectNotFound {
			errors.ErrStorageInvalidObject.With("object not found").Write(w)
			return
		}
		errors.ErrInternalStorageError.Withf("cannot get object %v", err).Write(w)
		return
	}
	w.Header().Set("Content-Type", object.ContentType)
	w.Header().Set("Content-Disposition", "inline")
	if _, err := w.Write(object.Data); err != nil {
		errors.ErrInternalStorageError.Withf("cannot write object %v", err).Write(w)
		return
	}
}

// ObjectURL returns the public URL for the object with the given name.
func ObjectURL(baseURL, objectName string) string {
	return fmt.Sprintf("%s/storage/%s", baseURL, objectName)
}

// objectIDfromName returns the objectID from the given object name. If the
// name does not look like an object name, it returns an empty string and
// false.
func objectIDfromName(name string) (string, bool) {
	objectID := isObjectNameRgx.FindStringSubmatch(name)
	if len(objectID) != 3 {
		return "", false
	}
	return objectID[1], true
}
