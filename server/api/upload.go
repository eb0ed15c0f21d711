package api

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// savePicture stores the optional "picture" multipart field under the asset
// dir and returns the filename it is referenced by. The original filename is
// kept (flattened to its base so a crafted name cannot escape the asset dir).
// Requests without a picture return ("", nil).
func (a *API) savePicture(c *gin.Context) (string, error) {
	file, err := c.FormFile("picture")
	if err != nil {
		// No multipart body or no picture field attached.
		return "", nil
	}

	name := filepath.Base(file.Filename)
	if name == "." || name == string(filepath.Separator) {
		return "", errors.New("invalid picture filename")
	}

	if err := c.SaveUploadedFile(file, filepath.Join(a.AssetDir, name)); err != nil {
		return "", errors.Wrap(err, "fail to store picture")
	}
	return name, nil
}
