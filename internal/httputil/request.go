package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		// All other errors name the offending field or value
		var jsonSyntaxError *json.SyntaxError
		if errors.As(err, &jsonSyntaxError) || errors.Is(err, io.ErrUnexpectedEOF) {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			return ErrInvalidBody
		}

		return err
	}

	return nil
}

// GetBodyFields returns the names of the fields of resource that are set
// in the request body, keyed by their json tag.
//
// The body is read and restored, so this must be called before any of gin's
// c.*Bind methods.
func GetBodyFields(c *gin.Context, resource any) ([]any, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return []any{}, ErrInvalidBody
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	var mapBody map[string]any
	if err := json.Unmarshal(body, &mapBody); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return []any{}, ErrInvalidBody
	}

	fields := []any{}
	for _, f := range jsonFields(resource) {
		if _, ok := mapBody[f.tag]; ok {
			fields = append(fields, f.name)
		}
	}

	return fields, nil
}
