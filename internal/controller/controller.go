package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck/internal/apperror"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/rs/zerolog/log"
)

func respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, dto.APIResponse{Success: true, Data: data, Message: message})
}

// respondError maps a service error to its HTTP status. Internal detail is
// logged, never sent to the client.
func respondError(c *gin.Context, err error) {
	ae := apperror.From(err)
	if ae.Kind == apperror.KindInternal {
		log.Error().Err(ae).Str("path", c.FullPath()).Msg("Request failed")
	}
	c.JSON(ae.StatusCode(), dto.APIResponse{
		Success: false,
		Message: ae.Message,
		Errors:  ae.Fields,
	})
}

func respondBindError(c *gin.Context, err error) {
	log.Warn().Err(err).Str("path", c.FullPath()).Msg("Failed to bind request body")
	c.JSON(http.StatusBadRequest, dto.APIResponse{
		Success: false,
		Message: "invalid request body: " + err.Error(),
	})
}

// parseID reads a numeric path parameter; on failure it writes the 400
// response and returns false.
func parseID(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Success: false,
			Message: "invalid " + name + " format",
		})
		return 0, false
	}
	return uint(value), true
}

func queryUint(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	parsed := uint(value)
	return &parsed
}

func queryBool(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

func queryString(c *gin.Context, name string) *string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	return &raw
}

func pagination(c *gin.Context, defaultPerPage int) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	return page, perPage
}
