package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/harentsoaR/tattoo-studio-api/internal/services"
	"github.com/harentsoaR/tattoo-studio-api/internal/utils"
)

type HTTPError struct {
	Code    string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

var errorMappings = []errorMapping{
	{services.ErrDuplicateEmail, http.StatusBadRequest, "duplicate_email", "Email already registered"},
	{services.ErrPasswordTooLong, http.StatusBadRequest, "password_too_long", "Password must be at most 72 bytes"},
	{services.ErrDuplicateID, http.StatusConflict, "duplicate_id", "ID already in use"},
	{services.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials"},
	{utils.ErrTokenExpired, http.StatusUnauthorized, "token_expired", "Token expired"},
	{utils.ErrTokenInvalid, http.StatusUnauthorized, "token_invalid", "Invalid token"},
	{services.ErrUserNotFound, http.StatusUnauthorized, "user_not_found", "User not found"},
	{services.ErrArtistNotFound, http.StatusNotFound, "artist_not_found", "Artist not found"},
	{services.ErrServiceNotFound, http.StatusNotFound, "service_not_found", "Service not found"},
}

// WriteError maps a service error to its HTTP status and body. Unknown
// errors are logged and reported as a generic 500.
func WriteError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			c.JSON(m.status, HTTPError{Code: m.code, Message: m.message})
			return
		}
	}
	log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, HTTPError{Code: "internal_error", Message: "Internal server error"})
}

// writeBindError reports a request body that failed to decode or validate.
func writeBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = describe(fe)
		}
		c.JSON(http.StatusBadRequest, HTTPError{Code: "invalid_request", Message: "Validation failed", Fields: fields})
		return
	}
	c.JSON(http.StatusBadRequest, HTTPError{Code: "invalid_request", Message: "Invalid request body"})
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report the json field name.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
