// Package response provides the uniform response envelope and the
// translator that turns domain errors into error envelopes.
package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/festy23/ticketing/internal/apperror"
)

// envelopeKey stores the written envelope on the gin context for observers.
const envelopeKey = "response.envelope"

// Envelope wraps every endpoint response.
// Field order is part of the client contract.
type Envelope struct {
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Status  HTTPStatus `json:"status"`
}

// New builds an envelope. Pass nil data for void operations.
func New(message string, data any, status int) Envelope {
	return Envelope{
		Message: message,
		Data:    data,
		Status:  HTTPStatus(status),
	}
}

// String renders the envelope for logs.
func (e Envelope) String() string {
	if e.Data == nil {
		return fmt.Sprintf("{message: %q, status: %s}", e.Message, e.Status)
	}
	return fmt.Sprintf("{message: %q, data: %+v, status: %s}", e.Message, e.Data, e.Status)
}

// StatusOf maps a domain error to its HTTP status.
func StatusOf(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperror.KindForbidden:
		return http.StatusForbidden
	case apperror.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FromError translates a domain error into an error envelope.
func FromError(err error) Envelope {
	return New(apperror.MessageOf(err), nil, StatusOf(err))
}

// Write sends env with its own status as the transport status.
func Write(c *gin.Context, env Envelope) {
	c.Set(envelopeKey, env)
	c.JSON(env.Status.Code(), env)
}

// OK writes a 200 envelope.
func OK(c *gin.Context, message string, data any) {
	Write(c, New(message, data, http.StatusOK))
}

// Created writes a 201 envelope without data.
func Created(c *gin.Context, message string) {
	Write(c, New(message, nil, http.StatusCreated))
}

// Error records err on the context and writes its error envelope.
func Error(c *gin.Context, err error) {
	if err == nil {
		err = errors.New("nil error passed to response.Error")
	}
	_ = c.Error(err)
	Write(c, FromError(err))
}

// Abort writes the error envelope and stops the handler chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// FromContext returns the envelope written for the current request, if any.
func FromContext(c *gin.Context) (Envelope, bool) {
	v, ok := c.Get(envelopeKey)
	if !ok {
		return Envelope{}, false
	}
	env, ok := v.(Envelope)
	return env, ok
}
