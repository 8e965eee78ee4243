package handlers

import nethttp "net/http"

// Outcome is the typed result of an endpoint: a status plus an optional body,
// Location header, error message or problem detail. The responder turns it into bytes.
type Outcome struct {
	Status   int
	Body     any
	Location string
	Message  string
	Problem  string
}

// OK returns a 200 with a JSON body.
func OK(body any) Outcome {
	return Outcome{Status: nethttp.StatusOK, Body: body}
}

// Created returns a 201 with the stored entity and its location.
func Created(location string, body any) Outcome {
	return Outcome{Status: nethttp.StatusCreated, Body: body, Location: location}
}

// NoContent returns a bodyless 204.
func NoContent() Outcome {
	return Outcome{Status: nethttp.StatusNoContent}
}

// Fail returns a JSON error body with the given status.
func Fail(status int, message string) Outcome {
	return Outcome{Status: status, Message: message}
}

// ValidationProblem returns a 400 problem response carrying detail.
func ValidationProblem(detail string) Outcome {
	return Outcome{Status: nethttp.StatusBadRequest, Problem: detail}
}
