//go:build go1.22

// Package api provides primitives to interact with the openapi HTTP API.
//
// Code generated by github.com/oapi-codegen/oapi-codegen/v2 version v2.5.0 DO NOT EDIT.
package api

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/oapi-codegen/runtime"
	strictnethttp "github.com/oapi-codegen/runtime/strictmiddleware/nethttp"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for ErrorCode.
const (
	ErrorCodeInputValidationError ErrorCode = "InputValidationError"
	ErrorCodeInternalError        ErrorCode = "InternalError"
	ErrorCodeNotFound             ErrorCode = "NotFound"
	ErrorCodeOperationInFlight    ErrorCode = "OperationInFlight"
	ErrorCodeProviderRejected     ErrorCode = "ProviderRejected"
	ErrorCodeProviderUnavailable  ErrorCode = "ProviderUnavailable"
	ErrorCodeWrongPhase           ErrorCode = "WrongPhase"
)

// Defines values for NoticeLevel.
const (
	NoticeLevelError   NoticeLevel = "error"
	NoticeLevelInfo    NoticeLevel = "info"
	NoticeLevelSuccess NoticeLevel = "success"
)

// Defines values for SessionInFlight.
const (
	SessionInFlightConfirming  SessionInFlight = "confirming"
	SessionInFlightRegistering SessionInFlight = "registering"
	SessionInFlightResending   SessionInFlight = "resending"
)

// Defines values for SessionPhase.
const (
	SessionPhaseAwaitingConfirmation SessionPhase = "awaiting_confirmation"
	SessionPhaseCancelled            SessionPhase = "cancelled"
	SessionPhaseCollecting           SessionPhase = "collecting"
	SessionPhaseConfirmed            SessionPhase = "confirmed"
)

// Defines values for SessionResponseOutcome.
const (
	SessionResponseOutcomeCancelled SessionResponseOutcome = "cancelled"
	SessionResponseOutcomeConfirmed SessionResponseOutcome = "confirmed"
)

// ConfirmationRequest defines model for ConfirmationRequest.
type ConfirmationRequest struct {
	Code *string `json:"code,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code        ErrorCode     `json:"code"`
	FieldErrors *[]FieldError `json:"fieldErrors,omitempty"`
	Message     string        `json:"message"`
	Notice      *Notice       `json:"notice,omitempty"`
	Session     *Session      `json:"session,omitempty"`
}

// ErrorCode defines model for Error.Code.
type ErrorCode string

// FieldError defines model for FieldError.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Notice defines model for Notice.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

// NoticeLevel defines model for Notice.Level.
type NoticeLevel string

// RegistrationRequest defines model for RegistrationRequest.
type RegistrationRequest struct {
	EmailAddress *string `json:"emailAddress,omitempty"`
	FamilyName   *string `json:"familyName,omitempty"`
	GivenName    *string `json:"givenName,omitempty"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
}

// Session defines model for Session.
type Session struct {
	CreatedAt    time.Time          `json:"createdAt"`
	EmailAddress *string            `json:"emailAddress,omitempty"`
	ExpiresAt    time.Time          `json:"expiresAt"`
	FamilyName   *string            `json:"familyName,omitempty"`
	GivenName    *string            `json:"givenName,omitempty"`
	Id           openapi_types.UUID `json:"id"`
	InFlight     *SessionInFlight   `json:"inFlight,omitempty"`
	Phase        SessionPhase       `json:"phase"`
	PhoneNumber  *string            `json:"phoneNumber,omitempty"`
}

// SessionInFlight defines model for Session.InFlight.
type SessionInFlight string

// SessionPhase defines model for Session.Phase.
type SessionPhase string

// SessionResponse defines model for SessionResponse.
type SessionResponse struct {
	Notice  *Notice                 `json:"notice,omitempty"`
	Outcome *SessionResponseOutcome `json:"outcome,omitempty"`
	Session Session                 `json:"session"`
}

// SessionResponseOutcome defines model for SessionResponse.Outcome.
type SessionResponseOutcome string

// SessionId defines model for SessionId.
type SessionId = openapi_types.UUID

// ConfirmCodeJSONRequestBody defines body for ConfirmCode for application/json ContentType.
type ConfirmCodeJSONRequestBody = ConfirmationRequest

// SubmitRegistrationJSONRequestBody defines body for SubmitRegistration for application/json ContentType.
type SubmitRegistrationJSONRequestBody = RegistrationRequest

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (POST /signup/v1/sessions)
	StartSession(w http.ResponseWriter, r *http.Request)

	// (DELETE /signup/v1/sessions/{id})
	CancelSession(w http.ResponseWriter, r *http.Request, id SessionId)

	// (GET /signup/v1/sessions/{id})
	GetSession(w http.ResponseWriter, r *http.Request, id SessionId)

	// (POST /signup/v1/sessions/{id}/confirmation)
	ConfirmCode(w http.ResponseWriter, r *http.Request, id SessionId)

	// (POST /signup/v1/sessions/{id}/registration)
	SubmitRegistration(w http.ResponseWriter, r *http.Request, id SessionId)

	// (POST /signup/v1/sessions/{id}/resend)
	ResendCode(w http.ResponseWriter, r *http.Request, id SessionId)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareFunc func(http.Handler) http.Handler

// StartSession operation middleware
func (siw *ServerInterfaceWrapper) StartSession(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.StartSession(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// CancelSession operation middleware
func (siw *ServerInterfaceWrapper) CancelSession(w http.ResponseWriter, r *http.Request) {

	var err error

	// ------------- Path parameter "id" -------------
	var id SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "id", r.PathValue("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CancelSession(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetSession operation middleware
func (siw *ServerInterfaceWrapper) GetSession(w http.ResponseWriter, r *http.Request) {

	var err error

	// ------------- Path parameter "id" -------------
	var id SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "id", r.PathValue("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetSession(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ConfirmCode operation middleware
func (siw *ServerInterfaceWrapper) ConfirmCode(w http.ResponseWriter, r *http.Request) {

	var err error

	// ------------- Path parameter "id" -------------
	var id SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "id", r.PathValue("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ConfirmCode(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// SubmitRegistration operation middleware
func (siw *ServerInterfaceWrapper) SubmitRegistration(w http.ResponseWriter, r *http.Request) {

	var err error

	// ------------- Path parameter "id" -------------
	var id SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "id", r.PathValue("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.SubmitRegistration(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ResendCode operation middleware
func (siw *ServerInterfaceWrapper) ResendCode(w http.ResponseWriter, r *http.Request) {

	var err error

	// ------------- Path parameter "id" -------------
	var id SessionId

	err = runtime.BindStyledParameterWithOptions("simple", "id", r.PathValue("id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ResendCode(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

type UnescapedCookieParamError struct {
	ParamName string
	Err       error
}

func (e *UnescapedCookieParamError) Error() string {
	return fmt.Sprintf("error unescaping cookie parameter '%s'", e.ParamName)
}

func (e *UnescapedCookieParamError) Unwrap() error {
	return e.Err
}

type UnmarshalingParamError struct {
	ParamName string
	Err       error
}

func (e *UnmarshalingParamError) Error() string {
	return fmt.Sprintf("Error unmarshaling parameter %s as JSON: %s", e.ParamName, e.Err.Error())
}

func (e *UnmarshalingParamError) Unwrap() error {
	return e.Err
}

type RequiredParamError struct {
	ParamName string
}

func (e *RequiredParamError) Error() string {
	return fmt.Sprintf("Query argument %s is required, but not found", e.ParamName)
}

type RequiredHeaderError struct {
	ParamName string
	Err       error
}

func (e *RequiredHeaderError) Error() string {
	return fmt.Sprintf("Header parameter %s is required, but not found", e.ParamName)
}

func (e *RequiredHeaderError) Unwrap() error {
	return e.Err
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

type TooManyValuesForParamError struct {
	ParamName string
	Count     int
}

func (e *TooManyValuesForParamError) Error() string {
	return fmt.Sprintf("Expected one value for %s, got %d", e.ParamName, e.Count)
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{})
}

// ServeMux is an abstraction of http.ServeMux.
type ServeMux interface {
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
	ServeHTTP(w http.ResponseWriter, r *http.Request)
}

type StdHTTPServerOptions struct {
	BaseURL          string
	BaseRouter       ServeMux
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, m ServeMux) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{
		BaseRouter: m,
	})
}

func HandlerFromMuxWithBaseURL(si ServerInterface, m ServeMux, baseURL string) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{
		BaseURL:    baseURL,
		BaseRouter: m,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options StdHTTPServerOptions) http.Handler {
	m := options.BaseRouter

	if m == nil {
		m = http.NewServeMux()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	m.HandleFunc("POST "+options.BaseURL+"/signup/v1/sessions", wrapper.StartSession)
	m.HandleFunc("DELETE "+options.BaseURL+"/signup/v1/sessions/{id}", wrapper.CancelSession)
	m.HandleFunc("GET "+options.BaseURL+"/signup/v1/sessions/{id}", wrapper.GetSession)
	m.HandleFunc("POST "+options.BaseURL+"/signup/v1/sessions/{id}/confirmation", wrapper.ConfirmCode)
	m.HandleFunc("POST "+options.BaseURL+"/signup/v1/sessions/{id}/registration", wrapper.SubmitRegistration)
	m.HandleFunc("POST "+options.BaseURL+"/signup/v1/sessions/{id}/resend", wrapper.ResendCode)

	return m
}

type StartSessionRequestObject struct {
}

type StartSessionResponseObject interface {
	VisitStartSessionResponse(w http.ResponseWriter) error
}

type StartSession201JSONResponse SessionResponse

func (response StartSession201JSONResponse) VisitStartSessionResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(201)

	return json.NewEncoder(w).Encode(response)
}

type StartSession500JSONResponse Error

func (response StartSession500JSONResponse) VisitStartSessionResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(500)

	return json.NewEncoder(w).Encode(response)
}

type CancelSessionRequestObject struct {
	Id SessionId `json:"id"`
}

type CancelSessionResponseObject interface {
	VisitCancelSessionResponse(w http.ResponseWriter) error
}

type CancelSession200JSONResponse SessionResponse

func (response CancelSession200JSONResponse) VisitCancelSessionResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type CancelSession404JSONResponse Error

func (response CancelSession404JSONResponse) VisitCancelSessionResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type CancelSession409JSONResponse Error

func (response CancelSession409JSONResponse) VisitCancelSessionResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(409)

	return json.NewEncoder(w).Encode(response)
}

type CancelSession500JSONResponse Error

func (response CancelSession500JSONResponse) VisitCancelSessionResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(500)

	return json.NewEncoder(w).Encode(response)
}

type GetSessionRequestObject struct {
	Id SessionId `json:"id"`
}

type GetSessionResponseObject interface {
	VisitGetSessionResponse(w http.ResponseWriter) error
}

type GetSession200JSONResponse SessionResponse

func (response GetSession200JSONResponse) VisitGetSessionResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetSession404JSONResponse Error

func (response GetSession404JSONResponse) VisitGetSessionResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type GetSession500JSONResponse Error

func (response GetSession500JSONResponse) VisitGetSessionResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(500)

	return json.NewEncoder(w).Encode(response)
}

type ConfirmCodeRequestObject struct {
	Id   SessionId `json:"id"`
	Body *ConfirmCodeJSONRequestBody
}

type ConfirmCodeResponseObject interface {
	VisitConfirmCodeResponse(w http.ResponseWriter) error
}

type ConfirmCode200JSONResponse SessionResponse

func (response ConfirmCode200JSONResponse) VisitConfirmCodeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type ConfirmCode400JSONResponse Error

func (response ConfirmCode400JSONResponse) VisitConfirmCodeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(400)

	return json.NewEncoder(w).Encode(response)
}

type ConfirmCode404JSONResponse Error

func (response ConfirmCode404JSONResponse) VisitConfirmCodeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type ConfirmCode409JSONResponse Error

func (response ConfirmCode409JSONResponse) VisitConfirmCodeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(409)

	return json.NewEncoder(w).Encode(response)
}

type ConfirmCode422JSONResponse Error

func (response ConfirmCode422JSONResponse) VisitConfirmCodeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(422)

	return json.NewEncoder(w).Encode(response)
}

type ConfirmCode500JSONResponse Error

func (response ConfirmCode500JSONResponse) VisitConfirmCodeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(500)

	return json.NewEncoder(w).Encode(response)
}

type ConfirmCode502JSONResponse Error

func (response ConfirmCode502JSONResponse) VisitConfirmCodeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(502)

	return json.NewEncoder(w).Encode(response)
}

type SubmitRegistrationRequestObject struct {
	Id   SessionId `json:"id"`
	Body *SubmitRegistrationJSONRequestBody
}

type SubmitRegistrationResponseObject interface {
	VisitSubmitRegistrationResponse(w http.ResponseWriter) error
}

type SubmitRegistration200JSONResponse SessionResponse

func (response SubmitRegistration200JSONResponse) VisitSubmitRegistrationResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type SubmitRegistration400JSONResponse Error

func (response SubmitRegistration400JSONResponse) VisitSubmitRegistrationResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(400)

	return json.NewEncoder(w).Encode(response)
}

type SubmitRegistration404JSONResponse Error

func (response SubmitRegistration404JSONResponse) VisitSubmitRegistrationResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type SubmitRegistration409JSONResponse Error

func (response SubmitRegistration409JSONResponse) VisitSubmitRegistrationResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(409)

	return json.NewEncoder(w).Encode(response)
}

type SubmitRegistration422JSONResponse Error

func (response SubmitRegistration422JSONResponse) VisitSubmitRegistrationResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(422)

	return json.NewEncoder(w).Encode(response)
}

type SubmitRegistration500JSONResponse Error

func (response SubmitRegistration500JSONResponse) VisitSubmitRegistrationResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(500)

	return json.NewEncoder(w).Encode(response)
}

type SubmitRegistration502JSONResponse Error

func (response SubmitRegistration502JSONResponse) VisitSubmitRegistrationResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(502)

	return json.NewEncoder(w).Encode(response)
}

type ResendCodeRequestObject struct {
	Id SessionId `json:"id"`
}

type ResendCodeResponseObject interface {
	VisitResendCodeResponse(w http.ResponseWriter) error
}

type ResendCode200JSONResponse SessionResponse

func (response ResendCode200JSONResponse) VisitResendCodeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type ResendCode404JSONResponse Error

func (response ResendCode404JSONResponse) VisitResendCodeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type ResendCode409JSONResponse Error

func (response ResendCode409JSONResponse) VisitResendCodeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(409)

	return json.NewEncoder(w).Encode(response)
}

type ResendCode422JSONResponse Error

func (response ResendCode422JSONResponse) VisitResendCodeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(422)

	return json.NewEncoder(w).Encode(response)
}

type ResendCode500JSONResponse Error

func (response ResendCode500JSONResponse) VisitResendCodeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(500)

	return json.NewEncoder(w).Encode(response)
}

type ResendCode502JSONResponse Error

func (response ResendCode502JSONResponse) VisitResendCodeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(502)

	return json.NewEncoder(w).Encode(response)
}

// StrictServerInterface represents all server handlers.
type StrictServerInterface interface {

	// (POST /signup/v1/sessions)
	StartSession(ctx context.Context, request StartSessionRequestObject) (StartSessionResponseObject, error)

	// (DELETE /signup/v1/sessions/{id})
	CancelSession(ctx context.Context, request CancelSessionRequestObject) (CancelSessionResponseObject, error)

	// (GET /signup/v1/sessions/{id})
	GetSession(ctx context.Context, request GetSessionRequestObject) (GetSessionResponseObject, error)

	// (POST /signup/v1/sessions/{id}/confirmation)
	ConfirmCode(ctx context.Context, request ConfirmCodeRequestObject) (ConfirmCodeResponseObject, error)

	// (POST /signup/v1/sessions/{id}/registration)
	SubmitRegistration(ctx context.Context, request SubmitRegistrationRequestObject) (SubmitRegistrationResponseObject, error)

	// (POST /signup/v1/sessions/{id}/resend)
	ResendCode(ctx context.Context, request ResendCodeRequestObject) (ResendCodeResponseObject, error)
}

type StrictHandlerFunc = strictnethttp.StrictHTTPHandlerFunc
type StrictMiddlewareFunc = strictnethttp.StrictHTTPMiddlewareFunc

type StrictHTTPServerOptions struct {
	RequestErrorHandlerFunc  func(w http.ResponseWriter, r *http.Request, err error)
	ResponseErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

func NewStrictHandler(ssi StrictServerInterface, middlewares []StrictMiddlewareFunc) ServerInterface {
	return &strictHandler{ssi: ssi, middlewares: middlewares, options: StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		},
	}}
}

func NewStrictHandlerWithOptions(ssi StrictServerInterface, middlewares []StrictMiddlewareFunc, options StrictHTTPServerOptions) ServerInterface {
	return &strictHandler{ssi: ssi, middlewares: middlewares, options: options}
}

type strictHandler struct {
	ssi         StrictServerInterface
	middlewares []StrictMiddlewareFunc
	options     StrictHTTPServerOptions
}

// StartSession operation middleware
func (sh *strictHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var request StartSessionRequestObject

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.StartSession(ctx, request.(StartSessionRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "StartSession")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(StartSessionResponseObject); ok {
		if err := validResponse.VisitStartSessionResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// CancelSession operation middleware
func (sh *strictHandler) CancelSession(w http.ResponseWriter, r *http.Request, id SessionId) {
	var request CancelSessionRequestObject

	request.Id = id

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.CancelSession(ctx, request.(CancelSessionRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "CancelSession")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(CancelSessionResponseObject); ok {
		if err := validResponse.VisitCancelSessionResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetSession operation middleware
func (sh *strictHandler) GetSession(w http.ResponseWriter, r *http.Request, id SessionId) {
	var request GetSessionRequestObject

	request.Id = id

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetSession(ctx, request.(GetSessionRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetSession")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetSessionResponseObject); ok {
		if err := validResponse.VisitGetSessionResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// ConfirmCode operation middleware
func (sh *strictHandler) ConfirmCode(w http.ResponseWriter, r *http.Request, id SessionId) {
	var request ConfirmCodeRequestObject

	request.Id = id

	var body ConfirmCodeJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't decode JSON body: %w", err))
		return
	}
	request.Body = &body

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.ConfirmCode(ctx, request.(ConfirmCodeRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "ConfirmCode")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(ConfirmCodeResponseObject); ok {
		if err := validResponse.VisitConfirmCodeResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// SubmitRegistration operation middleware
func (sh *strictHandler) SubmitRegistration(w http.ResponseWriter, r *http.Request, id SessionId) {
	var request SubmitRegistrationRequestObject

	request.Id = id

	var body SubmitRegistrationJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't decode JSON body: %w", err))
		return
	}
	request.Body = &body

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.SubmitRegistration(ctx, request.(SubmitRegistrationRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "SubmitRegistration")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(SubmitRegistrationResponseObject); ok {
		if err := validResponse.VisitSubmitRegistrationResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// ResendCode operation middleware
func (sh *strictHandler) ResendCode(w http.ResponseWriter, r *http.Request, id SessionId) {
	var request ResendCodeRequestObject

	request.Id = id

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.ResendCode(ctx, request.(ResendCodeRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "ResendCode")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(ResendCodeResponseObject); ok {
		if err := validResponse.VisitResendCodeResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// Base64 encoded, gzipped, json marshaled Swagger object
var swaggerSpec = []string{

	"H4sIAAAAAAAC/+xYUW/jNgz+Kwa3R612096A+a0rrkOAIStSbHsogkG1mEQHWdJJcu6Kwv99kOTGTuzk",
	"0t017Q59ii2TIvmR/CTmAQpVaiVROgv5A2hqaIkOTXi7QWu5kmPmX7iEHDR1SyAgaYmQA2dAwODHihtk",
	"kDtTIQFbLLGkXmOuTEkd5FBVQdLda69lneFyAXVdPwoHY5dKzrlX4EpO8WOF1vllyhj3S1RcG6XROI4W",
	"8jkVFgnozpIPhaH/Lenn31Eu3BLys1Hf7HpF3X3AwkFN4L0xyoT4BzdEWZWQ38JY6sr9RQVnwcuoRWCi",
	"3JWqpA/xb6Pk4npJLQKBPzSaIDiWV4Ivlg4IXBu14gzNFL1tZJ2lPyVdUS7onfDKY+nQSCqikVkvDAJz",
	"joKFz8FZ7rAMDz8anEMOP6RtatMG5/RqrQMtDtQYeu/fS7SWLkLIPWtSOV7gl/afRCmf2Vg7X1JoSiyk",
	"pa2k2wh969FsIGmdWHqZC9gMxrE7xi0P4hb7XZisQdk0L3CFols5XM4VELBVUaC1QAB3pvVgB6OR/Q5O",
	"ccGtM1/RVFhSLi4YM97v7ebKhsqSllzcTwJDbIiP3v08IL7gK5QHS+ulkjipyjs0/63Tb9qy3Op1g9Qh",
	"u3AbzMWow58cLxEGnNmGpi/wWXOD9il7bqK3H63eV84OoF0C/JGOOgVqQqFgECFQRC6OLwYtSuafZ4MZ",
	"8WTX2alQQmDhoi79RLl//KfosHtrIPBfQWWBQiDbsf9Gxve3RIhXN/TbZrSbidnuopii1UragX5+Kvmp",
	"yhWq3ILl0Ii/kjkf1fuB1iH3cxVw5E74b+PLi4ukRA9vYvlCJpUGAis00QU4PclOshCSRkk1hxzOTrKT",
	"M48zdcuATuoVK52uTtPGeLxLqEg2an0MMsjhxlHjHn0PxRUwDxqj7DQeu9KhjESlteBF0E4/2AhKe8E4",
	"AJ51TkP0DG1huHYxtkYksd4lZD7Kd1n2zTxojtm+3fWHmgxhlz5wVvvNGQp02IfwMpTPTgyzl8CwLema",
	"wHl2fjQUvbVfjmjtuBVCYIEDTfQbuteR/svKGJQusW0rOTx+CRw7Kd0x6XZ4u1Ykbceoeran5dONM3Jr",
	"GHuaFbKDfJsZ6zJerk28EP6q2P03Q29oiqs3jyg/JtYvW7bv/c0taY/kULDZUTnr+2XI89HoO219b230",
	"Ou4HqelMds9DFjfVXcldd4J8Js4YGlJfH2dMmwkJGUmaqSaZK5O4JSZd5k7CXxdvjPLGKP87RvFz/vNw",
	"yTTsvb53vFwXT/BTaNDEemtvffPWN4f1TV3/GwAA//8ETKc6KxkAAA==",
}

// GetSwagger returns the content of the embedded swagger specification file
// or error if failed to decode
func decodeSpec() ([]byte, error) {
	zipped, err := base64.StdEncoding.DecodeString(strings.Join(swaggerSpec, ""))
	if err != nil {
		return nil, fmt.Errorf("error base64 decoding spec: %w", err)
	}
	zr, err := gzip.NewReader(bytes.NewReader(zipped))
	if err != nil {
		return nil, fmt.Errorf("error decompressing spec: %w", err)
	}
	var buf bytes.Buffer
	_, err = buf.ReadFrom(zr)
	if err != nil {
		return nil, fmt.Errorf("error decompressing spec: %w", err)
	}

	return buf.Bytes(), nil
}

var rawSpec = decodeSpecCached()

// a naive cached of a decoded swagger spec
func decodeSpecCached() func() ([]byte, error) {
	data, err := decodeSpec()
	return func() ([]byte, error) {
		return data, err
	}
}

// Constructs a synthetic filesystem for resolving external references when loading openapi specifications.
func PathToRawSpec(pathToFile string) map[string]func() ([]byte, error) {
	res := make(map[string]func() ([]byte, error))
	if len(pathToFile) > 0 {
		res[pathToFile] = rawSpec
	}

	return res
}

// GetSwagger returns the Swagger specification corresponding to the generated code
// in this file. The external references of Swagger specification are resolved.
// The logic of resolving external references is tightly connected to "import-mapping" feature.
// Externally referenced files must be embedded in the corresponding golang packages.
// Urls can be supported but this task was out of the scope.
func GetSwagger() (swagger *openapi3.T, err error) {
	resolvePath := PathToRawSpec("")

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true
	loader.ReadFromURIFunc = func(loader *openapi3.Loader, url *url.URL) ([]byte, error) {
		pathToFile := url.String()
		pathToFile = path.Clean(pathToFile)
		getSpec, ok := resolvePath[pathToFile]
		if !ok {
			err1 := fmt.Errorf("path not found: %s", pathToFile)
			return nil, err1
		}
		return getSpec()
	}
	var specData []byte
	specData, err = rawSpec()
	if err != nil {
		return
	}
	swagger, err = loader.LoadFromData(specData)
	if err != nil {
		return
	}
	return
}
