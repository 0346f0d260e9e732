package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/International-Combat-Archery-Alliance/member-signup/ptr"
	"github.com/International-Combat-Archery-Alliance/member-signup/signup"
	"github.com/google/uuid"
)

func sessionToApiSession(session signup.Session, phase signup.Phase) Session {
	s := Session{
		Id:           session.ID,
		Phase:        SessionPhase(phase.String()),
		GivenName:    ptr.NonEmpty(session.GivenName),
		FamilyName:   ptr.NonEmpty(session.FamilyName),
		EmailAddress: ptr.NonEmpty(session.EmailAddress),
		PhoneNumber:  ptr.NonEmpty(session.PhoneNumber),
		CreatedAt:    session.CreatedAt,
		ExpiresAt:    session.ExpiresAt,
	}
	if session.InFlight != signup.NO_OPERATION {
		inFlight := SessionInFlight(session.InFlight.String())
		s.InFlight = &inFlight
	}
	return s
}

func noticeToApiNotice(notice *signup.Notice) *Notice {
	if notice == nil {
		return nil
	}
	return &Notice{Level: NoticeLevel(notice.Level.String()), Message: notice.Message}
}

func outcomeToResponse(outcome signup.Outcome) SessionResponse {
	resp := SessionResponse{
		Session: sessionToApiSession(outcome.Session, outcome.Phase),
		Notice:  noticeToApiNotice(outcome.Notice),
	}
	if outcome.Phase.IsTerminal() {
		result := SessionResponseOutcome(outcome.Phase.String())
		resp.Outcome = &result
	}
	return resp
}

func apiRegistrationToFields(body RegistrationRequest) signup.Fields {
	return signup.Fields{
		GivenName:    ptr.Value(body.GivenName),
		FamilyName:   ptr.Value(body.FamilyName),
		EmailAddress: ptr.Value(body.EmailAddress),
		PhoneNumber:  ptr.Value(body.PhoneNumber),
	}
}

// errorToResponse maps a controller error to a status and body. The outcome
// returned next to the error, if any, supplies the notice and session.
func errorToResponse(err error, outcome signup.Outcome) (int, Error) {
	resp := Error{
		Code:    ErrorCodeInternalError,
		Message: "Something went wrong",
		Notice:  noticeToApiNotice(outcome.Notice),
	}
	if outcome.Session.ID != uuid.Nil {
		s := sessionToApiSession(outcome.Session, outcome.Phase)
		resp.Session = &s
	}

	var signupErr *signup.Error
	if !errors.As(err, &signupErr) {
		return http.StatusInternalServerError, resp
	}

	switch signupErr.Reason {
	case signup.REASON_INVALID_FIELDS:
		resp.Code = ErrorCodeInputValidationError
		resp.Message = "One or more fields are invalid"
		var fieldErrs signup.ValidationErrors
		if errors.As(err, &fieldErrs) {
			apiFieldErrs := make([]FieldError, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				apiFieldErrs = append(apiFieldErrs, FieldError{Field: fe.Field, Message: fe.Message})
			}
			resp.FieldErrors = &apiFieldErrs
		}
		return http.StatusBadRequest, resp
	case signup.REASON_SESSION_DOES_NOT_EXIST:
		resp.Code = ErrorCodeNotFound
		resp.Message = "Session not found"
		return http.StatusNotFound, resp
	case signup.REASON_WRONG_PHASE:
		resp.Code = ErrorCodeWrongPhase
		resp.Message = signupErr.Message
		return http.StatusConflict, resp
	case signup.REASON_OPERATION_IN_FLIGHT, signup.REASON_VERSION_CONFLICT:
		resp.Code = ErrorCodeOperationInFlight
		resp.Message = "Another request for this session is in progress"
		return http.StatusConflict, resp
	case signup.REASON_PROVIDER_REJECTED:
		resp.Code = ErrorCodeProviderRejected
		resp.Message = signupErr.Message
		return http.StatusUnprocessableEntity, resp
	case signup.REASON_PROVIDER_UNAVAILABLE:
		resp.Code = ErrorCodeProviderUnavailable
		resp.Message = signupErr.Message
		return http.StatusBadGateway, resp
	}

	return http.StatusInternalServerError, resp
}

// writeError is for the responses written outside the generated handlers:
// request validation, parameter binding and body decoding failures.
func (a *API) writeError(w http.ResponseWriter, r *http.Request, status int, e Error) {
	jsonBody, err := json.Marshal(&e)
	if err != nil {
		getLoggerFromCtx(r.Context(), a.logger).Error("failed to marshal error response", slog.String("error", err.Error()))
		jsonBody = []byte("{\"message\": \"Something went wrong\", \"code\": \"InternalError\"}")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(jsonBody)
}

func (a *API) requestErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	getLoggerFromCtx(r.Context(), a.logger).Warn("Invalid request", slog.String("error", err.Error()))

	message := "Invalid body"
	var paramErr *InvalidParamFormatError
	if errors.As(err, &paramErr) && paramErr.ParamName == "id" {
		message = "Session ID must be a UUID"
	}

	a.writeError(w, r, http.StatusBadRequest, Error{
		Code:    ErrorCodeInputValidationError,
		Message: message,
	})
}

func (a *API) responseErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	getLoggerFromCtx(r.Context(), a.logger).Error("Failed to write response", slog.String("error", err.Error()))

	a.writeError(w, r, http.StatusInternalServerError, Error{
		Code:    ErrorCodeInternalError,
		Message: "Something went wrong",
	})
}
