package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/International-Combat-Archery-Alliance/member-signup/signup"
)

func (a *API) StartSession(ctx context.Context, request StartSessionRequestObject) (StartSessionResponseObject, error) {
	outcome, err := a.flow.StartSession(ctx)
	if err != nil {
		_, e := a.failure(ctx, "start", err, outcome)
		return StartSession500JSONResponse(e), nil
	}

	a.metrics.observeOperation("start", "ok")
	return StartSession201JSONResponse(outcomeToResponse(outcome)), nil
}

func (a *API) GetSession(ctx context.Context, request GetSessionRequestObject) (GetSessionResponseObject, error) {
	session, err := a.flow.GetSession(ctx, request.Id)
	if err != nil {
		status, e := a.failure(ctx, "get", err, signup.Outcome{})
		if status == http.StatusNotFound {
			return GetSession404JSONResponse(e), nil
		}
		return GetSession500JSONResponse(e), nil
	}

	return GetSession200JSONResponse{Session: sessionToApiSession(session, session.Phase)}, nil
}

func (a *API) SubmitRegistration(ctx context.Context, request SubmitRegistrationRequestObject) (SubmitRegistrationResponseObject, error) {
	if request.Body == nil {
		a.metrics.observeOperation("register", string(ErrorCodeInputValidationError))
		return SubmitRegistration400JSONResponse{
			Code:    ErrorCodeInputValidationError,
			Message: "Must specify a JSON body in the request",
		}, nil
	}

	outcome, err := a.flow.SubmitRegistration(ctx, request.Id, apiRegistrationToFields(*request.Body))
	if err != nil {
		status, e := a.failure(ctx, "register", err, outcome)
		switch status {
		case http.StatusBadRequest:
			return SubmitRegistration400JSONResponse(e), nil
		case http.StatusNotFound:
			return SubmitRegistration404JSONResponse(e), nil
		case http.StatusConflict:
			return SubmitRegistration409JSONResponse(e), nil
		case http.StatusUnprocessableEntity:
			return SubmitRegistration422JSONResponse(e), nil
		case http.StatusBadGateway:
			return SubmitRegistration502JSONResponse(e), nil
		}
		return SubmitRegistration500JSONResponse(e), nil
	}

	a.metrics.observeOperation("register", "ok")
	return SubmitRegistration200JSONResponse(outcomeToResponse(outcome)), nil
}

func (a *API) ConfirmCode(ctx context.Context, request ConfirmCodeRequestObject) (ConfirmCodeResponseObject, error) {
	var code string
	if request.Body != nil && request.Body.Code != nil {
		code = *request.Body.Code
	}

	outcome, err := a.flow.ConfirmCode(ctx, request.Id, code)
	if err != nil {
		status, e := a.failure(ctx, "confirm", err, outcome)
		switch status {
		case http.StatusBadRequest:
			return ConfirmCode400JSONResponse(e), nil
		case http.StatusNotFound:
			return ConfirmCode404JSONResponse(e), nil
		case http.StatusConflict:
			return ConfirmCode409JSONResponse(e), nil
		case http.StatusUnprocessableEntity:
			return ConfirmCode422JSONResponse(e), nil
		case http.StatusBadGateway:
			return ConfirmCode502JSONResponse(e), nil
		}
		return ConfirmCode500JSONResponse(e), nil
	}

	a.metrics.observeOperation("confirm", "ok")
	return ConfirmCode200JSONResponse(outcomeToResponse(outcome)), nil
}

func (a *API) ResendCode(ctx context.Context, request ResendCodeRequestObject) (ResendCodeResponseObject, error) {
	outcome, err := a.flow.ResendCode(ctx, request.Id)
	if err != nil {
		status, e := a.failure(ctx, "resend", err, outcome)
		switch status {
		case http.StatusNotFound:
			return ResendCode404JSONResponse(e), nil
		case http.StatusConflict:
			return ResendCode409JSONResponse(e), nil
		case http.StatusUnprocessableEntity:
			return ResendCode422JSONResponse(e), nil
		case http.StatusBadGateway:
			return ResendCode502JSONResponse(e), nil
		}
		return ResendCode500JSONResponse(e), nil
	}

	a.metrics.observeOperation("resend", "ok")
	return ResendCode200JSONResponse(outcomeToResponse(outcome)), nil
}

func (a *API) CancelSession(ctx context.Context, request CancelSessionRequestObject) (CancelSessionResponseObject, error) {
	outcome, err := a.flow.Cancel(ctx, request.Id)
	if err != nil {
		status, e := a.failure(ctx, "cancel", err, outcome)
		switch status {
		case http.StatusNotFound:
			return CancelSession404JSONResponse(e), nil
		case http.StatusConflict:
			return CancelSession409JSONResponse(e), nil
		}
		return CancelSession500JSONResponse(e), nil
	}

	a.metrics.observeOperation("cancel", "ok")
	return CancelSession200JSONResponse(outcomeToResponse(outcome)), nil
}

// failure maps err to a response body and records it against operation.
func (a *API) failure(ctx context.Context, operation string, err error, outcome signup.Outcome) (int, Error) {
	status, resp := errorToResponse(err, outcome)
	a.metrics.observeOperation(operation, string(resp.Code))

	logger := getLoggerFromCtx(ctx, a.logger)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "Sign up operation failed", slog.String("error", err.Error()))
	} else {
		logger.WarnContext(ctx, "Sign up operation refused", slog.String("code", string(resp.Code)), slog.String("error", err.Error()))
	}

	return status, resp
}
