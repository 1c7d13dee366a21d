package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	apperrors "networth-tracker/internal/common/errors"
	"networth-tracker/internal/common/middleware"
	"networth-tracker/internal/features/onboarding/models"
	"networth-tracker/internal/features/onboarding/service"
)

type OnboardingHandler struct {
	service service.OnboardingService
	log     zerolog.Logger
}

func NewOnboardingHandler(service service.OnboardingService, log zerolog.Logger) *OnboardingHandler {
	return &OnboardingHandler{service: service, log: log}
}

func (h *OnboardingHandler) RegisterRoutes(router *gin.RouterGroup) {
	onboarding := router.Group("/onboarding")
	{
		onboarding.GET("", h.getStatus)
		onboarding.POST("/credentials/email", h.submitEmail)
		onboarding.POST("/credentials/federated", h.submitFederated)
		onboarding.PATCH("/profile", h.editProfile)
		onboarding.POST("/profile", h.completeProfile)
	}
}

// @Summary Get onboarding status
// @Description Current step, the identity carried from the credential step, the profile form and its field errors
// @Tags onboarding
// @Produce json
// @Success 200 {object} models.Status
// @Router /onboarding [get]
func (h *OnboardingHandler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status())
}

// @Summary Submit email credentials
// @Description Sign up (password confirmation required) or sign in with email and password
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body models.EmailCredentials true "Credentials"
// @Success 200 {object} models.Status
// @Failure 400 {object} middleware.ErrorResponse "Missing fields, invalid email or password mismatch"
// @Failure 409 {object} middleware.ErrorResponse "Wrong step or already onboarded"
// @Router /onboarding/credentials/email [post]
func (h *OnboardingHandler) submitEmail(c *gin.Context) {
	var req models.EmailCredentials
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("Invalid request body").WithDetail("reason", err.Error()))
		return
	}

	st, err := h.service.SubmitEmail(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(toAppError(err))
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary Continue with federated sign-in
// @Description Stub of a third-party sign-in; no credentials are exchanged
// @Tags onboarding
// @Produce json
// @Success 200 {object} models.Status
// @Failure 409 {object} middleware.ErrorResponse "Wrong step or already onboarded"
// @Router /onboarding/credentials/federated [post]
func (h *OnboardingHandler) submitFederated(c *gin.Context) {
	st, err := h.service.SubmitFederated(c.Request.Context())
	if err != nil {
		_ = c.Error(toAppError(err))
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary Edit profile fields
// @Description Updates the given fields and clears their errors without submitting
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body models.ProfilePatch true "Fields to change"
// @Success 200 {object} models.Status
// @Failure 400 {object} middleware.ErrorResponse "Invalid request body"
// @Failure 409 {object} middleware.ErrorResponse "Wrong step"
// @Router /onboarding/profile [patch]
func (h *OnboardingHandler) editProfile(c *gin.Context) {
	var patch models.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("Invalid request body").WithDetail("reason", err.Error()))
		return
	}

	st, err := h.service.EditProfile(c.Request.Context(), patch)
	if err != nil {
		_ = c.Error(toAppError(err))
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary Complete profile
// @Description Applies the optional body, validates every field and completes onboarding
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body models.ProfilePatch false "Fields to change before submitting"
// @Success 200 {object} sessionmodels.UserRecord
// @Failure 400 {object} middleware.ValidationErrorResponse "One error per invalid field"
// @Failure 409 {object} middleware.ErrorResponse "Wrong step"
// @Router /onboarding/profile [post]
func (h *OnboardingHandler) completeProfile(c *gin.Context) {
	var patch models.ProfilePatch
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&patch); err != nil {
			_ = c.Error(apperrors.NewBadRequestError("Invalid request body").WithDetail("reason", err.Error()))
			return
		}
	}

	user, err := h.service.CompleteProfile(c.Request.Context(), patch)
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		middleware.SendValidationErrors(c, fieldErrors(verr), h.log)
		return
	case err != nil:
		_ = c.Error(toAppError(err))
		return
	}
	c.JSON(http.StatusOK, user)
}

func fieldErrors(verr *models.ValidationError) []apperrors.AppError {
	out := make([]apperrors.AppError, 0, len(verr.Fields))
	for _, f := range verr.Fields.Fields() {
		out = append(out, *apperrors.NewValidationError(string(f), verr.Fields[f]))
	}
	return out
}

func toAppError(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, models.ErrMissingCredentials):
		return apperrors.Wrap(err, apperrors.ErrCodeMissingCredentials, models.MsgMissingCredentials)
	case errors.Is(err, models.ErrPasswordMismatch):
		return apperrors.Wrap(err, apperrors.ErrCodePasswordMismatch, models.MsgPasswordMismatch)
	case errors.Is(err, models.ErrInvalidEmail):
		return apperrors.NewValidationError("email", models.MsgInvalidEmail)
	case errors.Is(err, models.ErrWrongStep):
		return apperrors.Wrap(err, apperrors.ErrCodeWrongStep, "Operation not allowed in the current onboarding step")
	case errors.Is(err, models.ErrAlreadyOnboarded):
		return apperrors.NewConflictError("session", "already onboarded")
	default:
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "Onboarding failed")
	}
}
