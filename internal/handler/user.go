package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type sendOTPInput struct {
	EmailID string `json:"emailId" binding:"required,email"`
}

func (h *Handler) userSendOTP(c *gin.Context) {
	var input sendOTPInput
	if !h.bindJSON(c, &input) {
		return
	}

	if err := h.services.User.SendMailOTP(c.Request.Context(), input.EmailID); err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondSuccess(c, "OTP sent successfully", nil)
}

type verifyOTPInput struct {
	EmailID string `json:"emailId" binding:"required,email"`
	OTP     string `json:"otp" binding:"required,numeric,min=4,max=6"`
}

func (h *Handler) userVerifyOTP(c *gin.Context) {
	var input verifyOTPInput
	if !h.bindJSON(c, &input) {
		return
	}

	otp, err := strconv.Atoi(input.OTP)
	if err != nil {
		respondValidationErrors(c, []FieldError{{Field: "otp", Message: "otp must be numeric"}})
		return
	}

	data, err := h.services.User.VerifyMailOTP(c.Request.Context(), input.EmailID, otp)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondSuccess(c, "OTP verified successfully", data)
}

type googleVerifyInput struct {
	AccessToken string `json:"access_token" binding:"required"`
}

func (h *Handler) userGoogleVerify(c *gin.Context) {
	var input googleVerifyInput
	if !h.bindJSON(c, &input) {
		return
	}

	data, err := h.services.User.VerifyGoogleLogin(c.Request.Context(), input.AccessToken)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondSuccess(c, "Login successful", data)
}

func (h *Handler) userProfile(c *gin.Context) {
	userID := c.GetString(ctxUserID)

	data, err := h.services.User.Profile(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondSuccess(c, "User profile retrieved successfully", data)
}
