package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/DiegoRoNa/uptask-api/internal/application/auth"
	"github.com/DiegoRoNa/uptask-api/internal/infrastructure/http/middleware"
)

type AuthHandler struct {
	register       *auth.RegisterUser
	confirm        *auth.ConfirmAccount
	login          *auth.Login
	requestCode    *auth.RequestConfirmationCode
	forgotPassword *auth.ForgotPassword
	validateToken  *auth.ValidateResetToken
	resetPassword  *auth.ResetPassword
	updateProfile  *auth.UpdateProfile
	changePassword *auth.ChangePassword
	checkPassword  *auth.CheckPassword
	validate       *validator.Validate
	log            zerolog.Logger
}

func NewAuthHandler(register *auth.RegisterUser, confirm *auth.ConfirmAccount, login *auth.Login, requestCode *auth.RequestConfirmationCode, forgotPassword *auth.ForgotPassword, validateToken *auth.ValidateResetToken, resetPassword *auth.ResetPassword, updateProfile *auth.UpdateProfile, changePassword *auth.ChangePassword, checkPassword *auth.CheckPassword, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		register:       register,
		confirm:        confirm,
		login:          login,
		requestCode:    requestCode,
		forgotPassword: forgotPassword,
		validateToken:  validateToken,
		resetPassword:  resetPassword,
		updateProfile:  updateProfile,
		changePassword: changePassword,
		checkPassword:  checkPassword,
		validate:       validator.New(),
		log:            log,
	}
}

func (h *AuthHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name                 string `json:"name" validate:"required,max=200"`
		Email                string `json:"email" validate:"required,email,max=254"`
		Password             string `json:"password" validate:"required,min=8,max=128"`
		PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	name := SanitizeText(body.Name)
	email := SanitizeEmail(body.Email)
	password := SanitizePassword(body.Password)
	if name == "" || email == "" || password == "" {
		writeErr(w, http.StatusBadRequest, "", "invalid name, email or password length")
		return
	}
	result, err := h.register.Execute(r.Context(), auth.RegisterUserInput{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		AuditLog(h.log, r, "user.register", "", false, err.Error())
		middleware.RecordAuthAttempt("register", false)
		if writeDomainErr(w, err) {
			return
		}
		h.log.Error().Err(err).Msg("register failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	AuditLog(h.log, r, "user.register", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("register", true)
	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "account created, check your email to confirm it",
	})
}

func (h *AuthHandler) ConfirmAccount(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	_, err := h.confirm.Execute(r.Context(), auth.ConfirmAccountInput{Token: body.Token})
	if err != nil {
		AuditLog(h.log, r, "user.confirm", "", false, err.Error())
		middleware.RecordAuthAttempt("confirm", false)
		if writeDomainErr(w, err) {
			return
		}
		h.log.Error().Err(err).Msg("confirm account failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	AuditLog(h.log, r, "user.confirm", "", true, "")
	middleware.RecordAuthAttempt("confirm", true)
	writeJSON(w, http.StatusOK, map[string]string{"message": "account confirmed"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	email := SanitizeEmail(body.Email)
	password := SanitizePassword(body.Password)
	if email == "" || password == "" {
		writeErr(w, http.StatusBadRequest, "", "invalid email or password length")
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{
		Email:    email,
		Password: password,
	})
	if err != nil {
		AuditLog(h.log, r, "user.login", "", false, err.Error())
		middleware.RecordAuthAttempt("login", false)
		if writeDomainErr(w, err) {
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	AuditLog(h.log, r, "user.login", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("login", true)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": result.SessionToken,
		"user":  newUserView(result.User),
	})
}

func (h *AuthHandler) RequestConfirmationCode(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email" validate:"required,email,max=254"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	email := SanitizeEmail(body.Email)
	if email == "" {
		writeErr(w, http.StatusBadRequest, "", "invalid email")
		return
	}
	_, err := h.requestCode.Execute(r.Context(), auth.RequestConfirmationCodeInput{Email: email})
	if err != nil {
		if writeDomainErr(w, err) {
			return
		}
		h.log.Error().Err(err).Msg("request confirmation code failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "a new token was sent to your email"})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email" validate:"required,email,max=254"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	email := SanitizeEmail(body.Email)
	if email == "" {
		writeErr(w, http.StatusBadRequest, "", "invalid email")
		return
	}
	_, err := h.forgotPassword.Execute(r.Context(), auth.ForgotPasswordInput{Email: email})
	if err != nil {
		if writeDomainErr(w, err) {
			return
		}
		h.log.Error().Err(err).Msg("forgot password failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "check your email for instructions"})
}

func (h *AuthHandler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	_, err := h.validateToken.Execute(r.Context(), auth.ValidateResetTokenInput{Token: body.Token})
	if err != nil {
		if writeDomainErr(w, err) {
			return
		}
		h.log.Error().Err(err).Msg("validate token failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "token is valid, set your new password"})
}

func (h *AuthHandler) UpdatePasswordWithToken(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		writeErr(w, http.StatusBadRequest, "", "missing token")
		return
	}
	var body struct {
		Password             string `json:"password" validate:"required,min=8,max=128"`
		PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	password := SanitizePassword(body.Password)
	if password == "" {
		writeErr(w, http.StatusBadRequest, "", "invalid password length")
		return
	}
	_, err := h.resetPassword.Execute(r.Context(), auth.ResetPasswordInput{
		Token:       token,
		NewPassword: password,
	})
	if err != nil {
		AuditLog(h.log, r, "user.password_reset", "", false, err.Error())
		middleware.RecordAuthAttempt("password_reset", false)
		if writeDomainErr(w, err) {
			return
		}
		h.log.Error().Err(err).Msg("reset password failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	AuditLog(h.log, r, "user.password_reset", "", true, "")
	middleware.RecordAuthAttempt("password_reset", true)
	writeJSON(w, http.StatusOK, map[string]string{"message": "password has been reset"})
}

func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, newUserView(user))
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	var body struct {
		Name  string `json:"name" validate:"required,max=200"`
		Email string `json:"email" validate:"required,email,max=254"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	name := SanitizeText(body.Name)
	email := SanitizeEmail(body.Email)
	if name == "" || email == "" {
		writeErr(w, http.StatusBadRequest, "", "invalid name or email")
		return
	}
	_, err := h.updateProfile.Execute(r.Context(), auth.UpdateProfileInput{
		UserID: user.ID,
		Name:   name,
		Email:  email,
	})
	if err != nil {
		if writeDomainErr(w, err) {
			return
		}
		h.log.Error().Err(err).Msg("update profile failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "profile updated"})
}

func (h *AuthHandler) UpdateCurrentUserPassword(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	var body struct {
		CurrentPassword      string `json:"current_password" validate:"required,max=128"`
		Password             string `json:"password" validate:"required,min=8,max=128"`
		PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	password := SanitizePassword(body.Password)
	if password == "" {
		writeErr(w, http.StatusBadRequest, "", "invalid password length")
		return
	}
	_, err := h.changePassword.Execute(r.Context(), auth.ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: body.CurrentPassword,
		NewPassword:     password,
	})
	if err != nil {
		AuditLog(h.log, r, "user.password_change", user.ID.String(), false, err.Error())
		if writeDomainErr(w, err) {
			return
		}
		h.log.Error().Err(err).Msg("change password failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	AuditLog(h.log, r, "user.password_change", user.ID.String(), true, "")
	writeJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

func (h *AuthHandler) CheckPassword(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeErr(w, http.StatusUnauthorized, "", "unauthorized")
		return
	}
	var body struct {
		Password string `json:"password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", err.Error())
		return
	}
	_, err := h.checkPassword.Execute(r.Context(), auth.CheckPasswordInput{
		UserID:   user.ID,
		Password: body.Password,
	})
	if err != nil {
		if writeDomainErr(w, err) {
			return
		}
		h.log.Error().Err(err).Msg("check password failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "password is correct"})
}
