package accounts

import (
	"net/http"
	"time"

	"pet-health-tracker/internal/middleware"
	"pet-health-tracker/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// CookieOptions controla la cookie HttpOnly con el token.
type CookieOptions struct {
	Secure bool
}

func RegisterRoutes(r chi.Router, svc *Service, cookie CookieOptions) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc, cookie))
		ar.Post("/login", loginHandler(svc, cookie))
		ar.Post("/logout", logoutHandler(cookie))

		ar.Group(func(pr chi.Router) {
			pr.Use(middleware.RequireAuth)

			pr.Get("/me", meHandler(svc))
			pr.Put("/profile", updateProfileHandler(svc))
			pr.Put("/password", changePasswordHandler(svc))
			pr.Delete("/account", deleteAccountHandler(svc, cookie))
		})
	})
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type deleteAccountRequest struct {
	Password string `json:"password"`
}

// userResponse usa camelCase porque así lo lee el cliente web.
type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type userEnvelope struct {
	User userResponse `json:"user"`
}

// registerHandler godoc
// @Summary Registrar cuenta
// @Description Crea una cuenta y devuelve un JWT. El token también se setea en la cookie HttpOnly `token`.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos de la cuenta; password de 6 a 72 bytes"
// @Success 201 {object} sessionResponse
// @Failure 400 {object} map[string]string "validación"
// @Failure 409 {object} map[string]string "email ya registrado"
// @Router /auth/register [post]
func registerHandler(svc *Service, cookie CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := respond.Decode(w, r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		sess, err := svc.Register(r.Context(), RegisterInput{
			Email:     req.Email,
			Password:  req.Password,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		setTokenCookie(w, sess, cookie)
		respond.JSON(w, http.StatusCreated, toSessionResponse(sess))
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Valida email y contraseña y devuelve un JWT (también en la cookie `token`).
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} sessionResponse
// @Failure 400 {object} map[string]string "faltan campos"
// @Failure 401 {object} map[string]string "credenciales inválidas"
// @Router /auth/login [post]
func loginHandler(svc *Service, cookie CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := respond.Decode(w, r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		sess, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		setTokenCookie(w, sess, cookie)
		respond.JSON(w, http.StatusOK, toSessionResponse(sess))
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Description Borra la cookie `token`. Los JWT son stateless: un token ya emitido sigue valiendo hasta expirar.
// @Tags auth
// @Produce json
// @Success 200 {object} respond.MessageBody
// @Router /auth/logout [post]
func logoutHandler(cookie CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearTokenCookie(w, cookie)
		respond.Message(w, http.StatusOK, "Logged out successfully")
	}
}

// meHandler godoc
// @Summary Cuenta actual
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} userEnvelope
// @Failure 401 {object} map[string]string "sin token"
// @Failure 403 {object} map[string]string "token inválido o vencido"
// @Failure 404 {object} map[string]string "cuenta inexistente"
// @Router /auth/me [get]
func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := middleware.AccountID(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		a, err := svc.Me(r.Context(), accountID)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, userEnvelope{User: toUserResponse(a)})
	}
}

// updateProfileHandler godoc
// @Summary Actualizar perfil
// @Description Reemplaza nombre, apellido y email de la cuenta.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body profileRequest true "Perfil completo"
// @Success 200 {object} userEnvelope
// @Failure 400 {object} map[string]string "validación"
// @Failure 409 {object} map[string]string "email ya usado por otra cuenta"
// @Router /auth/profile [put]
func updateProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := middleware.AccountID(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		var req profileRequest
		if err := respond.Decode(w, r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		a, err := svc.UpdateProfile(r.Context(), accountID, ProfileInput{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		})
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, userEnvelope{User: toUserResponse(a)})
	}
}

// changePasswordHandler godoc
// @Summary Cambiar contraseña
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body changePasswordRequest true "Contraseña actual y nueva"
// @Success 200 {object} respond.MessageBody
// @Failure 400 {object} map[string]string "validación"
// @Failure 401 {object} map[string]string "contraseña actual incorrecta"
// @Router /auth/password [put]
func changePasswordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := middleware.AccountID(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		var req changePasswordRequest
		if err := respond.Decode(w, r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		if err := svc.ChangePassword(r.Context(), accountID, req.CurrentPassword, req.NewPassword); err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.Message(w, http.StatusOK, "Password updated successfully")
	}
}

// deleteAccountHandler godoc
// @Summary Eliminar cuenta
// @Description Borra la cuenta junto con todas sus mascotas y registros de salud. Requiere la contraseña.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body deleteAccountRequest true "Confirmación con contraseña"
// @Success 200 {object} respond.MessageBody
// @Failure 400 {object} map[string]string "falta la contraseña"
// @Failure 401 {object} map[string]string "contraseña incorrecta"
// @Router /auth/account [delete]
func deleteAccountHandler(svc *Service, cookie CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := middleware.AccountID(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		var req deleteAccountRequest
		if err := respond.Decode(w, r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}

		if err := svc.DeleteAccount(r.Context(), accountID, req.Password); err != nil {
			respond.Error(w, r, err)
			return
		}

		clearTokenCookie(w, cookie)
		respond.Message(w, http.StatusOK, "Account deleted successfully")
	}
}

func setTokenCookie(w http.ResponseWriter, sess Session, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearTokenCookie(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func toSessionResponse(s Session) sessionResponse {
	return sessionResponse{Token: s.Token, User: toUserResponse(s.Account)}
}

func toUserResponse(a Account) userResponse {
	return userResponse{
		ID:        a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		CreatedAt: a.CreatedAt,
	}
}
