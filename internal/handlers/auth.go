package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Request DTOs for the public auth endpoints.
type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled, true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration payload"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /api/register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	// PasswordHash carries json:"-" so the created record serializes
	// without the hash.
	user, err := h.services.Register(input.Name, input.Email, input.Password)
	if err != nil {
		h.respondServiceError(c, "register_failed", err, "email", input.Email)
		return
	}

	respond(c, http.StatusCreated, "Register successfully", user)
}

// @Summary      Log in and receive a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login payload"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /api/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.Login(input.Email, input.Password)
	if err != nil {
		h.respondServiceError(c, "login_failed", err, "email", input.Email)
		return
	}

	respond(c, http.StatusOK, "Login successfully", gin.H{"token": token})
}
