package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nourishnet/ordering-service/config"
	"github.com/nourishnet/ordering-service/internal/dto"
	"github.com/nourishnet/ordering-service/internal/service"
	"github.com/nourishnet/ordering-service/pkg/response"
	"github.com/nourishnet/ordering-service/pkg/utils"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
	config  *config.Config
}

func CreateUserController(public *echo.Group, authed *echo.Group, service service.UserService, config *config.Config) {
	uc := UserController{
		service: service,
		config:  config,
	}

	public.POST("/register", uc.Register)
	public.POST("/login", uc.Login)
	public.GET("/check-session", uc.CheckSession)
	authed.POST("/logout", uc.Logout)
	authed.GET("/user", uc.GetUser)
}

func (c *UserController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	resp, err := c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "account created", resp)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	e.SetCookie(&http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    resp.Token,
		Path:     "/",
		Expires:  time.Now().Add(utils.SessionDuration),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.WriteSuccessResponse(e, "", resp)
}

// CheckSession reports whether the caller holds a valid session. It never
// returns an error status; an anonymous caller simply gets valid=false.
func (c *UserController) CheckSession(e echo.Context) error {
	cookie, err := e.Cookie(utils.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return response.WriteSuccessResponse(e, "", dto.SessionResponse{Valid: false})
	}

	userID, err := utils.ParseSessionToken(cookie.Value, c.config.JWTSecret)
	if err != nil {
		return response.WriteSuccessResponse(e, "", dto.SessionResponse{Valid: false})
	}

	user, err := c.service.GetUser(e.Request().Context(), userID)
	if err != nil {
		return response.WriteSuccessResponse(e, "", dto.SessionResponse{Valid: false})
	}

	return response.WriteSuccessResponse(e, "", dto.SessionResponse{Valid: true, User: &user})
}

func (c *UserController) Logout(e echo.Context) error {
	e.SetCookie(&http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.WriteSuccessResponse(e, "logged out", nil)
}

func (c *UserController) GetUser(e echo.Context) error {
	userID := e.Get("userID").(int64)

	resp, err := c.service.GetUser(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
