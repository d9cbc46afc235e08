package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-wishlist/internal/service"
	"go-gin-wishlist/internal/transport/http/ez"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

type credentialsIn struct {
	Email    string `json:"email"    binding:"required,email,max=191"`
	Password string `json:"password" binding:"required,notblank,max=128"`
}

type tokenOut struct {
	AccessToken string `json:"access_token"`
}

func (h *AuthHandler) Priority() int { return 10 }

// MountAPI 公开接口，不挂鉴权
func (h *AuthHandler) MountAPI(g *gin.RouterGroup) {
	e := ez.New(g.Group("/auth"))

	ez.RegisterAction(e, ez.Action[credentialsIn, tokenOut]{
		Method: http.MethodPost,
		Path:   "/signup",
		Binder: ez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *credentialsIn) (tokenOut, error) {
			tok, err := h.svc.Signup(c.Request.Context(), in.Email, in.Password)
			if err != nil {
				return tokenOut{}, mapErr(err)
			}
			return tokenOut{AccessToken: tok}, nil
		},
	})

	ez.RegisterAction(e, ez.Action[credentialsIn, tokenOut]{
		Method: http.MethodPost,
		Path:   "/signin",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *credentialsIn) (tokenOut, error) {
			tok, err := h.svc.Signin(c.Request.Context(), in.Email, in.Password)
			if err != nil {
				return tokenOut{}, mapErr(err)
			}
			return tokenOut{AccessToken: tok}, nil
		},
	})
}
