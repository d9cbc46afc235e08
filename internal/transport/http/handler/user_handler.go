package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-wishlist/internal/domain"
	"go-gin-wishlist/internal/service"
	"go-gin-wishlist/internal/transport/http/ez"
)

type UserHandler struct {
	svc   *service.UserService
	guard gin.HandlerFunc
}

func NewUserHandler(svc *service.UserService, guard gin.HandlerFunc) *UserHandler {
	return &UserHandler{svc: svc, guard: guard}
}

type editUserIn struct {
	FirstName *string `json:"firstName" binding:"omitempty,max=64"`
	LastName  *string `json:"lastName"  binding:"omitempty,max=64"`
	Email     *string `json:"email"     binding:"omitempty,email,max=191"`
}

func (h *UserHandler) Priority() int { return 20 }

func (h *UserHandler) MountAPI(g *gin.RouterGroup) {
	e := ez.New(g.Group("/users", h.guard))

	ez.RegisterAction(e, ez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/profile",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			uid, err := callerID(c)
			if err != nil {
				return nil, err
			}
			u, err := h.svc.Profile(c.Request.Context(), uid)
			if err != nil {
				return nil, mapErr(err)
			}
			return u, nil
		},
	})

	// PATCH /users 只能改自己：目标 id 来自 token
	ez.RegisterAction(e, ez.Action[editUserIn, *domain.User]{
		Method: http.MethodPatch,
		Path:   "",
		Binder: ez.BindURIJSON,
		Handler: func(c *gin.Context, in *editUserIn) (*domain.User, error) {
			uid, err := callerID(c)
			if err != nil {
				return nil, err
			}
			u, err := h.svc.EditProfile(c.Request.Context(), uid, domain.UserPatch{
				FirstName: in.FirstName,
				LastName:  in.LastName,
				Email:     in.Email,
			})
			if err != nil {
				return nil, mapErr(err)
			}
			return u, nil
		},
	})
}
