package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-gin-wishlist/internal/domain"
	"go-gin-wishlist/internal/service"
	"go-gin-wishlist/internal/transport/http/ez"
)

type WishlistHandler struct {
	svc   *service.WishlistService
	guard gin.HandlerFunc
}

func NewWishlistHandler(svc *service.WishlistService, guard gin.HandlerFunc) *WishlistHandler {
	return &WishlistHandler{svc: svc, guard: guard}
}

type createWishlistIn struct {
	Title       string  `json:"title"       binding:"required,notblank,max=255"`
	Description *string `json:"description"`
	Link        string  `json:"link"        binding:"required,notblank"`
}

// id 只接受正整数
type wishlistIDIn struct {
	ID uint `uri:"id" json:"-" binding:"required,gt=0"`
}

type editWishlistIn struct {
	ID          uint           `uri:"id" json:"-" binding:"required,gt=0"`
	Title       *string        `json:"title"       binding:"omitempty,notblank,max=255"`
	Description optionalString `json:"description"`
	Link        *string        `json:"link"        binding:"omitempty,notblank"`
}

// optionalString 区分三种情况：字段缺省（Set=false）、显式 null（Set=true, Value=nil）、有值
type optionalString struct {
	Set   bool
	Value *string
}

func (o *optionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

func (h *WishlistHandler) Priority() int { return 30 }

func (h *WishlistHandler) MountAPI(g *gin.RouterGroup) {
	e := ez.New(g.Group("/wishlists", h.guard))

	ez.RegisterAction(e, ez.Action[createWishlistIn, *domain.WishlistItem]{
		Method: http.MethodPost,
		Path:   "",
		Binder: ez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *createWishlistIn) (*domain.WishlistItem, error) {
			uid, err := callerID(c)
			if err != nil {
				return nil, err
			}
			it, err := h.svc.Create(c.Request.Context(), uid, service.WishlistInput{
				Title:       in.Title,
				Description: in.Description,
				Link:        in.Link,
			})
			if err != nil {
				return nil, mapErr(err)
			}
			return it, nil
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, []domain.WishlistItem]{
		Method: http.MethodGet,
		Path:   "",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.WishlistItem, error) {
			uid, err := callerID(c)
			if err != nil {
				return nil, err
			}
			items, err := h.svc.List(c.Request.Context(), uid)
			if err != nil {
				return nil, mapErr(err)
			}
			return items, nil
		},
	})

	// 他人的条目与不存在的条目一样返回 404
	ez.RegisterAction(e, ez.Action[wishlistIDIn, *domain.WishlistItem]{
		Method: http.MethodGet,
		Path:   "/:id",
		Binder: ez.BindURI,
		Handler: func(c *gin.Context, in *wishlistIDIn) (*domain.WishlistItem, error) {
			uid, err := callerID(c)
			if err != nil {
				return nil, err
			}
			it, err := h.svc.Get(c.Request.Context(), uid, in.ID)
			if err != nil {
				return nil, mapErr(err)
			}
			return it, nil
		},
	})

	ez.RegisterAction(e, ez.Action[editWishlistIn, *domain.WishlistItem]{
		Method: http.MethodPatch,
		Path:   "/:id",
		Binder: ez.BindURIJSON,
		Handler: func(c *gin.Context, in *editWishlistIn) (*domain.WishlistItem, error) {
			uid, err := callerID(c)
			if err != nil {
				return nil, err
			}
			it, err := h.svc.Update(c.Request.Context(), uid, in.ID, domain.WishlistPatch{
				Title:            in.Title,
				Description:      in.Description.Value,
				ClearDescription: in.Description.Set && in.Description.Value == nil,
				Link:             in.Link,
			})
			if err != nil {
				return nil, mapErr(err)
			}
			return it, nil
		},
	})

	ez.RegisterAction(e, ez.Action[wishlistIDIn, struct{}]{
		Method: http.MethodDelete,
		Path:   "/:id",
		Binder: ez.BindURI,
		Status: http.StatusNoContent,
		Handler: func(c *gin.Context, in *wishlistIDIn) (struct{}, error) {
			uid, err := callerID(c)
			if err != nil {
				return struct{}{}, err
			}
			if err := h.svc.Delete(c.Request.Context(), uid, in.ID); err != nil {
				return struct{}{}, mapErr(err)
			}
			return struct{}{}, nil
		},
	})
}
