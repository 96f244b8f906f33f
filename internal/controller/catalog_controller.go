package controller

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nourishnet/ordering-service/internal/dto"
	"github.com/nourishnet/ordering-service/internal/service"
	"github.com/nourishnet/ordering-service/pkg/errs"
	"github.com/nourishnet/ordering-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type CatalogController struct {
	service service.CatalogService
}

func CreateCatalogController(public *echo.Group, authed *echo.Group, service service.CatalogService) {
	cc := CatalogController{
		service: service,
	}

	public.GET("/categories", cc.GetCategories)
	public.GET("/menu", cc.GetMenu)
	public.GET("/menu/category/:id", cc.GetMenuByCategory)
	public.GET("/menu/:id", cc.GetMenuItem)

	authed.POST("/categories", cc.AddCategory)
	authed.PUT("/categories/:id", cc.UpdateCategory)
	authed.DELETE("/categories/:id", cc.DeleteCategory)
	authed.POST("/menu", cc.AddMenuItem)
	authed.PUT("/menu/:id", cc.UpdateMenuItem)
	authed.DELETE("/menu/:id", cc.DeleteMenuItem)
}

func pathID(e echo.Context) (int64, error) {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.ErrClient
	}
	return id, nil
}

func (c *CatalogController) GetCategories(e echo.Context) error {
	resp, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) AddCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCategory").Msg("")
	}

	id, err := c.service.AddCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "category created", map[string]int64{"id": id})
}

func (c *CatalogController) UpdateCategory(e echo.Context) error {
	id, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.CategoryRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCategory").Msg("")
	}

	if err := c.service.UpdateCategory(e.Request().Context(), id, payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "category updated", nil)
}

func (c *CatalogController) DeleteCategory(e echo.Context) error {
	id, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	if err := c.service.DeleteCategory(e.Request().Context(), id); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "category deleted", nil)
}

func (c *CatalogController) GetMenu(e echo.Context) error {
	resp, err := c.service.GetMenu(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) GetMenuByCategory(e echo.Context) error {
	id, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.GetMenuByCategory(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) GetMenuItem(e echo.Context) error {
	id, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.GetMenuItem(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CatalogController) AddMenuItem(e echo.Context) error {
	payload := dto.MenuItemRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddMenuItem").Msg("")
	}

	id, err := c.service.AddMenuItem(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "menu item created", map[string]int64{"id": id})
}

func (c *CatalogController) UpdateMenuItem(e echo.Context) error {
	id, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.MenuItemRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateMenuItem").Msg("")
	}

	if err := c.service.UpdateMenuItem(e.Request().Context(), id, payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "menu item updated", nil)
}

func (c *CatalogController) DeleteMenuItem(e echo.Context) error {
	id, err := pathID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	if err := c.service.DeleteMenuItem(e.Request().Context(), id); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "menu item deleted", nil)
}
