package query

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts all read-only query endpoints.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/records/count", h.TotalRecords)
	r.GET("/restaurants", h.Restaurants)
	r.GET("/restaurants/details", h.RestaurantDetails)
	r.GET("/restaurants/by-cuisine", h.RestaurantsByCuisine)
	r.GET("/categories", h.Categories)
	r.GET("/cuisines", h.CuisineTypes)
	r.GET("/dishes", h.DishesByCategory)
	r.GET("/dishes/cheapest", h.CheapestDishes)
	r.GET("/dishes/average-price", h.AveragePrice)
}

func (h *Handler) TotalRecords(c *gin.Context) {
	total, err := h.service.TotalRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_records": total})
}

func (h *Handler) Restaurants(c *gin.Context) {
	restaurants, err := h.service.Restaurants()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.service.Categories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) CuisineTypes(c *gin.Context) {
	cuisines, err := h.service.CuisineTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cuisines": cuisines})
}

func (h *Handler) DishesByCategory(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category query param required"})
		return
	}

	dishes, err := h.service.DishesByCategory(category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category, "dishes": dishes})
}

func (h *Handler) RestaurantsByCuisine(c *gin.Context) {
	cuisine := c.Query("cuisine")
	if cuisine == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cuisine query param required"})
		return
	}

	restaurants, err := h.service.RestaurantsByCuisine(cuisine)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cuisine": cuisine, "restaurants": restaurants})
}

func (h *Handler) RestaurantDetails(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query param required"})
		return
	}

	details, err := h.service.RestaurantDetails(name)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no restaurant matching " + name})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *Handler) CheapestDishes(c *gin.Context) {
	category := c.Query("category")

	price, dishes, err := h.service.CheapestDishes(category)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dishes found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"price": price, "dishes": dishes})
}

func (h *Handler) AveragePrice(c *gin.Context) {
	category := c.Query("category")

	avg, count, err := h.service.AveragePrice(category)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no dishes found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"average_price": avg, "count": count})
}
