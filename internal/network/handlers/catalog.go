package handlers

import (
	"errors"
	"net/http"

	"github.com/denmor86/ya-beautystudio/internal/logger"
	"github.com/denmor86/ya-beautystudio/internal/services"
	"github.com/denmor86/ya-beautystudio/internal/storage"
	"go.uber.org/zap"
)

// ServicesHandler - каталог услуг с поиском и накопительной подгрузкой
func ServicesHandler(c services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := c.SearchServices(r.Context(), r.URL.Query().Get("search"), pageParam(r))
		if err != nil {
			logger.Errorw("Failed to search services:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, result)
	})
}

// ServiceHandler - карточка услуги
func ServiceHandler(c services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			http.Error(w, "Invalid service id", http.StatusBadRequest)
			return
		}
		service, err := c.GetService(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Service not found", http.StatusNotFound)
				return
			}
			logger.Errorw("Failed to get service:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, service)
	})
}

// ProductHandler - карточка товара
func ProductHandler(c services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			http.Error(w, "Invalid product id", http.StatusBadRequest)
			return
		}
		product, err := c.GetProduct(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Product not found", http.StatusNotFound)
				return
			}
			logger.Errorw("Failed to get product:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, product)
	})
}
