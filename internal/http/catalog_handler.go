package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sucessoempreendedor011-lang/empreendedor/internal/catalog"
)

type CatalogHandler struct {
	repo catalog.Repository
}

func NewCatalogHandler(repo catalog.Repository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

// ProductView decorates a product with the derived prices every screen
// shows, so no client recomputes them.
type ProductView struct {
	catalog.Product
	PixPrice         int64            `json:"pixPrice"`
	StoragePrices    map[string]int64 `json:"storagePrices"`
	InstallmentPlans map[int]int64    `json:"installmentPlans"`
}

func newProductView(p catalog.Product) ProductView {
	storagePrices := map[string]int64{
		catalog.Storage128: catalog.PriceForStorage(p.BasePrice, catalog.Storage128),
		catalog.Storage256: catalog.PriceForStorage(p.BasePrice, catalog.Storage256),
		catalog.Storage512: catalog.PriceForStorage(p.BasePrice, catalog.Storage512),
	}
	plans := make(map[int]int64, len(catalog.InstallmentOptions))
	for _, n := range catalog.InstallmentOptions {
		plans[n] = catalog.InstallmentValue(p.DiscountedPrice, n)
	}
	return ProductView{
		Product:          p,
		PixPrice:         catalog.PixPrice(p.DiscountedPrice),
		StoragePrices:    storagePrices,
		InstallmentPlans: plans,
	}
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	products := h.repo.List()
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	respondJSON(w, http.StatusOK, views)
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.repo.Get(id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, newProductView(*p))
}
