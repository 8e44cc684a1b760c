package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-demo/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, h.services.GreetingService.Hello(r.Context()), http.StatusOK)
}

// basic handles GET /basic/{name}/{age}.
func (h *Handler) basic(w http.ResponseWriter, r *http.Request) {
	age, ok := int32URLParam(r, "age")
	if !ok {
		http.NotFound(w, r)
		return
	}

	text := h.services.GreetingService.Basic(r.Context(), chi.URLParam(r, "name"), age)
	utils.WriteText(w, text, http.StatusOK)
}

// add handles GET /add/{a}/{b}.
func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	a, okA := int32URLParam(r, "a")
	b, okB := int32URLParam(r, "b")
	if !okA || !okB {
		http.NotFound(w, r)
		return
	}

	utils.WriteText(w, h.services.GreetingService.Add(r.Context(), a, b), http.StatusOK)
}

// items handles GET /items/{name}?k=v&...
func (h *Handler) items(w http.ResponseWriter, r *http.Request) {
	text := h.services.GreetingService.Items(r.Context(), chi.URLParam(r, "name"), r.URL.Query())
	utils.WriteText(w, text, http.StatusOK)
}
