package hadith

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"hadithapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	log     *zap.Logger
}

func NewHTTPHandler(service *Service, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// Books handles GET /books. The catalog never changes within a process
// lifetime, so clients may cache the response for an hour.
func (h *HTTPHandler) Books(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	httpx.JSON(w, http.StatusOK, h.service.Books())
}

// GetByNumber handles GET /{bookId}/{num}
func (h *HTTPHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("bookId")

	num, err := strconv.Atoi(r.PathValue("num"))
	if err != nil || num < 1 {
		httpx.Error(w, http.StatusBadRequest, "hadith number must be greater than 0")
		return
	}

	dto, err := h.service.GetByNumber(r.Context(), bookID, num)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

// ListPage handles GET /{bookId}/{start}/{size}. Non-integer positions are
// rejected; out-of-range values are passed through for the service to
// clamp.
func (h *HTTPHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("bookId")

	start, err := strconv.Atoi(r.PathValue("start"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "start must be an integer")
		return
	}
	size, err := strconv.Atoi(r.PathValue("size"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "size must be an integer")
		return
	}

	page, err := h.service.ListPage(r.Context(), bookID, start, size)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, page)
}

// Random handles GET /random and GET /random/{bookId}
func (h *HTTPHandler) Random(w http.ResponseWriter, r *http.Request) {
	dto, err := h.service.GetRandom(r.Context(), r.PathValue("bookId"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, err error) {
	var rangeErr *RangeError
	switch {
	case errors.Is(err, ErrUnknownBook):
		httpx.Error(w, http.StatusNotFound, ErrUnknownBook.Error())
	case errors.As(err, &rangeErr):
		httpx.Error(w, http.StatusNotFound, rangeErr.Error())
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, ErrNotFound.Error())
	default:
		h.log.Error("unhandled error", zap.Error(err))
		httpx.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
