package quote

import (
	"encoding/json"
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/dealwise/quote-api/internal/common"
	"github.com/dealwise/quote-api/internal/deal"
	"github.com/dealwise/quote-api/internal/obs"
	"github.com/dealwise/quote-api/internal/refdata"
)

// Handler exposes the quote computation endpoint.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
}

// Create computes all scenarios for the posted customer configuration and
// returns them ranked best-first.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		writeAppError(w, common.NewAppError("INTERNAL", "quote service not configured", http.StatusInternalServerError, nil))
		return
	}
	var cfg deal.CustomerConfiguration
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeAppError(w, common.NewAppError("BAD_REQUEST", "invalid payload", http.StatusBadRequest, err))
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(cfg); err != nil {
			appErr := common.NewAppError("VALIDATION", "invalid customer configuration", http.StatusBadRequest, err)
			appErr.Details = validationDetails(err)
			writeAppError(w, appErr)
			return
		}
	}

	out, err := h.Svc.Quote(r.Context(), cfg)
	if err != nil {
		countQuote(resultLabel(err))
		writeAppError(w, mapQuoteError(err))
		return
	}
	countQuote("ok")
	if obs.BestStrategyTotal != nil {
		obs.BestStrategyTotal.WithLabelValues(string(out.Best.Strategy)).Inc()
	}
	common.JSON(w, http.StatusOK, out)
}

func mapQuoteError(err error) *common.AppError {
	if errors.Is(err, refdata.ErrReferenceData) {
		return common.NewAppError("REFERENCE_DATA", "reference data unavailable or malformed", http.StatusInternalServerError, err)
	}
	return common.NewAppError("INTERNAL", "quote computation failed", http.StatusInternalServerError, err)
}

func resultLabel(err error) string {
	if errors.Is(err, refdata.ErrReferenceData) {
		return "reference_data_error"
	}
	return "error"
}

func writeAppError(w http.ResponseWriter, appErr *common.AppError) {
	common.JSONError(w, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Details)
}

func countQuote(result string) {
	if obs.QuoteRequestsTotal != nil {
		obs.QuoteRequestsTotal.WithLabelValues(result).Inc()
	}
}

func validationDetails(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Namespace()+": "+fe.Tag())
	}
	return fields
}
