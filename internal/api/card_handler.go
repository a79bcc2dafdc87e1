package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/wallet-api/internal/api/shared"
	"github.com/phrazzld/wallet-api/internal/domain"
	"github.com/phrazzld/wallet-api/internal/platform/logger"
	"github.com/phrazzld/wallet-api/internal/service"
)

// CardHandler handles wallet requests of the authenticated user.
type CardHandler struct {
	wallet service.WalletService
	now    func() time.Time
	logger *slog.Logger
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(wallet service.WalletService, logger *slog.Logger) *CardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		wallet: wallet,
		now:    time.Now,
		logger: logger.With(slog.String("component", "card_handler")),
	}
}

// ListCards handles GET /api/cards
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	cards, err := h.wallet.ListCards(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load cards")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards, h.now()))
}

// GetCard handles GET /api/cards/{id}
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, cardID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	card, err := h.wallet.GetCard(r.Context(), userID, cardID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card, h.now()))
}

// AddCard handles POST /api/cards
func (h *CardHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	var req CardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, card, err := h.wallet.AddCard(r.Context(), userID, req.toDomain())
	h.respondWithCardResult(w, r, http.StatusCreated, result, card, err)
}

// ReplaceCard handles PUT /api/cards/{id}
func (h *CardHandler) ReplaceCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, cardID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req CardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, card, err := h.wallet.ReplaceCard(r.Context(), userID, cardID, req.toDomain())
	h.respondWithCardResult(w, r, http.StatusOK, result, card, err)
}

// DeleteCard handles DELETE /api/cards/{id}
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, cardID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.wallet.DeleteCard(r.Context(), userID, cardID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete card")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DetectCardType handles POST /api/cards/detect. It is called repeatedly
// while a number is being typed.
func (h *CardHandler) DetectCardType(w http.ResponseWriter, r *http.Request) {
	var req DetectCardTypeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DetectCardTypeResponse{
		CardType: h.wallet.DetectCardType(req.Number),
	})
}

// respondWithCardResult writes the response for an add or replace outcome.
func (h *CardHandler) respondWithCardResult(
	w http.ResponseWriter,
	r *http.Request,
	successStatus int,
	result domain.NewCardResult,
	card *domain.Card,
	err error,
) {
	if err != nil {
		HandleAPIError(w, r, err, "Failed to save card")
		return
	}

	switch result {
	case domain.NewCardSuccess:
		shared.RespondWithJSON(w, r, successStatus, cardToResponse(card, h.now()))
	case domain.NewCardError:
		HandleAPIError(w, r, domain.ErrUnknownResult, "Failed to save card")
	default:
		respondWithOutcome(w, r, cardResultStatus(result), result)
	}
}
