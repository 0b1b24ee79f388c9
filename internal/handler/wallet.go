package handler

import (
	"net/http"

	"github.com/skip2/go-qrcode"

	"github.com/AlexZinkM/share-a-care/internal/address"
	"github.com/AlexZinkM/share-a-care/internal/admin"
	"github.com/AlexZinkM/share-a-care/internal/model"
	"github.com/AlexZinkM/share-a-care/internal/wallet"
)

const qrSize = 256

// WalletHandler exposes the wallet session
type WalletHandler struct {
	session *wallet.Session
	auth    *admin.Authorizer
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(session *wallet.Session, auth *admin.Authorizer) *WalletHandler {
	return &WalletHandler{session: session, auth: auth}
}

func (h *WalletHandler) response(state wallet.State) model.SessionResponse {
	resp := model.SessionResponse{
		Connected:         state.Connected,
		Display:           address.FormatForDisplay(state.Address),
		ProviderAvailable: h.session.ProviderAvailable(),
		IsAdmin:           state.Connected && h.auth.Classify(state.Address),
	}
	if state.Address != "" {
		addr := state.Address
		resp.Address = &addr
	}
	return resp
}

// Session handles GET /wallet/session
// @Summary      Get wallet session
// @Description  Returns the connected address, its display form and whether admin affordances apply
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.SessionResponse
// @Router       /wallet/session [get]
func (h *WalletHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.response(h.session.Snapshot()))
}

// Connect handles POST /wallet/connect
// @Summary      Connect wallet
// @Description  Connects the given address, or asks the wallet provider for accounts when no address is sent
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ConnectRequest  false  "Address to connect"
// @Success      200      {object}  model.SessionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      403      {object}  model.ErrorResponse
// @Failure      503      {object}  model.ErrorResponse
// @Router       /wallet/connect [post]
func (h *WalletHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var req model.ConnectRequest
	if r.Body != nil {
		if err := decodeBody(r, &req); err != nil {
			writeErrorCode(w, http.StatusBadRequest, "invalid_body", err.Error())
			return
		}
	}

	var (
		state wallet.State
		err   error
	)
	if req.Address != "" {
		state, err = h.session.Connect(r.Context(), req.Address)
	} else {
		state, err = h.session.RequestConnect(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.response(state))
}

// Disconnect handles POST /wallet/disconnect
// @Summary      Disconnect wallet
// @Description  Clears the application session; the provider's own grant is left untouched
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.SessionResponse
// @Router       /wallet/disconnect [post]
func (h *WalletHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	state, err := h.session.Disconnect(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.response(state))
}

// Sync handles POST /wallet/sync
// @Summary      Sync with provider
// @Description  Reads already-authorized provider accounts and applies them to the session
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.SessionResponse
// @Failure      503  {object}  model.ErrorResponse
// @Router       /wallet/sync [post]
func (h *WalletHandler) Sync(w http.ResponseWriter, r *http.Request) {
	state, err := h.session.Sync(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.response(state))
}

// QR handles GET /wallet/qr
// @Summary      Connected address QR code
// @Description  PNG QR code of the connected address
// @Tags         wallet
// @Produce      png
// @Success      200
// @Failure      409  {object}  model.ErrorResponse
// @Router       /wallet/qr [get]
func (h *WalletHandler) QR(w http.ResponseWriter, r *http.Request) {
	state := h.session.Snapshot()
	if !state.Connected {
		writeErrorCode(w, http.StatusConflict, "not_connected", "wallet not connected")
		return
	}

	png, err := qrcode.Encode(state.Address, qrcode.Medium, qrSize)
	if err != nil {
		writeErrorCode(w, http.StatusInternalServerError, "", "failed to generate QR code: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
