package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/AlexZinkM/share-a-care/internal/address"
	"github.com/AlexZinkM/share-a-care/internal/common"
	"github.com/AlexZinkM/share-a-care/internal/model"
	"github.com/AlexZinkM/share-a-care/internal/wallet"
)

// DashboardStore is the read side of the data-access layer
type DashboardStore interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, id string) (*model.Project, error)
	ListCarePackages(ctx context.Context) ([]model.CarePackage, error)
	ListTopDonors(ctx context.Context, limit int) ([]model.TopDonor, error)
	ListUserDonations(ctx context.Context, addr string) ([]model.Donation, error)
}

// DashboardHandler serves the public listings
type DashboardHandler struct {
	store   DashboardStore
	session *wallet.Session
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(store DashboardStore, session *wallet.Session) *DashboardHandler {
	return &DashboardHandler{store: store, session: session}
}

func projectView(p model.Project) model.ProjectView {
	goal, _ := common.CARESToMicro(p.FundingGoal)
	raised, _ := common.CARESToMicro(p.CurrentAmount)
	return model.ProjectView{
		Project:         p,
		FundedPercent:   common.CalculatePercentage(raised, goal),
		GoalDisplay:     common.FormatCARES(p.FundingGoal),
		RaisedDisplay:   common.FormatCARES(p.CurrentAmount),
		TopDonorDisplay: address.FormatForDisplay(p.TopDonor),
		DonationOptions: common.DonationOptions(goal),
	}
}

// Projects handles GET /projects
// @Summary      List projects
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   model.ProjectView
// @Failure      503  {object}  model.ErrorResponse
// @Router       /projects [get]
func (h *DashboardHandler) Projects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.ListProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	views := make([]model.ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, projectView(p))
	}
	writeJSON(w, http.StatusOK, views)
}

// Project handles GET /projects/{id}
// @Summary      Get project
// @Tags         dashboard
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  model.ProjectView
// @Failure      404  {object}  model.ErrorResponse
// @Router       /projects/{id} [get]
func (h *DashboardHandler) Project(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.GetProject(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projectView(*p))
}

// CarePackages handles GET /care-packages
// @Summary      List care packages
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  model.CarePackage
// @Router       /care-packages [get]
func (h *DashboardHandler) CarePackages(w http.ResponseWriter, r *http.Request) {
	pkgs, err := h.store.ListCarePackages(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pkgs)
}

// TopDonors handles GET /donors/top
// @Summary      Donor leaderboard
// @Tags         dashboard
// @Produce      json
// @Param        limit  query     int  false  "Number of donors (default 5)"
// @Success      200    {array}   model.TopDonor
// @Failure      400    {object}  model.ErrorResponse
// @Router       /donors/top [get]
func (h *DashboardHandler) TopDonors(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeErrorCode(w, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer")
			return
		}
		limit = n
	}

	donors, err := h.store.ListTopDonors(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	for i := range donors {
		donors[i].Display = address.FormatForDisplay(donors[i].Address)
	}
	writeJSON(w, http.StatusOK, donors)
}

// Donations handles GET /donations
// @Summary      Donation history
// @Description  Donations made by an address (defaults to the connected wallet)
// @Tags         dashboard
// @Produce      json
// @Param        address  query     string  false  "Wallet address"
// @Success      200      {object}  model.DonationsResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /donations [get]
func (h *DashboardHandler) Donations(w http.ResponseWriter, r *http.Request) {
	addr := r.URL.Query().Get("address")
	if addr == "" {
		addr = h.session.Snapshot().Address
	}
	if err := address.Validate(addr); err != nil {
		writeError(w, err)
		return
	}

	donations, err := h.store.ListUserDonations(r.Context(), addr)
	if err != nil {
		writeError(w, err)
		return
	}

	var total uint64
	for i := range donations {
		micro, _ := common.CARESToMicro(donations[i].Amount)
		total += micro
		donations[i].DateDisplay = common.FormatDate(donations[i].CreatedAt)
	}

	writeJSON(w, http.StatusOK, model.DonationsResponse{
		Address:   addr,
		Total:     common.MicroToCARES(total),
		Donations: donations,
	})
}
