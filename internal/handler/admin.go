package handler

import (
	"net/http"

	"github.com/AlexZinkM/share-a-care/internal/admin"
	"github.com/AlexZinkM/share-a-care/internal/model"
	"github.com/AlexZinkM/share-a-care/internal/wallet"
)

// AdminHandler serves the admin panel. The acting address is always the
// session's connected account; the service re-authorizes it on every call.
type AdminHandler struct {
	svc     *admin.Service
	session *wallet.Session
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(svc *admin.Service, session *wallet.Session) *AdminHandler {
	return &AdminHandler{svc: svc, session: session}
}

func (h *AdminHandler) actor() string {
	return h.session.Snapshot().Address
}

// Check handles GET /admin/check
// @Summary      Check admin status
// @Description  Advisory admin classification for an address (defaults to the connected wallet)
// @Tags         admin
// @Produce      json
// @Param        address  query     string  false  "Wallet address"
// @Success      200      {object}  model.AdminCheckResponse
// @Router       /admin/check [get]
func (h *AdminHandler) Check(w http.ResponseWriter, r *http.Request) {
	addr := r.URL.Query().Get("address")
	if addr == "" {
		addr = h.actor()
	}
	writeJSON(w, http.StatusOK, model.AdminCheckResponse{
		Address: addr,
		IsAdmin: h.svc.Authorizer().Classify(addr),
	})
}

// ListPublishers handles GET /admin/publishers
// @Summary      List publishers
// @Tags         admin
// @Produce      json
// @Success      200  {array}   model.Publisher
// @Failure      403  {object}  model.ErrorResponse
// @Router       /admin/publishers [get]
func (h *AdminHandler) ListPublishers(w http.ResponseWriter, r *http.Request) {
	pubs, err := h.svc.ListPublishers(r.Context(), h.actor())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pubs)
}

// AddPublisher handles POST /admin/publishers
// @Summary      Add publisher
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      model.AddPublisherRequest  true  "Publisher wallet"
// @Success      201      {object}  model.Publisher
// @Failure      400      {object}  model.ErrorResponse
// @Failure      403      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /admin/publishers [post]
func (h *AdminHandler) AddPublisher(w http.ResponseWriter, r *http.Request) {
	var req model.AddPublisherRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	pub, err := h.svc.AddPublisher(r.Context(), h.actor(), req.WalletAddress)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pub)
}

// RemovePublisher handles DELETE /admin/publishers/{address}
// @Summary      Remove publisher
// @Tags         admin
// @Param        address  path  string  true  "Publisher wallet"
// @Success      204
// @Failure      403  {object}  model.ErrorResponse
// @Failure      404  {object}  model.ErrorResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /admin/publishers/{address} [delete]
func (h *AdminHandler) RemovePublisher(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemovePublisher(r.Context(), h.actor(), r.PathValue("address")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateProject handles POST /admin/projects
// @Summary      Create project
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      model.ProjectInput  true  "Project"
// @Success      201      {object}  model.Project
// @Failure      400      {object}  model.ErrorResponse
// @Failure      403      {object}  model.ErrorResponse
// @Router       /admin/projects [post]
func (h *AdminHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var in model.ProjectInput
	if !decodeJSON(w, r, &in) {
		return
	}
	p, err := h.svc.CreateProject(r.Context(), h.actor(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// UpdateProject handles PUT /admin/projects/{id}
// @Summary      Update project
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Project ID"
// @Param        request  body      model.ProjectInput  true  "Project"
// @Success      200      {object}  model.Project
// @Failure      404      {object}  model.ErrorResponse
// @Router       /admin/projects/{id} [put]
func (h *AdminHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var in model.ProjectInput
	if !decodeJSON(w, r, &in) {
		return
	}
	p, err := h.svc.UpdateProject(r.Context(), h.actor(), r.PathValue("id"), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeleteProject handles DELETE /admin/projects/{id}
// @Summary      Delete project
// @Tags         admin
// @Param        id  path  string  true  "Project ID"
// @Success      204
// @Failure      404  {object}  model.ErrorResponse
// @Router       /admin/projects/{id} [delete]
func (h *AdminHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteProject(r.Context(), h.actor(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateCarePackage handles POST /admin/care-packages
// @Summary      Create care package
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      model.CarePackageInput  true  "Care package"
// @Success      201      {object}  model.CarePackage
// @Router       /admin/care-packages [post]
func (h *AdminHandler) CreateCarePackage(w http.ResponseWriter, r *http.Request) {
	var in model.CarePackageInput
	if !decodeJSON(w, r, &in) {
		return
	}
	c, err := h.svc.CreateCarePackage(r.Context(), h.actor(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateCarePackage handles PUT /admin/care-packages/{id}
// @Summary      Update care package
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Care package ID"
// @Param        request  body      model.CarePackageInput  true  "Care package"
// @Success      200      {object}  model.CarePackage
// @Router       /admin/care-packages/{id} [put]
func (h *AdminHandler) UpdateCarePackage(w http.ResponseWriter, r *http.Request) {
	var in model.CarePackageInput
	if !decodeJSON(w, r, &in) {
		return
	}
	c, err := h.svc.UpdateCarePackage(r.Context(), h.actor(), r.PathValue("id"), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteCarePackage handles DELETE /admin/care-packages/{id}
// @Summary      Delete care package
// @Tags         admin
// @Param        id  path  string  true  "Care package ID"
// @Success      204
// @Router       /admin/care-packages/{id} [delete]
func (h *AdminHandler) DeleteCarePackage(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCarePackage(r.Context(), h.actor(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
