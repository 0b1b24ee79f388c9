package api

import (
	"net/http"

	"github.com/AlexZinkM/share-a-care/internal/admin"
	"github.com/AlexZinkM/share-a-care/internal/handler"
	"github.com/AlexZinkM/share-a-care/internal/wallet"

	_ "github.com/AlexZinkM/share-a-care/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(session *wallet.Session, svc *admin.Service, store handler.DashboardStore) http.Handler {
	walletHandler := handler.NewWalletHandler(session, svc.Authorizer())
	adminHandler := handler.NewAdminHandler(svc, session)
	dashboardHandler := handler.NewDashboardHandler(store, session)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet session
	mux.HandleFunc("GET /wallet/session", walletHandler.Session)
	mux.HandleFunc("POST /wallet/connect", walletHandler.Connect)
	mux.HandleFunc("POST /wallet/disconnect", walletHandler.Disconnect)
	mux.HandleFunc("POST /wallet/sync", walletHandler.Sync)
	mux.HandleFunc("GET /wallet/qr", walletHandler.QR)

	// Dashboard
	mux.HandleFunc("GET /projects", dashboardHandler.Projects)
	mux.HandleFunc("GET /projects/{id}", dashboardHandler.Project)
	mux.HandleFunc("GET /care-packages", dashboardHandler.CarePackages)
	mux.HandleFunc("GET /donors/top", dashboardHandler.TopDonors)
	mux.HandleFunc("GET /donations", dashboardHandler.Donations)

	// Admin
	mux.HandleFunc("GET /admin/check", adminHandler.Check)
	mux.HandleFunc("GET /admin/publishers", adminHandler.ListPublishers)
	mux.HandleFunc("POST /admin/publishers", adminHandler.AddPublisher)
	mux.HandleFunc("DELETE /admin/publishers/{address}", adminHandler.RemovePublisher)
	mux.HandleFunc("POST /admin/projects", adminHandler.CreateProject)
	mux.HandleFunc("PUT /admin/projects/{id}", adminHandler.UpdateProject)
	mux.HandleFunc("DELETE /admin/projects/{id}", adminHandler.DeleteProject)
	mux.HandleFunc("POST /admin/care-packages", adminHandler.CreateCarePackage)
	mux.HandleFunc("PUT /admin/care-packages/{id}", adminHandler.UpdateCarePackage)
	mux.HandleFunc("DELETE /admin/care-packages/{id}", adminHandler.DeleteCarePackage)

	return mux
}
