package main

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/playinterativas-design/UniPos/internal/admin"
	"github.com/playinterativas-design/UniPos/internal/auth"
	"github.com/playinterativas-design/UniPos/internal/backup"
	"github.com/playinterativas-design/UniPos/internal/cashier"
	"github.com/playinterativas-design/UniPos/internal/catalog"
	"github.com/playinterativas-design/UniPos/internal/config"
	"github.com/playinterativas-design/UniPos/internal/dashboard"
	"github.com/playinterativas-design/UniPos/internal/database"
	"github.com/playinterativas-design/UniPos/internal/models"
	"github.com/playinterativas-design/UniPos/internal/reports"
	"github.com/playinterativas-design/UniPos/internal/sales"
	"github.com/playinterativas-design/UniPos/internal/settings"
	"github.com/playinterativas-design/UniPos/internal/stock"
	"github.com/playinterativas-design/UniPos/internal/store"
)

func main() {
	cfg := config.Load()
	backend := database.Init(cfg)

	st := store.New(backend)
	if err := st.Load(context.Background()); err != nil {
		log.Fatalf("[FATAL] Não foi possível carregar o estado: %v", err)
	}

	authSvc := auth.NewService(st)
	cashierSvc := cashier.NewService(st)
	salesSvc := sales.NewService(st)
	catalogSvc := catalog.NewService(st)
	stockSvc := stock.NewService(st)
	settingsSvc := settings.NewService(st)
	adminSvc := admin.NewService(st)
	reportsSvc := reports.NewService(st)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro inesperado no servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public: conta da empresa e login de operador
	api.Post("/company/register", auth.RegisterCompanyHandler(authSvc))
	api.Post("/company/login", auth.CompanyLoginHandler(authSvc))
	api.Post("/company/recover-password", auth.RecoverCompanyPasswordHandler(authSvc))
	api.Post("/auth/login", auth.LoginHandler(cfg, authSvc))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Catálogo (leitura liberada para operador)
	protected.Get("/products", catalog.ListProductsHandler(catalogSvc))
	protected.Get("/products/:id", catalog.GetProductHandler(catalogSvc))
	protected.Get("/categories", catalog.ListCategoriesHandler(catalogSvc))

	// Caixa
	protected.Post("/cashier/open", cashier.OpenCashierHandler(cashierSvc))
	protected.Post("/cashier/close", cashier.CloseCashierHandler(cashierSvc))
	protected.Get("/cashier/current", cashier.CurrentSessionHandler(cashierSvc))
	protected.Get("/cashier/sessions", cashier.ListSessionsHandler(cashierSvc))

	// Vendas
	protected.Post("/sales", sales.ProcessSaleHandler(salesSvc))
	protected.Get("/sales", sales.ListSalesHandler(salesSvc))
	protected.Post("/sales/check-cart", sales.CheckCartHandler(salesSvc))
	protected.Get("/cashier/sessions/:id/sales", sales.ListSessionSalesHandler(salesSvc))

	// Estoque (consulta)
	protected.Get("/stock-movements", stock.ListMovementsHandler(stockSvc))

	// Configurações e painéis
	protected.Get("/settings", settings.GetSettingsHandler(settingsSvc))
	protected.Get("/dashboard/sales-chart", dashboard.SalesChartHandler(st))
	protected.Get("/reports/sessions/export", reports.ExportSessionsHandler(reportsSvc))
	protected.Get("/reports/sessions/:id", reports.SessionReportHandler(reportsSvc))
	protected.Get("/reports/sales-summary", reports.SalesSummaryHandler(reportsSvc))

	// Admin
	adminRoutes := protected.Group("")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	adminRoutes.Post("/products", catalog.CreateProductHandler(catalogSvc))
	adminRoutes.Put("/products/:id", catalog.UpdateProductHandler(catalogSvc))
	adminRoutes.Delete("/products/:id", catalog.DeleteProductHandler(catalogSvc))
	adminRoutes.Post("/categories", catalog.CreateCategoryHandler(catalogSvc))
	adminRoutes.Delete("/categories/:name", catalog.DeleteCategoryHandler(catalogSvc))

	adminRoutes.Post("/stock/restock", stock.RestockHandler(stockSvc))
	adminRoutes.Post("/stock/adjust", stock.AdjustStockHandler(stockSvc))
	adminRoutes.Post("/stock/return", stock.ReturnHandler(stockSvc))

	adminRoutes.Get("/users", admin.ListUsersHandler(adminSvc))
	adminRoutes.Post("/users", admin.CreateUserHandler(adminSvc))
	adminRoutes.Patch("/users/:id/toggle", admin.ToggleUserHandler(adminSvc))

	adminRoutes.Put("/settings", settings.UpdateSettingsHandler(settingsSvc))
	adminRoutes.Post("/settings/payment-methods", settings.AddPaymentMethodHandler(settingsSvc))
	adminRoutes.Put("/settings/payment-methods/:id", settings.UpdatePaymentMethodHandler(settingsSvc))
	adminRoutes.Delete("/settings/payment-methods/:id", settings.RemovePaymentMethodHandler(settingsSvc))

	adminRoutes.Get("/backup/export", backup.ExportHandler(st))
	adminRoutes.Post("/backup/import", backup.ImportHandler(st))

	adminRoutes.Put("/company", auth.UpdateCompanyHandler(authSvc))
	adminRoutes.Delete("/company", auth.DeleteCompanyHandler(authSvc))

	log.Printf("Servidor ouvindo na porta %s", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("[FATAL] Servidor encerrado: %v", err)
	}
}
