package registry

import (
	"github.com/labstack/echo/v4"

	"arca/internal/api/controllers"
	"arca/internal/models"
	"arca/internal/services"

	"gorm.io/gorm"
)

// 📝 RegisterCRUDRoutes registers CRUD routes for the catalog models - godoc
// @Summary Register CRUD routes for the catalog models
// @Description Register CRUD routes for the catalog models
// @Accept json
// @Produce json
//
// Authorization is enforced by the URL permission middleware on the
// parent group, so no per-route permission wiring is needed here: the
// path itself is the resource being checked.
func RegisterCRUDRoutes(g *echo.Group, db *gorm.DB) {
	// Addresses
	addressController := controllers.NewBaseController(services.NewBaseService(db, models.Address{}))
	addressController.RegisterRoutes(g, "/addresses")

	// Contacts
	contactController := controllers.NewBaseController(services.NewBaseService(db, models.Contact{}))
	contactController.RegisterRoutes(g, "/contacts")

	// Persons
	personController := controllers.NewBaseController(services.NewBaseService(db, models.Person{}))
	personController.RegisterRoutes(g, "/persons")

	// Schools
	schoolController := controllers.NewBaseController(services.NewBaseService(db, models.School{}))
	schoolController.RegisterRoutes(g, "/schools")

	// Categories
	categoryController := controllers.NewBaseController(services.NewBaseService(db, models.Category{}))
	categoryController.RegisterRoutes(g, "/categories")

	// Repositories
	repositoryController := controllers.NewBaseController(services.NewBaseService(db, models.Repository{}))
	repositoryController.RegisterRoutes(g, "/repositories")

	// Documents
	documentController := controllers.NewBaseController(services.NewBaseService(db, models.Document{}))
	documentController.RegisterRoutes(g, "/documents")

	// Journals: creation, update and deletion go through CRUD; the
	// moderation and public surfaces add their own journal queries.
	journalController := controllers.NewBaseController(services.NewBaseService(db, models.Journal{}))
	journalController.RegisterRoutes(g, "/journals")

	// Access control entities; reachable only by roles whose patterns
	// cover /api/roles and /api/permissions (admin_full by default).
	roleController := controllers.NewBaseController(services.NewBaseService(db, models.Role{}))
	roleController.RegisterRoutes(g, "/roles")

	permissionController := controllers.NewBaseController(services.NewBaseService(db, models.Permission{}))
	permissionController.RegisterRoutes(g, "/permissions")

	// Users: read and update only, accounts are created through register
	userController := controllers.NewBaseController(services.NewBaseService(db, models.User{}))
	userController.RegisterRoutes(g, "/users", "GET", "PUT", "DELETE")
}
