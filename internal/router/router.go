package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/farmflow/backend/api/handler"
)

type Handlers struct {
	Farm         *apiHandler.FarmHandler
	Crop         *apiHandler.CropHandler
	Task         *apiHandler.TaskHandler
	Transaction  *apiHandler.TransactionHandler
	Equipment    *apiHandler.EquipmentHandler
	Weather      *apiHandler.WeatherHandler
	Notification *apiHandler.NotificationHandler
	Health       *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.GetHealth)

	// Farms
	r.GET("/api/v1/farms", handlers.Farm.GetFarms)
	r.POST("/api/v1/farms", handlers.Farm.CreateFarm)
	r.GET("/api/v1/farms/{id}", handlers.Farm.GetFarm)
	r.PUT("/api/v1/farms/{id}", handlers.Farm.UpdateFarm)
	r.DELETE("/api/v1/farms/{id}", handlers.Farm.DeleteFarm)

	// Crops
	r.GET("/api/v1/crops", handlers.Crop.GetCrops)
	r.POST("/api/v1/crops", handlers.Crop.CreateCrop)
	r.GET("/api/v1/crops/{id}", handlers.Crop.GetCrop)
	r.PUT("/api/v1/crops/{id}", handlers.Crop.UpdateCrop)
	r.DELETE("/api/v1/crops/{id}", handlers.Crop.DeleteCrop)

	// Tasks
	r.GET("/api/v1/tasks", handlers.Task.GetTasks)
	r.POST("/api/v1/tasks", handlers.Task.CreateTask)
	r.GET("/api/v1/tasks/buckets", handlers.Task.GetTaskBuckets)
	r.GET("/api/v1/tasks/{id}", handlers.Task.GetTask)
	r.PUT("/api/v1/tasks/{id}", handlers.Task.UpdateTask)
	r.PUT("/api/v1/tasks/{id}/complete", handlers.Task.CompleteTask)
	r.DELETE("/api/v1/tasks/{id}", handlers.Task.DeleteTask)

	// Finance
	r.GET("/api/v1/transactions", handlers.Transaction.GetTransactions)
	r.POST("/api/v1/transactions", handlers.Transaction.CreateTransaction)
	r.GET("/api/v1/transactions/{id}", handlers.Transaction.GetTransaction)
	r.PUT("/api/v1/transactions/{id}", handlers.Transaction.UpdateTransaction)
	r.DELETE("/api/v1/transactions/{id}", handlers.Transaction.DeleteTransaction)
	r.GET("/api/v1/finance/summary", handlers.Transaction.GetSummary)

	// Equipment
	r.GET("/api/v1/equipment", handlers.Equipment.GetEquipmentList)
	r.POST("/api/v1/equipment", handlers.Equipment.CreateEquipment)
	r.GET("/api/v1/equipment/{id}", handlers.Equipment.GetEquipment)
	r.PUT("/api/v1/equipment/{id}", handlers.Equipment.UpdateEquipment)
	r.DELETE("/api/v1/equipment/{id}", handlers.Equipment.DeleteEquipment)

	// Weather
	r.GET("/api/v1/weather", handlers.Weather.GetCurrent)
	r.GET("/api/v1/weather/forecast", handlers.Weather.GetForecast)
	r.GET("/api/v1/weather/alerts", handlers.Weather.GetAlerts)

	// Notifications
	r.GET("/api/v1/notifications/settings", handlers.Notification.GetSettings)
	r.PUT("/api/v1/notifications/settings", handlers.Notification.UpdateSettings)
	r.POST("/api/v1/notifications/permission", handlers.Notification.RequestPermission)
	r.POST("/api/v1/notifications/test", handlers.Notification.SendTest)

	return r
}
