package routes

import (
	"hotelpro-backend/config"
	"hotelpro-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
			customers.POST("/batch-delete", controllers.BatchDeleteCustomers)
		}

		// Room routes
		rooms := api.Group("/rooms")
		{
			rooms.POST("", controllers.CreateRoom)
			rooms.GET("", controllers.GetRooms)
			rooms.GET("/:id", controllers.GetRoom)
			rooms.PUT("/:id", controllers.UpdateRoom)
			rooms.PUT("/:id/status", controllers.SetRoomStatus)
			rooms.DELETE("/:id", controllers.DeleteRoom)
			rooms.POST("/batch-delete", controllers.BatchDeleteRooms)
		}

		// Reservation routes
		reservations := api.Group("/reservations")
		{
			reservations.POST("", controllers.CreateReservation)
			reservations.GET("", controllers.GetReservations)
			reservations.GET("/:id", controllers.GetReservation)
			reservations.GET("/:id/transitions", controllers.GetReservationTransitions)
			reservations.PUT("/:id", controllers.UpdateReservation)
			reservations.POST("/:id/transition", controllers.TransitionReservation)
			reservations.DELETE("/:id", controllers.DeleteReservation)
			reservations.POST("/batch/:action", controllers.BatchReservationAction)
		}

		// Finance routes (ledger is append-only: no update/delete)
		finance := api.Group("/finance")
		{
			finance.POST("/incomes", controllers.CreateIncome)
			finance.GET("/incomes", controllers.GetIncomes)
			finance.POST("/expenses", controllers.CreateExpense)
			finance.GET("/expenses", controllers.GetExpenses)
		}

		// Employee routes
		employees := api.Group("/employees")
		{
			employees.GET("", controllers.GetEmployees)
			employees.POST("", controllers.AddEmployee)
			employees.PUT("/:id", controllers.UpdateEmployee)
			employees.DELETE("/:id", controllers.DeleteEmployee)
		}
	}

	return r
}
