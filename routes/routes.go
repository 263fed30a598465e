package routes

import (
	"github.com/bellapacxx/lottery-backend/controllers"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// ----------------------
	// User routes
	// ----------------------
	api.POST("/users", controllers.RegisterUser)                     // Register user
	api.GET("/users/:telegram_id", controllers.GetUser)              // Get user by Telegram ID
	api.PATCH("/users/:telegram_id/phone", controllers.UpdatePhone)  // Update phone number
	api.GET("/users/:telegram_id/tickets", controllers.GetTicketsByUser)
	api.GET("/users/:telegram_id/transactions", controllers.ListTransactions)

	// ----------------------
	// Lottery routes
	// ----------------------
	api.POST("/lotteries", controllers.CreateLottery)                    // Open a new lottery
	api.GET("/lotteries", controllers.ListLotteries)                     // List all lotteries
	api.GET("/lotteries/:id", controllers.GetLottery)                    // Get one lottery
	api.POST("/lotteries/:id/tickets", controllers.BuyTicket)            // Buy a numbered ticket
	api.POST("/lotteries/:id/run", controllers.RunLottery)               // Draw the winning number
	api.POST("/lotteries/:id/claim", controllers.ClaimPrize)             // Winner claims the prize
	api.POST("/lotteries/:id/withdraw", controllers.WithdrawProceeds)    // Capability holder takes proceeds
	api.POST("/lotteries/:id/refund", controllers.RefundTicket)          // Unwind: refund a ticket
	api.POST("/lotteries/:id/return-prize", controllers.ReturnPrize)     // Unwind: reclaim the prize

	// ----------------------
	// Ticket routes
	// ----------------------
	api.POST("/tickets/:ticket_id/burn", controllers.BurnTicket) // Destroy a spent ticket

	// ----------------------
	// Transaction routes
	// ----------------------
	api.POST("/deposit", controllers.VerifyDeposit) // Deposit funds
	api.POST("/withdraw", controllers.Withdraw)     // Withdraw funds
}
