package notification

import (
	"github.com/gofiber/fiber/v2"
)

type NotificationController struct {
	NotificationService NotificationService
}

func NewNotificationController(notificationService NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

// SendReminders godoc
// @Summary Run the daily reminder sweep now
// @Description Same sweep the 08:00 cron job runs
// @Tags tasks
// @Produce json
// @Success 200 {object} ReminderResult
// @Router /api/tasks/send-reminders [get]
func (ctrl *NotificationController) SendReminders(ctx *fiber.Ctx) error {
	result, err := ctrl.NotificationService.SendTodayReminders(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(result)
}
