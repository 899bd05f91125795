package email

import (
	"fmt"
	"strings"
	"time"
)

// Template builders for the notification mails. Bodies mirror the
// customer-facing wording the service has always sent.

func formatDate(t time.Time) string {
	return t.Format("Monday, 2 January 2006")
}

// CollectionScheduledBody is sent to a citizen when an admin schedules
// their waste pickup.
func CollectionScheduledBody(userName string, scheduledDate time.Time, employeeName string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #2ecc71;">Waste Collection Scheduled!</h2>
			<p>Dear <strong>%s</strong>,</p>
			<p>Your waste collection has been successfully scheduled.</p>
			<div style="background-color: #f0f0f0; padding: 15px; border-radius: 5px; margin: 20px 0;">
				<h3 style="margin-top: 0;">Collection Details:</h3>
				<p><strong>Scheduled Date:</strong> %s</p>
				<p><strong>Assigned Employee:</strong> %s</p>
			</div>
			<p><strong>Important Instructions:</strong></p>
			<ul>
				<li>Please ensure your waste is properly segregated (plastic/glass)</li>
				<li>Keep the waste accessible for collection</li>
				<li>Be available at the scheduled time if possible</li>
			</ul>
			<p>Thank you for using Ecosnap!</p>
			<hr style="margin-top: 30px; border: none; border-top: 1px solid #ddd;">
			<p style="color: #888; font-size: 12px;">This is an automated email. Please do not reply to this message.</p>
		</div>`, userName, formatDate(scheduledDate), employeeName)
}

// CollectionReminderBody is sent to a citizen on the morning of their pickup.
func CollectionReminderBody(userName, employeeName, employeeID string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #e74c3c;">Collection Reminder - TODAY!</h2>
			<p>Dear <strong>%s</strong>,</p>
			<p style="font-size: 18px; color: #e74c3c;"><strong>Your waste collection is scheduled for TODAY!</strong></p>
			<div style="background-color: #fff3cd; padding: 15px; border-left: 4px solid #ffc107; margin: 20px 0;">
				<h3 style="margin-top: 0;">Collection Agent Details:</h3>
				<p><strong>Employee Name:</strong> %s</p>
				<p><strong>Employee ID:</strong> %s</p>
				<p><strong>Collection Date:</strong> %s</p>
			</div>
			<p>Please ensure your waste is ready, segregated and accessible.</p>
			<hr style="margin-top: 30px; border: none; border-top: 1px solid #ddd;">
			<p style="color: #888; font-size: 12px;">This is an automated reminder. Please do not reply to this message.</p>
		</div>`, userName, employeeName, employeeID, formatDate(time.Now()))
}

// AdminTaskDigestRow is one line of the daily admin overview table.
type AdminTaskDigestRow struct {
	Type         string
	EmployeeName string
	Status       string
}

// AdminTaskDigestBody summarizes today's assigned tasks for an admin.
func AdminTaskDigestBody(rows []AdminTaskDigestRow) string {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf(`
			<tr>
				<td style="padding: 10px; border-bottom: 1px solid #ddd;">%s</td>
				<td style="padding: 10px; border-bottom: 1px solid #ddd;">%s</td>
				<td style="padding: 10px; border-bottom: 1px solid #ddd;">%s</td>
			</tr>`, row.Type, row.EmployeeName, row.Status))
	}

	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #2c3e50;">Daily Task Summary</h2>
			<p>Hello Admin,</p>
			<p>Here are the tasks scheduled for collection today:</p>
			<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
				<thead>
					<tr style="background-color: #f8f9fa;">
						<th style="padding: 10px; border-bottom: 2px solid #ddd; text-align: left;">Type</th>
						<th style="padding: 10px; border-bottom: 2px solid #ddd; text-align: left;">Assigned To</th>
						<th style="padding: 10px; border-bottom: 2px solid #ddd; text-align: left;">Status</th>
					</tr>
				</thead>
				<tbody>%s</tbody>
			</table>
			<p>Please monitor the progress through the dashboard.</p>
			<hr style="border: none; border-top: 1px solid #ddd;">
			<p style="color: #888; font-size: 12px;">Automated system report.</p>
		</div>`, sb.String())
}

// DonationAssignedBody notifies an employee of newly assigned donation pickups.
func DonationAssignedBody(employeeName string, taskCount int, collectionDate time.Time) string {
	return fmt.Sprintf(`
		<h1>New Donation Task Assigned</h1>
		<p>Hello %s,</p>
		<p>You have been assigned %d new donation pickup task(s).</p>
		<p><strong>Collection Date:</strong> %s</p>
		<p>Please check your dashboard for details.</p>`, employeeName, taskCount, formatDate(collectionDate))
}

// DonationReminderEmployeeBody reminds an employee of a pickup due today.
func DonationReminderEmployeeBody(employeeName, itemType, description string) string {
	if description == "" {
		description = "N/A"
	}
	return fmt.Sprintf(`
		<h1>Donation Pickup Reminder</h1>
		<p>Hello %s,</p>
		<p>This is a reminder that you have a donation pickup scheduled for today.</p>
		<p><strong>Item:</strong> %s</p>
		<p><strong>Description:</strong> %s</p>
		<p>Please ensure this is collected by end of day.</p>`, employeeName, itemType, description)
}

// DonationReminderUserBody reminds a citizen their donation is collected today.
func DonationReminderUserBody(userName, itemType string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #2ecc71;">Donation Collection Today!</h2>
			<p>Dear <strong>%s</strong>,</p>
			<p>This is a reminder that your donation of <strong>%s</strong> is scheduled for collection today.</p>
			<p>Our team member will be arriving to collect the item. Please ensure someone is available.</p>
			<p>Thank you for your generous contribution to a cleaner environment!</p>
			<hr style="margin-top: 30px; border: none; border-top: 1px solid #ddd;">
			<p style="color: #888; font-size: 12px;">This is an automated reminder.</p>
		</div>`, userName, itemType)
}
