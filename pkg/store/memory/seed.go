package memory

import (
	"time"

	"github.com/google/uuid"

	"github.com/autoflow/autoflow/pkg/model"
)

// seed loads the built-in integration and template catalogs. IDs are minted
// per process; clients discover them through the list endpoints.
func (s *Store) seed() {
	now := time.Now().UTC()

	integrations := []model.Integration{
		{
			Name:        "Slack",
			Type:        "messaging",
			Status:      model.IntegrationConnected,
			Description: "Send messages and alerts to Slack channels",
		},
		{
			Name:        "Gmail",
			Type:        "email",
			Status:      model.IntegrationConnected,
			Description: "Send and receive email through Gmail",
		},
		{
			Name:        "GitHub",
			Type:        "developer",
			Status:      model.IntegrationAvailable,
			Description: "React to repository events and manage issues",
		},
		{
			Name:        "Stripe",
			Type:        "payments",
			Status:      model.IntegrationAvailable,
			Description: "Trigger workflows on payment events",
		},
		{
			Name:        "Webhook",
			Type:        "http",
			Status:      model.IntegrationConnected,
			Description: "Generic inbound and outbound HTTP hooks",
		},
	}
	for i := range integrations {
		integrations[i].ID = uuid.New()
		integrations[i].CreatedAt = now
		s.integrations[integrations[i].ID] = integrations[i]
	}

	templates := []model.Template{
		{
			Name:        "Welcome Email Sequence",
			Description: "Greet new signups with a three-step email drip",
			Category:    "marketing",
			Triggers:    []string{"user.signup"},
			Actions:     []string{"email.send_welcome", "delay.24h", "email.send_tips"},
			Price:       0,
		},
		{
			Name:        "Slack Alert on New Lead",
			Description: "Post to the sales channel whenever a lead is captured",
			Category:    "sales",
			Triggers:    []string{"crm.lead_created"},
			Actions:     []string{"slack.post_message"},
			Price:       0,
		},
		{
			Name:        "Daily Report Generator",
			Description: "Compile key metrics and mail them out every morning",
			Category:    "operations",
			Triggers:    []string{"schedule.daily_8am"},
			Actions:     []string{"report.compile", "email.send_report"},
			Price:       19.99,
		},
		{
			Name:        "Invoice Follow-up",
			Description: "Chase unpaid invoices with escalating reminders",
			Category:    "finance",
			Triggers:    []string{"invoice.overdue"},
			Actions:     []string{"email.send_reminder", "delay.72h", "slack.notify_finance"},
			Price:       29.99,
		},
	}
	for i := range templates {
		templates[i].ID = uuid.New()
		s.templates[templates[i].ID] = templates[i]
	}
}
