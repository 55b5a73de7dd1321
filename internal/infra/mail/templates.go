package mail

import (
	"fmt"
	"html/template"
	"strings"

	"tradein/internal/domain/service"

	"github.com/pkg/errors"
)

var approvedTemplate = template.Must(template.New("approved").Parse(`<h2>Your exchange request was approved</h2>
<p>Good news! Your exchange request for <strong>{{.ProductName}}</strong> has been approved.</p>
<p>Please ship the item to:</p>
<p>
{{.Warehouse.name}}<br>
{{.Warehouse.address_line1}}<br>
{{- if .Warehouse.address_line2}}
{{.Warehouse.address_line2}}<br>
{{- end}}
{{.Warehouse.city}}{{if .Warehouse.state}}, {{.Warehouse.state}}{{end}} {{.Warehouse.postal_code}}<br>
{{.Warehouse.country}}
</p>
<p>Once you have shipped it, submit the carrier and tracking number so we can follow the package.</p>`))

var itemReceivedTemplate = template.Must(template.New("item_received").Parse(`<h2>We received your item</h2>
<p>Your <strong>{{.ProductName}}</strong> has arrived at our warehouse.</p>
<p>Our team will inspect it and assign your store credit shortly.</p>`))

var creditAssignedTemplate = template.Must(template.New("credit_assigned").Parse(`<h2>Store credit assigned</h2>
<p>Your exchange of <strong>{{.ProductName}}</strong> is complete.</p>
<p>We added <strong>{{.CreditAmount}} points</strong> to your account.
Your balance is now <strong>{{.TotalPoints}} points</strong>.</p>
<p>Thank you for trading in with us!</p>`))

// RenderNotification builds the outbound email for a notification event.
func RenderNotification(event *service.NotificationEvent) (*service.MailMessage, error) {
	var (
		subject string
		tmpl    *template.Template
		data    any
	)

	switch event.Type {
	case service.NotificationApproved:
		subject = "Your exchange request was approved"
		tmpl = approvedTemplate
		data = struct {
			ProductName string
			Warehouse   map[string]string
		}{event.ProductName, event.WarehouseInfo}
	case service.NotificationItemReceived:
		subject = "We received your item"
		tmpl = itemReceivedTemplate
		data = event
	case service.NotificationCreditAssigned:
		subject = fmt.Sprintf("%d points were added to your account", event.CreditAmount)
		tmpl = creditAssignedTemplate
		data = event
	default:
		return nil, errors.Errorf("unknown notification type: %s", event.Type)
	}

	var html strings.Builder
	if err := tmpl.Execute(&html, data); err != nil {
		return nil, errors.Wrap(err, "failed to render email template")
	}

	return &service.MailMessage{
		To:      event.OwnerEmail,
		Subject: subject,
		HTML:    html.String(),
	}, nil
}
