package services

import (
	"bytes"
	"escritorio_app_go/config"
	"escritorio_app_go/models"
	"fmt"
	"html/template"
	"log"
	"strings"
	textTemplate "text/template"
	"time"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("email has no recipients")
	}

	// In test mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("[INFO] Email logged (test mode - not actually sent)")
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("[INFO] Email sent via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details in test mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (Test Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// UrgentDeadlines keeps the overdue and critical deadlines, most urgent first
func UrgentDeadlines(prazos []models.Prazo) []models.Prazo {
	var urgent []models.Prazo
	for _, bucket := range models.AllDeadlineBuckets {
		if !bucket.IsUrgent() {
			continue
		}
		for _, p := range prazos {
			if p.StatusPrazo == bucket {
				urgent = append(urgent, p)
			}
		}
	}
	return urgent
}

// DeadlineDigestData feeds the digest templates
type DeadlineDigestData struct {
	Data     string
	Vencidos []models.Prazo
	Criticos []models.Prazo
}

const digestText = `Resumo de prazos - {{.Data}}
{{if .Vencidos}}
PRAZOS VENCIDOS ({{len .Vencidos}})
{{range .Vencidos}}- {{.Numero}} | {{.Cliente}} | {{.Advogado}} | prazo {{.PrazoFinal}} ({{.DiasRestantes}} dias)
{{end}}{{end}}{{if .Criticos}}
PRAZOS CRÍTICOS ({{len .Criticos}})
{{range .Criticos}}- {{.Numero}} | {{.Cliente}} | {{.Advogado}} | prazo {{.PrazoFinal}} ({{.DiasRestantes}} dias)
{{end}}{{end}}`

const digestHTML = `<h2>Resumo de prazos - {{.Data}}</h2>
{{if .Vencidos}}<h3>Prazos vencidos ({{len .Vencidos}})</h3>
<ul>{{range .Vencidos}}<li><strong>{{.Numero}}</strong> - {{.Cliente}} ({{.Advogado}}): prazo {{.PrazoFinal}}, {{.DiasRestantes}} dias</li>{{end}}</ul>{{end}}
{{if .Criticos}}<h3>Prazos críticos ({{len .Criticos}})</h3>
<ul>{{range .Criticos}}<li><strong>{{.Numero}}</strong> - {{.Cliente}} ({{.Advogado}}): prazo {{.PrazoFinal}}, {{.DiasRestantes}} dias</li>{{end}}</ul>{{end}}`

var (
	digestTextTmpl = textTemplate.Must(textTemplate.New("digest.txt").Parse(digestText))
	digestHTMLTmpl = template.Must(template.New("digest.html").Parse(digestHTML))
)

// BuildDeadlineDigestEmail creates the daily alert for overdue and critical
// deadlines. It returns nil when nothing is urgent.
func BuildDeadlineDigestEmail(recipients []string, prazos []models.Prazo, today time.Time) (*Email, error) {
	data := DeadlineDigestData{Data: today.Format("02/01/2006")}
	for _, p := range UrgentDeadlines(prazos) {
		if p.StatusPrazo == models.DeadlineOverdue {
			data.Vencidos = append(data.Vencidos, p)
		} else {
			data.Criticos = append(data.Criticos, p)
		}
	}
	if len(data.Vencidos)+len(data.Criticos) == 0 {
		return nil, nil
	}

	var text, html bytes.Buffer
	if err := digestTextTmpl.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("failed to render digest text: %w", err)
	}
	if err := digestHTMLTmpl.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to render digest html: %w", err)
	}

	return &Email{
		To:       append([]string{}, recipients...),
		Subject:  fmt.Sprintf("Prazos: %d vencido(s), %d crítico(s) - %s", len(data.Vencidos), len(data.Criticos), data.Data),
		HTMLBody: html.String(),
		TextBody: text.String(),
	}, nil
}
