package email

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	KindOrderConfirmation  = "order_confirmation"
	KindLibraryAccess      = "library_access"
	KindPartnerWelcome     = "partner_welcome"
	KindTeamInvite         = "team_invite"
	KindPartnerSale        = "partner_sale"
	KindSubscriberWelcome  = "subscriber_welcome"
	KindTicketReply        = "ticket_reply"
	KindSubmissionReceived = "submission_received"
	KindAdminNewTicket     = "admin_new_ticket"
)

var allKinds = []string{
	KindOrderConfirmation, KindLibraryAccess, KindPartnerWelcome, KindTeamInvite, KindPartnerSale,
	KindSubscriberWelcome, KindTicketReply, KindSubmissionReceived, KindAdminNewTicket,
}

var templateFuncs = template.FuncMap{
	"money": formatMoney,
}

// Templates renders the platform's HTML emails.
type Templates struct {
	siteURL string
	set     map[string]*template.Template
}

// NewTemplates parses every embedded template. siteURL is used for links.
func NewTemplates(siteURL string) (*Templates, error) {
	layout, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse email layout: %w", err)
	}

	set := make(map[string]*template.Template, len(allKinds))
	for _, kind := range allKinds {
		t, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone email layout: %w", err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+kind+".html"); err != nil {
			return nil, fmt.Errorf("parse email template %s: %w", kind, err)
		}
		set[kind] = t
	}
	return &Templates{siteURL: strings.TrimRight(siteURL, "/"), set: set}, nil
}

// OrderConfirmation is sent to the buyer after a completed checkout.
type OrderConfirmation struct {
	Email       string
	Books       []string
	AccessCode  string
	AmountCents int64
	Currency    string
}

// LibraryAccess is sent when an admin grants a book manually.
type LibraryAccess struct {
	Email      string
	Books      []string
	AccessCode string
}

// PartnerWelcome is sent when a partner account is created.
type PartnerWelcome struct {
	Email      string
	Name       string
	Slug       string
	CouponCode string
	AccessCode string
}

// TeamInvite is sent to a newly added team member.
type TeamInvite struct {
	Email       string
	Name        string
	PartnerName string
	AccessCode  string
}

// PartnerSale notifies a partner of an attributed sale.
type PartnerSale struct {
	Email           string
	Name            string
	AmountCents     int64
	CommissionCents int64
	Currency        string
	SubLinkCode     string
	MaturesAt       time.Time
}

// TicketReply carries an admin's reply to a support ticket.
type TicketReply struct {
	Email   string
	Name    string
	Subject string
	Reply   string
}

// SubmissionReceived acknowledges a manuscript submission.
type SubmissionReceived struct {
	Email string
	Name  string
	Title string
}

// AdminNewTicket notifies the back office of a new ticket.
type AdminNewTicket struct {
	Name     string
	Email    string
	Subject  string
	Message  string
	Priority string
}

func (t *Templates) OrderConfirmation(d OrderConfirmation) (Message, error) {
	return t.render(KindOrderConfirmation, d.Email, map[string]any{
		"Email": d.Email, "Books": d.Books, "AccessCode": d.AccessCode,
		"AmountCents": d.AmountCents, "Currency": d.Currency,
	})
}

func (t *Templates) LibraryAccess(d LibraryAccess) (Message, error) {
	return t.render(KindLibraryAccess, d.Email, map[string]any{
		"Email": d.Email, "Books": d.Books, "AccessCode": d.AccessCode,
	})
}

func (t *Templates) PartnerWelcome(d PartnerWelcome) (Message, error) {
	return t.render(KindPartnerWelcome, d.Email, map[string]any{
		"Name": d.Name, "Slug": d.Slug, "CouponCode": d.CouponCode, "AccessCode": d.AccessCode,
	})
}

func (t *Templates) TeamInvite(d TeamInvite) (Message, error) {
	return t.render(KindTeamInvite, d.Email, map[string]any{
		"Name": d.Name, "PartnerName": d.PartnerName, "AccessCode": d.AccessCode,
	})
}

func (t *Templates) PartnerSale(d PartnerSale) (Message, error) {
	return t.render(KindPartnerSale, d.Email, map[string]any{
		"Name": d.Name, "AmountCents": d.AmountCents, "CommissionCents": d.CommissionCents,
		"Currency": d.Currency, "SubLinkCode": d.SubLinkCode, "MaturesOn": d.MaturesAt.Format("January 2, 2006"),
	})
}

func (t *Templates) SubscriberWelcome(email string) (Message, error) {
	return t.render(KindSubscriberWelcome, email, map[string]any{"Email": email})
}

func (t *Templates) TicketReply(d TicketReply) (Message, error) {
	return t.render(KindTicketReply, d.Email, map[string]any{
		"Name": d.Name, "Subject": d.Subject, "Reply": d.Reply,
	})
}

func (t *Templates) SubmissionReceived(d SubmissionReceived) (Message, error) {
	return t.render(KindSubmissionReceived, d.Email, map[string]any{"Name": d.Name, "Title": d.Title})
}

// AdminNewTicket renders the notification for the admin inbox at to.
func (t *Templates) AdminNewTicket(to string, d AdminNewTicket) (Message, error) {
	return t.render(KindAdminNewTicket, to, map[string]any{
		"Name": d.Name, "Email": d.Email, "Subject": d.Subject, "Message": d.Message, "Priority": d.Priority,
	})
}

func (t *Templates) render(kind, to string, data map[string]any) (Message, error) {
	tmpl, ok := t.set[kind]
	if !ok {
		return Message{}, fmt.Errorf("email: unknown template %q", kind)
	}
	data["SiteURL"] = t.siteURL

	var subject, body bytes.Buffer
	if err := tmpl.ExecuteTemplate(&subject, "subject", data); err != nil {
		return Message{}, fmt.Errorf("render %s subject: %w", kind, err)
	}
	if err := tmpl.ExecuteTemplate(&body, "layout", data); err != nil {
		return Message{}, fmt.Errorf("render %s body: %w", kind, err)
	}

	return Message{
		To:      to,
		Subject: html.UnescapeString(strings.TrimSpace(subject.String())),
		HTML:    body.String(),
		Tags:    map[string]string{"kind": kind},
	}, nil
}

func formatMoney(cents int64, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	amount := fmt.Sprintf("%d.%02d", cents/100, cents%100)
	switch strings.ToLower(currency) {
	case "usd", "":
		return sign + "$" + amount
	default:
		return sign + amount + " " + strings.ToUpper(currency)
	}
}
