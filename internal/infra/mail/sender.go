package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<p>Hi {{.CompanyName}},</p>
<p>Your <strong>{{.TierName}}</strong> plan is active. You will start receiving
scored moving leads as they are assigned to your account.</p>
<p>Track your usage any time from your account dashboard.</p>
<p>— The MoveRank team</p>
`))

type welcomeEmailData struct {
	CompanyName string
	TierName    string
}

// SendWelcome emails a new customer after registration. Callers treat this as
// best-effort; a failure never fails the registration.
func (s *EmailSender) SendWelcome(to, companyName, tierName string) error {
	var body bytes.Buffer
	data := welcomeEmailData{CompanyName: companyName, TierName: tierName}
	if err := welcomeTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render welcome email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Welcome to MoveRank, %s!", companyName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}
	return nil
}
