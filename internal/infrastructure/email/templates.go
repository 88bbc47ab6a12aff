package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

type Email struct {
	To      string
	Subject string
	HTML    string
}

type adminApprovalData struct {
	Username     string
	Email        string
	RegisteredAt string
	ApproveURL   string
	RejectURL    string
}

// BuildAdminApprovalEmail builds the mail sent to the administrator when a
// new account registers, with embedded approve and reject links.
func BuildAdminApprovalEmail(username, userEmail, approveURL, rejectURL string) Email {
	data := adminApprovalData{
		Username:     username,
		Email:        userEmail,
		RegisteredAt: time.Now().Format("2006-01-02 15:04:05"),
		ApproveURL:   approveURL,
		RejectURL:    rejectURL,
	}
	return Email{
		Subject: "New User Registration Approval Required - " + username,
		HTML:    render(adminApprovalTemplate, data),
	}
}

func BuildApprovedEmail(username string) Email {
	return Email{
		Subject: "Your Account Has Been Approved!",
		HTML:    render(userApprovedTemplate, struct{ Username string }{username}),
	}
}

func BuildRejectedEmail(username string) Email {
	return Email{
		Subject: "Registration Status Update",
		HTML:    render(userRejectedTemplate, struct{ Username string }{username}),
	}
}

func render(t *template.Template, data any) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		// Templates are static and parsed at init; execution only fails on
		// a broken writer, which bytes.Buffer is not.
		return fmt.Sprintf("template error: %v", err)
	}
	return buf.String()
}

var (
	adminApprovalTemplate = template.Must(template.New("admin_approval").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #2196F3; color: white; padding: 20px; text-align: center; }
    .content { background-color: #f9f9f9; padding: 30px; border-radius: 5px; }
    .user-info { background-color: #fff; padding: 15px; border-left: 4px solid #2196F3; margin: 20px 0; }
    .button { display: inline-block; padding: 12px 30px; color: white; text-decoration: none; border-radius: 5px; margin: 10px 5px; }
    .approve { background-color: #4CAF50; }
    .reject { background-color: #f44336; }
    .footer { text-align: center; margin-top: 20px; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>New User Registration</h1></div>
    <div class="content">
      <h2>Admin Approval Required</h2>
      <p>A new user has registered and is waiting for your approval:</p>
      <div class="user-info">
        <p><strong>Username:</strong> {{.Username}}</p>
        <p><strong>Email:</strong> {{.Email}}</p>
        <p><strong>Registration Date:</strong> {{.RegisteredAt}}</p>
      </div>
      <p>Please review and take action:</p>
      <div style="text-align: center;">
        <a href="{{.ApproveURL}}" class="button approve">Approve User</a>
        <a href="{{.RejectURL}}" class="button reject">Reject User</a>
      </div>
      <p style="margin-top: 30px; font-size: 12px; color: #666;">
        Approved users will be able to log in and use the chatbot application.
        Rejected users will be notified and their account will remain inactive.
      </p>
    </div>
    <div class="footer"><p>Modpack Assistant - Admin Panel</p></div>
  </div>
</body>
</html>`))

	userApprovedTemplate = template.Must(template.New("user_approved").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #4CAF50; color: white; padding: 20px; text-align: center; }
    .content { background-color: #f9f9f9; padding: 30px; border-radius: 5px; }
    .footer { text-align: center; margin-top: 20px; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>Account Approved!</h1></div>
    <div class="content">
      <h2>Hello {{.Username}},</h2>
      <p>Great news! Your account has been approved by our administrator.</p>
      <p>You can now log in and start chatting with the Minecraft assistant.</p>
      <p>Thank you for joining us!</p>
    </div>
    <div class="footer"><p>Modpack Assistant. All rights reserved.</p></div>
  </div>
</body>
</html>`))

	userRejectedTemplate = template.Must(template.New("user_rejected").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #f44336; color: white; padding: 20px; text-align: center; }
    .content { background-color: #f9f9f9; padding: 30px; border-radius: 5px; }
    .footer { text-align: center; margin-top: 20px; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>Registration Status</h1></div>
    <div class="content">
      <h2>Hello {{.Username}},</h2>
      <p>Thank you for your interest in our chatbot application.</p>
      <p>Unfortunately, your registration request could not be approved at this time.</p>
      <p>If you believe this is an error, please contact our support team.</p>
    </div>
    <div class="footer"><p>Modpack Assistant. All rights reserved.</p></div>
  </div>
</body>
</html>`))
)
