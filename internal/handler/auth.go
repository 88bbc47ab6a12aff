package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrebktas/modpack-assistant/internal/application"
	"github.com/emrebktas/modpack-assistant/internal/application/dto"
	"github.com/emrebktas/modpack-assistant/internal/domain"
)

type AuthHandler struct {
	auth *application.AuthService
}

func NewAuthHandler(auth *application.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ApproveUser handles the links from the admin approval email. It always
// renders a human-readable HTML page, success or not.
func (h *AuthHandler) ApproveUser(c *gin.Context) {
	token := c.Query("token")
	action := c.Query("action")

	message, err := h.auth.ResolveApproval(c.Request.Context(), token, action)
	if err != nil {
		renderApprovalPage(c, http.StatusBadRequest, approvalPageData{
			Icon:    "✗",
			Class:   "reject",
			Heading: "Something Went Wrong",
			Message: approvalErrorMessage(err),
		})
		return
	}

	data := approvalPageData{Icon: "✓", Class: "success", Heading: "User Approved!", Message: message}
	if action == string(domain.ActionReject) {
		data = approvalPageData{Icon: "✗", Class: "reject", Heading: "User Rejected", Message: message}
	}
	renderApprovalPage(c, http.StatusOK, data)
}

func approvalErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrApprovalAlreadyResolved):
		return "This registration has already been resolved. Each approval link works only once."
	case errors.Is(err, domain.ErrInvalidAction):
		return "The link is malformed: the action must be approve or reject."
	default:
		return "The approval link is invalid or has expired."
	}
}

type approvalPageData struct {
	Icon    string
	Class   string
	Heading string
	Message string
}

func renderApprovalPage(c *gin.Context, status int, data approvalPageData) {
	var buf bytes.Buffer
	if err := approvalPageTemplate.Execute(&buf, data); err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

var approvalPageTemplate = template.Must(template.New("approval_page").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>User Approval</title>
  <style>
    body {
      font-family: Arial, sans-serif;
      display: flex;
      justify-content: center;
      align-items: center;
      min-height: 100vh;
      margin: 0;
      background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    }
    .container {
      background: white;
      padding: 40px;
      border-radius: 10px;
      box-shadow: 0 10px 40px rgba(0,0,0,0.2);
      text-align: center;
      max-width: 500px;
    }
    .icon { font-size: 64px; margin-bottom: 20px; }
    .success { color: #4CAF50; }
    .reject { color: #f44336; }
    h1 { color: #333; margin-bottom: 10px; }
    p { color: #666; line-height: 1.6; }
  </style>
</head>
<body>
  <div class="container">
    <div class="icon {{.Class}}">{{.Icon}}</div>
    <h1>{{.Heading}}</h1>
    <p>{{.Message}}</p>
  </div>
</body>
</html>`))
