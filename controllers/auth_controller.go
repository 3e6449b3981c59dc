package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"motosgarage-api/models"
	"motosgarage-api/repositories"
	"motosgarage-api/services"
	"motosgarage-api/utils"
)

const tokenLifetime = 30 * 24 * time.Hour

// AuthController handles local account registration and JWT sessions.
type AuthController struct {
	users        repositories.UserRepository
	jwtSecret    string
	emailService *services.EmailService
}

func NewAuthController(users repositories.UserRepository, jwtSecret string, emailService *services.EmailService) *AuthController {
	return &AuthController{
		users:        users,
		jwtSecret:    jwtSecret,
		emailService: emailService,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if !utils.IsValidPassword(req.Password) {
		utils.SendError(c, http.StatusBadRequest, "la contraseña es demasiado débil")
		return
	}

	if _, err := ac.users.FindByEmail(req.Email); err == nil {
		utils.SendError(c, http.StatusConflict, "el email ya está registrado")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "error al procesar la contraseña")
		return
	}

	user, err := ac.users.Create(models.User{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Provider: "local",
	})
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "error al crear el usuario")
		return
	}

	if _, err := ac.emailService.SendVerificationEmail(user.Email, user.Name); err != nil {
		log.Printf("Failed to send verification email to %s: %v", user.Email, err)
	}

	user.Password = ""
	c.JSON(http.StatusCreated, gin.H{
		"message": "Registro correcto. Revisa tu email e introduce el código de verificación.",
		"user":    user,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := ac.users.FindByEmail(req.Email)
	if err != nil {
		utils.SendError(c, http.StatusUnauthorized, "credenciales no válidas")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "credenciales no válidas")
		return
	}

	if !user.EmailVerified {
		utils.SendError(c, http.StatusForbidden, "email no verificado")
		return
	}

	token, err := generateJWT(user.ID, user.Email, ac.jwtSecret)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "error al generar el token")
		return
	}

	response := *user
	response.Password = ""
	c.JSON(http.StatusOK, AuthResponse{Token: token, User: response})
}

type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

func (ac *AuthController) VerifyCode(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := ac.users.FindByEmail(req.Email)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "usuario no encontrado")
		return
	}

	if !ac.emailService.VerifyCode(req.Email, req.Code) {
		utils.SendError(c, http.StatusBadRequest, "código no válido o expirado")
		return
	}

	user.EmailVerified = true
	if _, err := ac.users.Update(*user); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "error al verificar el email")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verificado correctamente"})
}

func (ac *AuthController) Logout(c *gin.Context) {
	// Stateless JWT sessions; logout happens client-side.
	c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
}

func generateJWT(userID, email, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(tokenLifetime).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
