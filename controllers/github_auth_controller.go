package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"motosgarage-api/models"
	"motosgarage-api/repositories"
	"motosgarage-api/utils"
)

// GitHubAuthController signs users in through the GitHub OAuth code flow:
// the dashboard front end sends the authorization code, the server exchanges
// it for an access token, fetches the profile and issues a regular JWT.
type GitHubAuthController struct {
	users        repositories.UserRepository
	jwtSecret    string
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

func NewGitHubAuthController(users repositories.UserRepository, jwtSecret, clientID, clientSecret string) *GitHubAuthController {
	return &GitHubAuthController{
		users:        users,
		jwtSecret:    jwtSecret,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

type GitHubLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

type githubTokenResponse struct {
	AccessToken string `json:"access_token"`
	Error       string `json:"error"`
}

type githubUserInfo struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

func (gc *GitHubAuthController) GitHubLogin(c *gin.Context) {
	var req GitHubLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	accessToken, err := gc.exchangeCode(req.Code)
	if err != nil {
		utils.SendError(c, http.StatusUnauthorized, "código de GitHub no válido")
		return
	}

	info, err := gc.fetchUser(accessToken)
	if err != nil {
		utils.SendError(c, http.StatusUnauthorized, "no se pudo obtener el perfil de GitHub")
		return
	}

	user, isNewUser, err := gc.findOrCreateUser(info)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "error al procesar el usuario")
		return
	}

	token, err := generateJWT(user.ID, user.Email, gc.jwtSecret)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "error al generar el token")
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"token":       token,
		"user":        user,
		"is_new_user": isNewUser,
	})
}

func (gc *GitHubAuthController) exchangeCode(code string) (string, error) {
	form := url.Values{
		"client_id":     {gc.clientID},
		"client_secret": {gc.clientSecret},
		"code":          {code},
	}

	req, err := http.NewRequest(http.MethodPost, "https://github.com/login/oauth/access_token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := gc.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var token githubTokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", err
	}
	if token.Error != "" || token.AccessToken == "" {
		return "", fmt.Errorf("token exchange failed: %s", token.Error)
	}

	return token.AccessToken, nil
}

func (gc *GitHubAuthController) fetchUser(accessToken string) (*githubUserInfo, error) {
	req, err := http.NewRequest(http.MethodGet, "https://api.github.com/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := gc.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github profile request failed: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var info githubUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, err
	}
	if info.Login == "" {
		return nil, fmt.Errorf("incomplete github profile")
	}

	// Users can hide their email; fall back to the noreply address GitHub
	// assigns to every account.
	if info.Email == "" {
		info.Email = info.Login + "@users.noreply.github.com"
	}
	if info.Name == "" {
		info.Name = info.Login
	}

	return &info, nil
}

func (gc *GitHubAuthController) findOrCreateUser(info *githubUserInfo) (models.User, bool, error) {
	if existing, err := gc.users.FindByEmail(info.Email); err == nil {
		return *existing, false, nil
	}

	var avatar *string
	if info.AvatarURL != "" {
		avatar = &info.AvatarURL
	}

	user, err := gc.users.Create(models.User{
		ID:            uuid.New().String(),
		Name:          info.Name,
		Email:         info.Email,
		Provider:      "github",
		EmailVerified: true,
		Avatar:        avatar,
	})
	if err != nil {
		return models.User{}, false, err
	}

	return user, true, nil
}
