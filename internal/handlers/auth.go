package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/polyglotlabs/linguachat-backend/internal/config"
	"github.com/polyglotlabs/linguachat-backend/internal/database"
	"github.com/polyglotlabs/linguachat-backend/internal/models"
	"github.com/polyglotlabs/linguachat-backend/pkg/logger"
	"github.com/polyglotlabs/linguachat-backend/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const minRegistrationAge = 13

type RegisterInput struct {
	Nickname   string  `json:"nickname" binding:"required"`
	Login      string  `json:"login" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required"`
	DayOfBirth string  `json:"dayOfBirth" binding:"required"` // YYYY-MM-DD
	CityID     *string `json:"cityId"`
}

type LoginInput struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validationErrors := []string{}

	var existing models.User
	if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		validationErrors = append(validationErrors, "Email already exists")
	}
	if err := database.DB.Where("login = ?", input.Login).First(&existing).Error; err == nil {
		validationErrors = append(validationErrors, "Login already exists")
	}
	if err := database.DB.Where("nickname = ?", input.Nickname).First(&existing).Error; err == nil {
		validationErrors = append(validationErrors, "Nickname already exists")
	}

	birth, err := time.Parse("2006-01-02", input.DayOfBirth)
	if err != nil {
		validationErrors = append(validationErrors, "Date of birth must be YYYY-MM-DD")
	} else if age(birth) < minRegistrationAge {
		validationErrors = append(validationErrors, "You must be at least 13 years old to register")
	}

	if len(input.Password) < 8 {
		validationErrors = append(validationErrors, "Password must be at least 8 characters")
	}

	if len(validationErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationErrors})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	// Key pair for end-to-end encryption; clients pull it after login.
	publicKey, privateKey, err := utils.GenerateKeyPair()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate RSA key pair")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate encryption keys"})
		return
	}

	user := models.User{
		Nickname:         input.Nickname,
		Login:            input.Login,
		Email:            input.Email,
		Password:         string(hashedPassword),
		DayOfBirth:       &birth,
		RegistrationDate: time.Now().UTC(),
		PublicKey:        publicKey,
		PrivateKey:       privateKey,
	}

	if input.CityID != nil {
		var city models.City
		if err := database.DB.First(&city, "id = ?", *input.CityID).Error; err == nil {
			user.CityID = input.CityID
		}
	}

	if result := database.DB.Create(&user); result.Error != nil {
		logger.Warn().Err(result.Error).Str("login", input.Login).Msg("Registration failed: unique violation")
		c.JSON(http.StatusConflict, gin.H{"error": "User with this email, login or nickname already exists"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	logger.Info().Str("user_id", user.ID).Msg("User registered successfully")

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

func age(birth time.Time) int {
	now := time.Now()
	years := now.Year() - birth.Year()
	if now.YearDay() < birth.YearDay() {
		years--
	}
	return years
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if result := database.DB.Where("login = ?", input.Login).First(&user); result.Error != nil {
		logger.Warn().Str("login", input.Login).Msg("Login failed: user not found")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		logger.Warn().Str("login", input.Login).Msg("Login failed: invalid password")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	logger.Info().Str("user_id", user.ID).Msg("User logged in")

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout invalidates the token server-side by adding its jti to the Redis
// blacklist until the token would have expired on its own.
func Logout(c *gin.Context) {
	claimsInterface, exists := c.Get("claims")
	if !exists {
		c.JSON(http.StatusOK, gin.H{"message": "Already logged out"})
		return
	}

	claims, ok := claimsInterface.(*utils.Claims)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"message": "Already logged out"})
		return
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 0 {
		if err := database.BlacklistToken(claims.GetJTI(), ttl); err != nil {
			logger.Error().Err(err).Msg("Failed to blacklist token")
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// --- Google OAuth ---

var googleOAuthConfig *oauth2.Config

func InitOAuthConfig() {
	googleOAuthConfig = &oauth2.Config{
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		RedirectURL:  config.AppConfig.GoogleCallbackURL,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}
}

func GoogleLogin(c *gin.Context) {
	url := googleOAuthConfig.AuthCodeURL("state", oauth2.AccessTypeOffline)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

func GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}

	token, err := googleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		logger.Error().Err(err).Msg("OAuth code exchange failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "OAuth exchange failed"})
		return
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user info"})
		return
	}
	defer resp.Body.Close()

	var info struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Email == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user info response"})
		return
	}

	var user models.User
	err = database.DB.Where("email = ?", info.Email).First(&user).Error
	if err != nil {
		// First sign-in: provision an account. Nickname from the email local
		// part, deduplicated with a short uuid suffix.
		nickname := strings.SplitN(info.Email, "@", 2)[0]
		var clash models.User
		if database.DB.Where("nickname = ?", nickname).First(&clash).Error == nil {
			nickname = nickname + "-" + utils.GenerateID()[:8]
		}

		publicKey, privateKey, kerr := utils.GenerateKeyPair()
		if kerr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate encryption keys"})
			return
		}

		user = models.User{
			Nickname:         nickname,
			Login:            info.Email,
			Email:            info.Email,
			RegistrationDate: time.Now().UTC(),
			PublicKey:        publicKey,
			PrivateKey:       privateKey,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			logger.Error().Err(err).Msg("Failed to provision OAuth user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}
	}

	jwtToken, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, config.AppConfig.FrontendURL+"/oauth/callback?token="+jwtToken)
}
