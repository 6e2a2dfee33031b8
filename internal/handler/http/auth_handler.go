package http

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/sumitgupta24/eventxpert-backend/internal/handler/http/dto"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

const (
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	oauthStateCookie  = "oauthState"
)

type AuthHandler struct {
	UserUseCase usecasecontract.IUserUseCase
	oauthConfig *oauth2.Config
	userInfoURL string
}

func NewAuthHandler(uc usecasecontract.IUserUseCase, baseURL, clientID, clientSecret string) *AuthHandler {
	return &AuthHandler{
		UserUseCase: uc,
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  strings.TrimRight(baseURL, "/") + "/api/users/google/callback",
			Scopes:       []string{"email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
	}
}

type UserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *AuthHandler) HandleGoogleLogin(ctx *gin.Context) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		ErrorHandler(ctx, http.StatusInternalServerError, "Server error")
		return
	}
	state := base64.URLEncoding.EncodeToString(b)
	ctx.SetCookie(oauthStateCookie, state, 300, "/", "", false, true)

	ctx.Redirect(http.StatusTemporaryRedirect, h.oauthConfig.AuthCodeURL(state))
}

func (h *AuthHandler) HandleGoogleCallback(ctx *gin.Context) {
	state := ctx.Query("state")
	cookieState, err := ctx.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != cookieState {
		ErrorHandler(ctx, http.StatusUnauthorized, "Invalid OAuth state")
		return
	}
	ctx.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := ctx.Query("code")
	if code == "" {
		ErrorHandler(ctx, http.StatusBadRequest, "Authorization code not provided")
		return
	}

	requestCtx := ctx.Request.Context()
	token, err := h.oauthConfig.Exchange(requestCtx, code)
	if err != nil {
		_ = ctx.Error(err)
		ErrorHandler(ctx, http.StatusUnauthorized, "Failed to exchange authorization code")
		return
	}

	resp, err := h.oauthConfig.Client(requestCtx, token).Get(h.userInfoURL)
	if err != nil {
		_ = ctx.Error(err)
		ErrorHandler(ctx, http.StatusInternalServerError, "Failed to get user info")
		return
	}
	defer resp.Body.Close()

	var userInfo UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil || userInfo.Email == "" {
		ErrorHandler(ctx, http.StatusInternalServerError, "Failed to decode user info")
		return
	}

	accessToken, refreshToken, err := h.UserUseCase.LoginWithOAuth(requestCtx, userInfo.Name, userInfo.Email)
	if err != nil {
		HandleError(ctx, err)
		return
	}
	SuccessHandler(ctx, http.StatusOK, dto.TokenResponse{Token: accessToken, RefreshToken: refreshToken})
}
