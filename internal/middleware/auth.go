package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/Humayun167/green-nest/config"
	"github.com/Humayun167/green-nest/pkg/errs"
	"github.com/Humayun167/green-nest/pkg/response"
	"github.com/Humayun167/green-nest/pkg/utils"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

const (
	UserTokenCookie   = "token"
	SellerTokenCookie = "sellerToken"

	ContextKeyUserID      = "userID"
	ContextKeySellerEmail = "sellerEmail"
)

// Authenticator guards routes with the signed session token. Tokens travel
// through exactly one transport: the Authorization bearer header or a cookie,
// as configured.
type Authenticator struct {
	secret       string
	transport    string
	sellerEmail  string
	secureCookie bool
	user         echo.MiddlewareFunc
	seller       echo.MiddlewareFunc
}

func CreateAuthenticator(config *config.Config) *Authenticator {
	a := &Authenticator{
		secret:       config.JWTSecret,
		transport:    config.TokenTransport,
		sellerEmail:  config.SellerConfig.Email,
		secureCookie: config.IsProduction(),
	}

	a.user = echomiddleware.JWTWithConfig(echomiddleware.JWTConfig{
		SigningKey:              []byte(config.JWTSecret),
		TokenLookup:             a.tokenLookup(UserTokenCookie),
		ContextKey:              ContextKeyUserID,
		ParseTokenFunc:          a.parseUserToken,
		ErrorHandlerWithContext: unauthorized("UserAuth"),
	})
	a.seller = echomiddleware.JWTWithConfig(echomiddleware.JWTConfig{
		SigningKey:              []byte(config.JWTSecret),
		TokenLookup:             a.tokenLookup(SellerTokenCookie),
		ContextKey:              ContextKeySellerEmail,
		ParseTokenFunc:          a.parseSellerToken,
		ErrorHandlerWithContext: unauthorized("SellerAuth"),
	})

	return a
}

func (a *Authenticator) UserAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return a.user(next)
}

// SellerAuth accepts only seller tokens issued for the configured seller.
func (a *Authenticator) SellerAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return a.seller(next)
}

func (a *Authenticator) tokenLookup(cookieName string) string {
	if a.transport == config.TokenTransportCookie {
		return "cookie:" + cookieName
	}
	return "header:" + echo.HeaderAuthorization + ":Bearer "
}

// parseUserToken resolves a token to the user id stored under ContextKeyUserID.
func (a *Authenticator) parseUserToken(auth string, c echo.Context) (interface{}, error) {
	claims, err := utils.ParseJWTToken(auth, a.secret)
	if err != nil {
		return nil, err
	}

	userID, ok := utils.ExtractUserID(claims)
	if !ok {
		return nil, utils.ErrInvalidToken
	}

	return userID, nil
}

// parseSellerToken resolves a token to the seller email stored under
// ContextKeySellerEmail.
func (a *Authenticator) parseSellerToken(auth string, c echo.Context) (interface{}, error) {
	claims, err := utils.ParseJWTToken(auth, a.secret)
	if err != nil {
		return nil, err
	}

	email, ok := utils.ExtractSellerEmail(claims)
	if !ok || a.sellerEmail == "" || subtle.ConstantTimeCompare([]byte(email), []byte(a.sellerEmail)) != 1 {
		return nil, utils.ErrInvalidToken
	}

	return email, nil
}

func unauthorized(component string) echomiddleware.JWTErrorHandlerWithContext {
	return func(err error, c echo.Context) error {
		log.Ctx(c.Request().Context()).Debug().Err(err).Str("component", component).Msg("")
		return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
	}
}

// IssueToken sets the session cookie when cookies are the configured
// transport. Header clients read the token from the response body instead.
func (a *Authenticator) IssueToken(c echo.Context, cookieName string, token string) {
	if a.transport != config.TokenTransportCookie {
		return
	}

	c.SetCookie(a.cookie(cookieName, token, time.Now().Add(utils.TokenTTL), int(utils.TokenTTL.Seconds())))
}

func (a *Authenticator) RevokeToken(c echo.Context, cookieName string) {
	if a.transport != config.TokenTransportCookie {
		return
	}

	c.SetCookie(a.cookie(cookieName, "", time.Unix(0, 0), -1))
}

func (a *Authenticator) cookie(name string, value string, expires time.Time, maxAge int) *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if a.secureCookie {
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   a.secureCookie,
		SameSite: sameSite,
	}
}

func UserID(c echo.Context) string {
	userID, _ := c.Get(ContextKeyUserID).(string)
	return userID
}

func SellerEmail(c echo.Context) string {
	email, _ := c.Get(ContextKeySellerEmail).(string)
	return email
}
