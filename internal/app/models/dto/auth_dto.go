package dto

// LoginRequest carries admin sign-in credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@kalasangam.club"`
	Password string `json:"password" binding:"required" example:"hunter2secret"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes the given refresh token.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse returns the issued token pair.
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn"`
	RefreshExpiresIn int    `json:"refreshExpiresIn"`
}

// PrincipalResponse describes the signed-in identity.
type PrincipalResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// LoginResponse is the full login payload.
type LoginResponse struct {
	Principal PrincipalResponse `json:"principal"`
	Tokens    TokenResponse     `json:"tokens"`
}
