package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

// Messages shown to clients.
const (
	msgUserExists          = "User already exists"
	msgNoAdminSignup       = "Direct admin registration is not allowed"
	msgInvalidLogin        = "Invalid email or password"
	msgCannotDeleteAdmin   = "Cannot delete admin user"
	msgNoSuchEmail         = "User with that email does not exist"
	msgInvalidResetToken   = "Invalid or expired reset token"
	msgPasswordsMismatch   = "Passwords do not match"
	msgEmailNotSent        = "Email could not be sent. Please try again later."
	msgInvalidRefreshToken = "Invalid or expired refresh token"
)

// UserUsecase implements the UserUseCase interface.
type UserUsecase struct {
	userRepo        contract.IUserRepository
	tokenRepo       contract.ITokenRepository
	hasher          contract.IHasher
	jwtService      JWTService
	mailService     contract.IEmailService
	imageUploader   contract.IImageUploader
	logger          usecasecontract.IAppLogger
	config          usecasecontract.IConfigProvider
	validator       usecasecontract.IValidator
	uuidGenerator   contract.IUUIDGenerator
	randomGenerator contract.IRandomGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	tokenRepo contract.ITokenRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	mailService contract.IEmailService,
	imageUploader contract.IImageUploader,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	randomgen contract.IRandomGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		hasher:          hasher,
		jwtService:      jwtService,
		mailService:     mailService,
		imageUploader:   imageUploader,
		logger:          logger,
		config:          cfg,
		validator:       validator,
		uuidGenerator:   uuidGenerator,
		randomGenerator: randomgen,
	}
}

// check if UserUseCase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (uc *UserUsecase) validateGender(p entity.ProfileFields) error {
	if p.Gender != nil && *p.Gender != "" && !entity.IsValidGender(*p.Gender) {
		return newError(ErrInvalidInput, fmt.Sprintf("invalid gender %q", *p.Gender))
	}
	return nil
}

// ensureEmailFree fails with a conflict when email belongs to a user other than selfID.
func (uc *UserUsecase) ensureEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, contract.ErrDocumentNotFound) {
			return nil
		}
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return storageError("check email", err)
	}
	if existing.ID != selfID {
		return newError(ErrConflict, msgUserExists)
	}
	return nil
}

// Register handles self-service sign-up. Admin accounts cannot be created here.
func (uc *UserUsecase) Register(ctx context.Context, in usecasecontract.RegisterInput) (*entity.User, string, string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, "", "", newError(ErrInvalidInput, "name is required")
	}
	email := normalizeEmail(in.Email)
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, "", "", newError(ErrInvalidInput, "invalid email format")
	}
	if err := uc.validator.ValidatePasswordStrength(in.Password); err != nil {
		return nil, "", "", newError(ErrInvalidInput, err.Error())
	}

	if err := uc.ensureEmailFree(ctx, email, ""); err != nil {
		return nil, "", "", err
	}

	role, ok := entity.ParseRole(strings.TrimSpace(in.Role))
	if !ok {
		return nil, "", "", newError(ErrInvalidInput, fmt.Sprintf("invalid role %q", in.Role))
	}
	if role == entity.UserRoleAdmin {
		return nil, "", "", newError(ErrInvalidInput, msgNoAdminSignup)
	}
	if err := uc.validateGender(in.Profile); err != nil {
		return nil, "", "", err
	}

	picture := in.ProfilePicture
	url, ok, err := resolveImage(ctx, uc.imageUploader, &picture, profilePictureFolder, entity.DefaultProfilePicture)
	if err != nil {
		return nil, "", "", err
	}
	if !ok {
		url = entity.DefaultProfilePicture
	}

	hashedPassword, err := uc.hasher.HashPassword(in.Password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, "", "", fmt.Errorf("failed to process password: %w", ErrStorage)
	}

	now := time.Now()
	user := &entity.User{
		ID:               uc.uuidGenerator.NewUUID(),
		Name:             name,
		Email:            email,
		PasswordHash:     hashedPassword,
		Role:             role,
		ProfilePicture:   url,
		RegisteredEvents: []entity.RegistrationEntry{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	user.SetProfile(in.Profile)

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, "", "", newError(ErrConflict, msgUserExists)
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, "", "", storageError("create user", err)
	}

	accessToken, refreshToken, err := uc.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	uc.logger.Infof("registered %s user %s", user.Role, user.ID)
	return user, accessToken, refreshToken, nil
}

// issueTokens creates an access token and a stored refresh token for user.
func (uc *UserUsecase) issueTokens(ctx context.Context, user *entity.User) (string, string, error) {
	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return "", "", errors.New("failed to generate token")
	}

	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate refresh token: %v", err)
		return "", "", errors.New("failed to generate token")
	}

	refreshTokenExpiry := uc.config.GetRefreshTokenExpiry()
	if refreshTokenExpiry <= 0 {
		uc.logger.Errorf("invalid refresh token expiry configuration: %v", refreshTokenExpiry)
		return "", "", errors.New("invalid refresh token expiry configuration")
	}

	tokenEntity := &entity.Token{
		ID:        uc.uuidGenerator.NewUUID(),
		UserID:    user.ID,
		TokenType: entity.TokenTypeRefresh,
		TokenHash: uc.hasher.HashString(refreshToken),
		ExpiresAt: time.Now().Add(refreshTokenExpiry),
		CreatedAt: time.Now(),
		Revoke:    false,
	}
	if err := uc.tokenRepo.CreateToken(ctx, tokenEntity); err != nil {
		uc.logger.Errorf("failed to store refresh token for user %s: %v", user.ID, err)
		return "", "", storageError("store token", err)
	}
	return accessToken, refreshToken, nil
}

// Login handles user login and token generation.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, contract.ErrDocumentNotFound) {
			return nil, "", "", newError(ErrUnauthorized, msgInvalidLogin)
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", "", storageError("login", err)
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", "", newError(ErrUnauthorized, msgInvalidLogin)
	}

	accessToken, refreshToken, err := uc.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	return user, accessToken, refreshToken, nil
}

// Authenticate resolves an access token to the current user.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", ErrUnauthorized)
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, contract.ErrDocumentNotFound) {
			return nil, fmt.Errorf("token subject missing: %w", ErrUnauthorized)
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, storageError("authenticate", err)
	}
	return user, nil
}

// RefreshToken rotates a refresh token and issues a new access token.
func (uc *UserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", "", newError(ErrUnauthorized, msgInvalidRefreshToken)
	}

	storedToken, err := uc.tokenRepo.GetTokenByHash(ctx, uc.hasher.HashString(refreshToken))
	if err != nil {
		if errors.Is(err, contract.ErrDocumentNotFound) {
			return "", "", newError(ErrUnauthorized, "refresh token not found or invalidated, please log in again")
		}
		uc.logger.Errorf("failed to retrieve stored refresh token: %v", err)
		return "", "", storageError("refresh token", err)
	}

	if storedToken.Revoke {
		return "", "", newError(ErrUnauthorized, "refresh token has been revoked, please log in again")
	}
	if storedToken.UserID != claims.UserID {
		uc.logger.Warnf("refresh token subject mismatch for user %s", claims.UserID)
		_ = uc.tokenRepo.RevokeToken(ctx, storedToken.ID)
		return "", "", newError(ErrUnauthorized, msgInvalidRefreshToken)
	}
	if storedToken.ExpiresAt.Before(time.Now()) {
		_ = uc.tokenRepo.RevokeToken(ctx, storedToken.ID)
		return "", "", newError(ErrUnauthorized, "refresh token expired, please log in again")
	}

	// The role may have changed since the refresh token was issued.
	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, contract.ErrDocumentNotFound) {
			_ = uc.tokenRepo.RevokeToken(ctx, storedToken.ID)
			return "", "", newError(ErrUnauthorized, msgInvalidRefreshToken)
		}
		return "", "", storageError("refresh token", err)
	}

	newAccessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate new access token during refresh: %v", err)
		return "", "", errors.New("failed to generate new access token")
	}
	newRefreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate new refresh token during refresh: %v", err)
		return "", "", errors.New("failed to generate new refresh token")
	}

	err = uc.tokenRepo.UpdateToken(ctx, storedToken.ID, uc.hasher.HashString(newRefreshToken), time.Now().Add(uc.config.GetRefreshTokenExpiry()))
	if err != nil {
		uc.logger.Errorf("failed to update refresh token in db: %v", err)
		return "", "", storageError("rotate token", err)
	}
	return newAccessToken, newRefreshToken, nil
}

// Logout revokes the given refresh token. Unknown tokens are treated as already revoked.
func (uc *UserUsecase) Logout(ctx context.Context, refreshToken string) error {
	if _, err := uc.jwtService.ParseRefreshToken(refreshToken); err != nil {
		uc.logger.Warnf("failed to parse refresh token on logout, assuming it's already invalid: %v", err)
		return nil
	}

	storedToken, err := uc.tokenRepo.GetTokenByHash(ctx, uc.hasher.HashString(refreshToken))
	if err != nil {
		if errors.Is(err, contract.ErrDocumentNotFound) {
			return nil
		}
		uc.logger.Errorf("failed to retrieve stored refresh token on logout: %v", err)
		return storageError("logout", err)
	}

	if err := uc.tokenRepo.RevokeToken(ctx, storedToken.ID); err != nil {
		uc.logger.Errorf("failed to revoke refresh token %s: %v", storedToken.ID, err)
		return storageError("revoke token", err)
	}
	return nil
}

// LoginWithOAuth signs in a Google account, creating a student on first use.
func (uc *UserUsecase) LoginWithOAuth(ctx context.Context, name, email string) (string, string, error) {
	email = normalizeEmail(email)
	if err := uc.validator.ValidateEmail(email); err != nil {
		return "", "", newError(ErrInvalidInput, "invalid email from identity provider")
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, contract.ErrDocumentNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return "", "", storageError("oauth lookup", err)
	}

	if user == nil {
		// OAuth accounts get a random password nobody knows.
		secret, err := uc.randomGenerator.GenerateRandomToken(32)
		if err != nil {
			return "", "", fmt.Errorf("failed to generate password: %w", err)
		}
		hashed, err := uc.hasher.HashPassword(secret)
		if err != nil {
			return "", "", fmt.Errorf("failed to process password: %w", ErrStorage)
		}
		if strings.TrimSpace(name) == "" {
			name = email
		}
		now := time.Now()
		user = &entity.User{
			ID:               uc.uuidGenerator.NewUUID(),
			Name:             strings.TrimSpace(name),
			Email:            email,
			PasswordHash:     hashed,
			Role:             entity.UserRoleStudent,
			ProfilePicture:   entity.DefaultProfilePicture,
			RegisteredEvents: []entity.RegistrationEntry{},
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := uc.userRepo.CreateUser(ctx, user); err != nil {
			uc.logger.Errorf("failed to create user from OAuth: %v", err)
			return "", "", storageError("create oauth user", err)
		}
	}

	return uc.issueTokens(ctx, user)
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, contract.ErrDocumentNotFound) {
			uc.logger.Errorf("failed to retrieve user by ID: %v", err)
		}
		return nil, classify(err, ErrUserNotFound, "get user")
	}
	return user, nil
}

// UpdateProfile applies a user's edits to their own account. The role cannot
// be changed here. A fresh access token is returned alongside the user.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID string, in usecasecontract.ProfileUpdate) (*entity.User, string, error) {
	user, err := uc.GetUserByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) != "" {
		email := normalizeEmail(*in.Email)
		if err := uc.validator.ValidateEmail(email); err != nil {
			return nil, "", newError(ErrInvalidInput, "invalid email format")
		}
		if email != user.Email {
			if err := uc.ensureEmailFree(ctx, email, user.ID); err != nil {
				return nil, "", err
			}
			user.Email = email
		}
	}
	if url, ok, err := resolveImage(ctx, uc.imageUploader, in.ProfilePicture, profilePictureFolder, entity.DefaultProfilePicture); err != nil {
		return nil, "", err
	} else if ok {
		user.ProfilePicture = url
	}

	if err := uc.validateGender(in.Profile); err != nil {
		return nil, "", err
	}
	user.SetProfile(user.Profile().Merge(in.Profile))

	if in.Password != nil && *in.Password != "" {
		if err := uc.validator.ValidatePasswordStrength(*in.Password); err != nil {
			return nil, "", newError(ErrInvalidInput, err.Error())
		}
		hashed, err := uc.hasher.HashPassword(*in.Password)
		if err != nil {
			return nil, "", fmt.Errorf("failed to process password: %w", ErrStorage)
		}
		user.PasswordHash = hashed
	}

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, "", newError(ErrConflict, msgUserExists)
		}
		uc.logger.Errorf("failed to update profile for user %s: %v", userID, err)
		return nil, "", classify(err, ErrUserNotFound, "update profile")
	}

	token, err := uc.jwtService.GenerateAccessToken(updated.ID, updated.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", errors.New("failed to generate token")
	}
	return updated, token, nil
}

// ListUsers returns all users for the admin console.
func (uc *UserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.userRepo.ListUsers(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list users: %v", err)
		return nil, storageError("list users", err)
	}
	return users, nil
}

// AdminUpdateUser applies an administrator's edits, including role changes.
func (uc *UserUsecase) AdminUpdateUser(ctx context.Context, userID string, in usecasecontract.AdminUserUpdate) (*entity.User, error) {
	user, err := uc.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil && strings.TrimSpace(*in.Email) != "" {
		email := normalizeEmail(*in.Email)
		if err := uc.validator.ValidateEmail(email); err != nil {
			return nil, newError(ErrInvalidInput, "invalid email format")
		}
		if email != user.Email {
			if err := uc.ensureEmailFree(ctx, email, user.ID); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}
	if in.Role != nil && *in.Role != "" {
		role, ok := entity.ParseRole(*in.Role)
		if !ok {
			return nil, newError(ErrInvalidInput, fmt.Sprintf("invalid role %q", *in.Role))
		}
		user.Role = role
	}
	if in.ProfilePicture != nil && *in.ProfilePicture != "" {
		url, _, err := resolveImage(ctx, uc.imageUploader, in.ProfilePicture, profilePictureFolder, entity.DefaultProfilePicture)
		if err != nil {
			return nil, err
		}
		user.ProfilePicture = url
	}
	if err := uc.validateGender(in.Profile); err != nil {
		return nil, err
	}
	// Re-normalise against the possibly new role.
	user.SetProfile(user.Profile().Merge(in.Profile))

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, newError(ErrConflict, msgUserExists)
		}
		uc.logger.Errorf("failed to update user %s: %v", userID, err)
		return nil, classify(err, ErrUserNotFound, "update user")
	}
	return updated, nil
}

// DeleteUser removes a non-admin account and revokes its sessions.
func (uc *UserUsecase) DeleteUser(ctx context.Context, userID string) error {
	user, err := uc.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role == entity.UserRoleAdmin {
		return newError(ErrInvalidInput, msgCannotDeleteAdmin)
	}
	if err := uc.userRepo.DeleteUser(ctx, userID); err != nil {
		uc.logger.Errorf("failed to delete user %s: %v", userID, err)
		return classify(err, ErrUserNotFound, "delete user")
	}
	if err := uc.tokenRepo.RevokeAllTokensForUser(ctx, userID, entity.TokenTypeRefresh); err != nil {
		uc.logger.Warnf("failed to revoke tokens of deleted user %s: %v", userID, err)
	}
	return nil
}

// ForgotPassword emails a single-use reset link. The stored value is the
// sha256 of the token; a failed send clears it again.
func (uc *UserUsecase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, contract.ErrDocumentNotFound) {
			return newError(ErrNotFound, msgNoSuchEmail)
		}
		return storageError("forgot password", err)
	}

	resetToken, err := uc.randomGenerator.GenerateHexToken(32)
	if err != nil {
		return fmt.Errorf("failed to create password reset token: %w", err)
	}
	expiresAt := time.Now().Add(uc.config.GetPasswordResetTokenExpiry())
	if err := uc.userRepo.SetPasswordResetToken(ctx, user.ID, uc.hasher.HashString(resetToken), expiresAt); err != nil {
		uc.logger.Errorf("failed to store password reset token for user %s: %v", user.ID, err)
		return storageError("store reset token", err)
	}

	resetLink := fmt.Sprintf("%s/resetpassword/%s", strings.TrimRight(uc.config.GetFrontendURL(), "/"), resetToken)
	minutes := int(uc.config.GetPasswordResetTokenExpiry().Minutes())
	emailSubject := "Password Reset Request"
	emailBody := fmt.Sprintf("<h1>You have requested a password reset</h1>\n"+
		"<p>Please go to this link to reset your password:</p>\n"+
		"<a href=%s clicktracking=off>%s</a>\n"+
		"<p>This link is valid for %d minutes only.</p>\n", resetLink, resetLink, minutes)

	if err := uc.mailService.SendEmail(ctx, user.Email, emailSubject, emailBody); err != nil {
		uc.logger.Errorf("failed to send password reset email to %s: %v", user.Email, err)
		if clearErr := uc.userRepo.ClearPasswordResetToken(ctx, user.ID); clearErr != nil {
			uc.logger.Errorf("failed to clear reset token for user %s: %v", user.ID, clearErr)
		}
		return newError(ErrEmailDelivery, msgEmailNotSent)
	}
	return nil
}

// ResetPassword sets a new password using an emailed reset token.
func (uc *UserUsecase) ResetPassword(ctx context.Context, resetToken, password, confirmPassword string) error {
	user, err := uc.userRepo.GetUserByResetToken(ctx, uc.hasher.HashString(resetToken), time.Now())
	if err != nil {
		if errors.Is(err, contract.ErrDocumentNotFound) {
			return newError(ErrInvalidInput, msgInvalidResetToken)
		}
		return storageError("reset password", err)
	}

	if password != confirmPassword {
		return newError(ErrInvalidInput, msgPasswordsMismatch)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return newError(ErrInvalidInput, err.Error())
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", ErrStorage)
	}
	if err := uc.userRepo.UpdateUserPassword(ctx, user.ID, hashedPassword); err != nil {
		return classify(err, ErrUserNotFound, "update password")
	}
	if err := uc.userRepo.ClearPasswordResetToken(ctx, user.ID); err != nil {
		return storageError("clear reset token", err)
	}
	if err := uc.tokenRepo.RevokeAllTokensForUser(ctx, user.ID, entity.TokenTypeRefresh); err != nil {
		uc.logger.Warnf("failed to revoke sessions after password reset for %s: %v", user.ID, err)
	}
	return nil
}
