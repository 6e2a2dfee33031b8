package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

type userFixture struct {
	users  *fakeUserRepo
	tokens *fakeTokenRepo
	mailer *fakeMailer
	uc     *UserUsecase
}

func newUserFixture() *userFixture {
	f := &userFixture{
		users:  newFakeUserRepo(),
		tokens: newFakeTokenRepo(),
		mailer: &fakeMailer{},
	}
	f.uc = NewUserUsecase(f.users, f.tokens, fakeHasher{}, &fakeJWT{}, f.mailer, &fakeUploader{},
		nopLogger{}, fakeConfig{}, fakeValidator{}, &seqUUID{}, &fakeRandom{})
	return f
}

func studentInput() usecasecontract.RegisterInput {
	return usecasecontract.RegisterInput{
		Name:     "Asha Rao",
		Email:    "Asha@Campus.edu ",
		Password: "secret123",
		Profile: entity.ProfileFields{
			Gender:      strPtr("Female"),
			RollNo:      strPtr("CS21-014"),
			Department:  strPtr("CSE"),
			SocietyName: strPtr("Robotics Club"),
		},
	}
}

func TestRegister_Student(t *testing.T) {
	f := newUserFixture()

	user, access, refresh, err := f.uc.Register(context.Background(), studentInput())
	require.NoError(t, err)
	assert.Equal(t, "asha@campus.edu", user.Email)
	assert.Equal(t, entity.UserRoleStudent, user.Role)
	assert.Equal(t, "hashed:secret123", user.PasswordHash)
	assert.Equal(t, entity.DefaultProfilePicture, user.ProfilePicture)
	require.NotNil(t, user.RollNo)
	assert.Equal(t, "CS21-014", *user.RollNo)
	assert.Nil(t, user.SocietyName, "students carry no society")
	assert.NotNil(t, user.RegisteredEvents)
	assert.True(t, strings.HasPrefix(access, "access|"))
	assert.True(t, strings.HasPrefix(refresh, "refresh|"))

	stored, err := f.tokens.GetTokenByHash(context.Background(), "sha:"+refresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.UserID)
}

func TestRegister_Organizer(t *testing.T) {
	f := newUserFixture()
	in := studentInput()
	in.Role = "organizer"

	user, _, _, err := f.uc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleOrganizer, user.Role)
	require.NotNil(t, user.SocietyName)
	assert.Equal(t, "Robotics Club", *user.SocietyName)
}

func TestRegister_Rejections(t *testing.T) {
	f := newUserFixture()
	_, _, _, err := f.uc.Register(context.Background(), studentInput())
	require.NoError(t, err)

	_, _, _, err = f.uc.Register(context.Background(), studentInput())
	assert.ErrorIs(t, err, ErrConflict)
	assert.EqualError(t, err, "User already exists")

	in := studentInput()
	in.Email = "admin@campus.edu"
	in.Role = "admin"
	_, _, _, err = f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.EqualError(t, err, "Direct admin registration is not allowed")

	in.Role = "superuser"
	_, _, _, err = f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = studentInput()
	in.Email = "other@campus.edu"
	in.Password = "short"
	_, _, _, err = f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = studentInput()
	in.Email = "other@campus.edu"
	in.Profile.Gender = strPtr("Robot")
	_, _, _, err = f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	f := newUserFixture()
	_, _, _, err := f.uc.Register(context.Background(), studentInput())
	require.NoError(t, err)

	user, access, _, err := f.uc.Login(context.Background(), "asha@campus.edu", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", user.Name)
	assert.NotEmpty(t, access)

	_, _, _, err = f.uc.Login(context.Background(), "asha@campus.edu", "wrong-pass")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.EqualError(t, err, "Invalid email or password")

	_, _, _, err = f.uc.Login(context.Background(), "nobody@campus.edu", "secret123")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticate(t *testing.T) {
	f := newUserFixture()
	user, access, _, err := f.uc.Register(context.Background(), studentInput())
	require.NoError(t, err)

	got, err := f.uc.Authenticate(context.Background(), access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = f.uc.Authenticate(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, f.users.DeleteUser(context.Background(), user.ID))
	_, err = f.uc.Authenticate(context.Background(), access)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRefreshTokenRotation(t *testing.T) {
	f := newUserFixture()
	_, _, refresh, err := f.uc.Register(context.Background(), studentInput())
	require.NoError(t, err)

	access2, refresh2, err := f.uc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access2)
	assert.NotEqual(t, refresh, refresh2)

	// the old token was rotated out
	_, _, err = f.uc.RefreshToken(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, f.uc.Logout(context.Background(), refresh2))
	_, _, err = f.uc.RefreshToken(context.Background(), refresh2)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// logging out twice or with junk is harmless
	assert.NoError(t, f.uc.Logout(context.Background(), refresh2))
	assert.NoError(t, f.uc.Logout(context.Background(), "junk"))
}

func TestLoginWithOAuth_CreatesStudentOnce(t *testing.T) {
	f := newUserFixture()

	access, refresh, err := f.uc.LoginWithOAuth(context.Background(), "Ravi", "Ravi@Gmail.com")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	_, _, err = f.uc.LoginWithOAuth(context.Background(), "Ravi", "ravi@gmail.com")
	require.NoError(t, err)

	count, _ := f.users.CountUsers(context.Background())
	assert.Equal(t, int64(1), count)
	u, err := f.users.GetUserByEmail(context.Background(), "ravi@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleStudent, u.Role)
}

func TestUpdateProfile(t *testing.T) {
	f := newUserFixture()
	user, _, _, err := f.uc.Register(context.Background(), studentInput())
	require.NoError(t, err)

	updated, token, err := f.uc.UpdateProfile(context.Background(), user.ID, usecasecontract.ProfileUpdate{
		Name:           strPtr("Asha R."),
		ProfilePicture: strPtr("data:image/png;base64,AAAA"),
		Password:       strPtr("newsecret99"),
		Profile:        entity.ProfileFields{Department: strPtr("ECE")},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Asha R.", updated.Name)
	assert.Equal(t, "https://cdn.example.com/profile_pictures/img.png", updated.ProfilePicture)
	assert.Equal(t, "ECE", *updated.Department)
	assert.Equal(t, "CS21-014", *updated.RollNo, "unspecified fields are kept")
	assert.Equal(t, "hashed:newsecret99", updated.PasswordHash)
	assert.Equal(t, entity.UserRoleStudent, updated.Role)
}

func TestUpdateProfile_EmailTaken(t *testing.T) {
	f := newUserFixture()
	user, _, _, err := f.uc.Register(context.Background(), studentInput())
	require.NoError(t, err)
	other := studentInput()
	other.Email = "other@campus.edu"
	_, _, _, err = f.uc.Register(context.Background(), other)
	require.NoError(t, err)

	_, _, err = f.uc.UpdateProfile(context.Background(), user.ID, usecasecontract.ProfileUpdate{Email: strPtr("other@campus.edu")})
	assert.ErrorIs(t, err, ErrConflict)

	// keeping one's own email is fine
	_, _, err = f.uc.UpdateProfile(context.Background(), user.ID, usecasecontract.ProfileUpdate{Email: strPtr("ASHA@campus.edu")})
	assert.NoError(t, err)
}

func TestAdminUpdateUser_RoleChangeRenormalisesProfile(t *testing.T) {
	f := newUserFixture()
	in := studentInput()
	in.Role = "organizer"
	user, _, _, err := f.uc.Register(context.Background(), in)
	require.NoError(t, err)

	updated, err := f.uc.AdminUpdateUser(context.Background(), user.ID, usecasecontract.AdminUserUpdate{Role: strPtr("student")})
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleStudent, updated.Role)
	assert.Nil(t, updated.SocietyName)

	_, err = f.uc.AdminUpdateUser(context.Background(), user.ID, usecasecontract.AdminUserUpdate{Role: strPtr("wizard")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.AdminUpdateUser(context.Background(), "missing", usecasecontract.AdminUserUpdate{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	f := newUserFixture()
	f.users.put(&entity.User{ID: "admin-1", Email: "root@campus.edu", Role: entity.UserRoleAdmin})
	user, _, refresh, err := f.uc.Register(context.Background(), studentInput())
	require.NoError(t, err)

	err = f.uc.DeleteUser(context.Background(), "admin-1")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.EqualError(t, err, "Cannot delete admin user")

	require.NoError(t, f.uc.DeleteUser(context.Background(), user.ID))
	_, err = f.uc.GetUserByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	stored, err := f.tokens.GetTokenByHash(context.Background(), "sha:"+refresh)
	require.NoError(t, err)
	assert.True(t, stored.Revoke)
}

func TestForgotAndResetPassword(t *testing.T) {
	f := newUserFixture()
	user, _, refresh, err := f.uc.Register(context.Background(), studentInput())
	require.NoError(t, err)

	require.NoError(t, f.uc.ForgotPassword(context.Background(), "asha@campus.edu"))
	require.Len(t, f.mailer.sent, 1)
	mail := f.mailer.sent[0]
	assert.Equal(t, "asha@campus.edu", mail.to)
	assert.Equal(t, "Password Reset Request", mail.subject)
	assert.Contains(t, mail.body, "http://localhost:5173/resetpassword/")
	assert.Contains(t, mail.body, "10 minutes")

	stored, _ := f.users.GetUserByID(context.Background(), user.ID)
	require.NotNil(t, stored.ResetPasswordToken)
	token := strings.TrimPrefix(*stored.ResetPasswordToken, "sha:")
	assert.Contains(t, mail.body, token, "the link carries the raw token, the store keeps its hash")

	err = f.uc.ResetPassword(context.Background(), token, "brandnew1", "brandnew2")
	assert.EqualError(t, err, "Passwords do not match")

	require.NoError(t, f.uc.ResetPassword(context.Background(), token, "brandnew1", "brandnew1"))
	stored, _ = f.users.GetUserByID(context.Background(), user.ID)
	assert.Equal(t, "hashed:brandnew1", stored.PasswordHash)
	assert.Nil(t, stored.ResetPasswordToken)

	// single use
	err = f.uc.ResetPassword(context.Background(), token, "brandnew1", "brandnew1")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.EqualError(t, err, "Invalid or expired reset token")

	// existing sessions are revoked
	_, _, err = f.uc.RefreshToken(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResetPassword_Expired(t *testing.T) {
	f := newUserFixture()
	user, _, _, err := f.uc.Register(context.Background(), studentInput())
	require.NoError(t, err)
	require.NoError(t, f.users.SetPasswordResetToken(context.Background(), user.ID, "sha:old", time.Now().Add(-time.Minute)))

	err = f.uc.ResetPassword(context.Background(), "old", "brandnew1", "brandnew1")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestForgotPassword_Failures(t *testing.T) {
	f := newUserFixture()
	user, _, _, err := f.uc.Register(context.Background(), studentInput())
	require.NoError(t, err)

	err = f.uc.ForgotPassword(context.Background(), "nobody@campus.edu")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "User with that email does not exist")

	f.mailer.err = errors.New("smtp down")
	err = f.uc.ForgotPassword(context.Background(), "asha@campus.edu")
	assert.ErrorIs(t, err, ErrEmailDelivery)
	stored, _ := f.users.GetUserByID(context.Background(), user.ID)
	assert.Nil(t, stored.ResetPasswordToken, "token is cleared when the mail fails")
}
