package users

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/stroketeam/fasttrack/internal/platform/apperr"
)

type mockRepo struct {
	users map[string]*User
}

func newMockRepo() *mockRepo {
	return &mockRepo{users: make(map[string]*User)}
}

func (m *mockRepo) Create(_ context.Context, u *User) error {
	if _, ok := m.users[u.Username]; ok {
		return apperr.Conflict("Username or Email already exists. Please choose a different one.")
	}
	m.users[u.Username] = u
	return nil
}

func (m *mockRepo) GetByUsername(_ context.Context, username string) (*User, error) {
	u, ok := m.users[username]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}

func (m *mockRepo) GetByLogin(_ context.Context, usernameOrEmail string) (*User, error) {
	for _, u := range m.users {
		if u.Username == usernameOrEmail || u.Email == usernameOrEmail {
			return u, nil
		}
	}
	return nil, apperr.NotFound("User not found")
}

func (m *mockRepo) ExistsByLogin(_ context.Context, email, username string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepo) List(_ context.Context) ([]*User, error) {
	var list []*User
	for _, u := range m.users {
		list = append(list, u)
	}
	return list, nil
}

func (m *mockRepo) Update(_ context.Context, username string, fields UpdateFields) error {
	u, ok := m.users[username]
	if !ok {
		return apperr.NotFound("User not found")
	}
	if fields.Role != nil {
		u.Role = *fields.Role
	}
	if fields.Name != nil {
		u.Name = *fields.Name
	}
	if fields.Email != nil {
		u.Email = *fields.Email
	}
	if fields.DepartmentID != nil {
		u.DepartmentID = fields.DepartmentID
	}
	return nil
}

func (m *mockRepo) SetStatus(_ context.Context, username string, status bool) error {
	u, ok := m.users[username]
	if !ok {
		return apperr.NotFound("User not found")
	}
	u.Status = status
	return nil
}

func (m *mockRepo) SetPassword(_ context.Context, username, passwordHash string) error {
	u, ok := m.users[username]
	if !ok {
		return apperr.NotFound("User not found")
	}
	u.PasswordHash = passwordHash
	return nil
}

func (m *mockRepo) Delete(_ context.Context, username string) error {
	if _, ok := m.users[username]; !ok {
		return apperr.NotFound("User not found")
	}
	delete(m.users, username)
	return nil
}

func register(t *testing.T, svc *Service) *User {
	t.Helper()
	u, err := svc.Register(context.Background(), "Nurse Malee", "malee@example.org", "malee", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return u
}

func TestRegister(t *testing.T) {
	svc := NewService(newMockRepo())

	u := register(t, svc)
	if u.Role != RoleNurse {
		t.Errorf("expected default role nurse, got %s", u.Role)
	}
	if u.Status {
		t.Error("expected new account disabled until approved")
	}
	if u.PasswordHash == "s3cret" {
		t.Error("expected password hashed, got plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	svc := NewService(newMockRepo())
	register(t, svc)

	_, err := svc.Register(context.Background(), "Other", "other@example.org", "malee", "pw")
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error on duplicate username, got %v", err)
	}
	_, err = svc.Register(context.Background(), "Other", "malee@example.org", "other", "pw")
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error on duplicate email, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc := NewService(newMockRepo())
	register(t, svc)

	for _, login := range []string{"malee", "malee@example.org"} {
		u, err := svc.Login(context.Background(), login, "s3cret")
		if err != nil {
			t.Fatalf("login %q: unexpected error: %v", login, err)
		}
		if u.Username != "malee" {
			t.Errorf("login %q: unexpected user %s", login, u.Username)
		}
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewService(newMockRepo())
	register(t, svc)

	_, err := svc.Login(context.Background(), "malee", "wrong")
	if apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Errorf("expected unauthorized, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.Login(context.Background(), "ghost", "pw")
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestToggleStatus(t *testing.T) {
	svc := NewService(newMockRepo())
	register(t, svc)

	status, err := svc.ToggleStatus(context.Background(), "malee")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !status {
		t.Error("expected status toggled on")
	}
	status, err = svc.ToggleStatus(context.Background(), "malee")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status {
		t.Error("expected status toggled back off")
	}
}

func TestResetPassword(t *testing.T) {
	svc := NewService(newMockRepo())
	register(t, svc)

	if err := svc.ResetPassword(context.Background(), "malee", "newpw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Login(context.Background(), "malee", "newpw"); err != nil {
		t.Errorf("expected login with new password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "malee", "s3cret"); err == nil {
		t.Error("expected old password rejected")
	}
}

func TestUpdate_NoFields(t *testing.T) {
	svc := NewService(newMockRepo())
	register(t, svc)

	err := svc.Update(context.Background(), "malee", UpdateFields{})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestDelete_Unknown(t *testing.T) {
	svc := NewService(newMockRepo())

	err := svc.Delete(context.Background(), "ghost")
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}
