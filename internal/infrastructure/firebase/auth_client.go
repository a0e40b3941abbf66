package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"

	"nexar/internal/domain/entity"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// AuthClient wraps the Firebase Admin SDK plus the Identity Toolkit REST
// endpoints that the admin SDK does not cover (password sign-in, password
// reset emails).
type AuthClient struct {
	client     *auth.Client
	apiKey     string
	httpClient *http.Client
}

func NewAuthClient(client *auth.Client, apiKey string) *AuthClient {
	return &AuthClient{
		client:     client,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *AuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

func (f *AuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

func (f *AuthClient) GetIdentity(ctx context.Context, uid string) (*entity.Identity, error) {
	user, err := f.client.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &entity.Identity{
		UID:         user.UID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}, nil
}

func (f *AuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	params := (&auth.UserToUpdate{}).
		Password(newPassword)

	_, err := f.client.UpdateUser(ctx, uid, params)
	if err != nil {
		return err
	}

	return nil
}

// IsEmailExists reports whether the error came back from the auth provider
// because the email is already registered.
func (f *AuthClient) IsEmailExists(err error) bool {
	return auth.IsEmailAlreadyExists(err)
}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
}

type restError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithEmailPassword authenticates against the Identity Toolkit REST
// API and returns the ID token, refresh token and uid.
func (f *AuthClient) SignInWithEmailPassword(email, password string) (string, string, string, error) {
	body, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", "", "", err
	}

	url := fmt.Sprintf("%s/accounts:signInWithPassword?key=%s", identityToolkitURL, f.apiKey)
	resp, err := f.httpClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", "", "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", "", err
	}

	if resp.StatusCode != http.StatusOK {
		var restErr restError
		if err := json.Unmarshal(respBody, &restErr); err == nil && restErr.Error.Message != "" {
			return "", "", "", fmt.Errorf("sign in failed: %s", restErr.Error.Message)
		}
		return "", "", "", fmt.Errorf("sign in failed with status %d", resp.StatusCode)
	}

	var result signInResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", "", "", err
	}

	return result.IDToken, result.RefreshToken, result.LocalID, nil
}

// SendPasswordReset asks the auth provider to email a password-reset link.
func (f *AuthClient) SendPasswordReset(ctx context.Context, email string) error {
	body, err := json.Marshal(map[string]interface{}{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/accounts:sendOobCode?key=%s", identityToolkitURL, f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		var restErr restError
		if err := json.Unmarshal(respBody, &restErr); err == nil && restErr.Error.Message != "" {
			return fmt.Errorf("password reset failed: %s", restErr.Error.Message)
		}
		return fmt.Errorf("password reset failed with status %d", resp.StatusCode)
	}

	return nil
}
