package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"escritorio_app_go/models"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// SessionTokenLength is the length of the session token in bytes (64 chars hex)
	SessionTokenLength = 32
	// DefaultSessionDuration is how long a login stays valid
	DefaultSessionDuration = 8 * time.Hour
)

// Demonstration credentials. Digests are unsalted SHA-256 of the password;
// this table is not a security boundary.
var usuarios = []models.Usuario{
	{
		Nome:      "Administrador",
		Email:     "admin@escritorio.com",
		CPF:       "52998224725",
		Tipo:      models.RoleAdmin,
		Ativo:     true,
		SenhaHash: "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9",
	},
	{
		Nome:      "Dr. Silva",
		Email:     "silva@escritorio.com",
		CPF:       "11144477735",
		Tipo:      models.RoleAdvogado,
		Ativo:     true,
		SenhaHash: "fea5719a85f7b586ac9d1a8ad140fbebc9b1113a1ecdf12a47197c3bd575acec",
	},
	{
		Nome:      "Estagiário",
		Email:     "estagio@escritorio.com",
		CPF:       "12345678909",
		Tipo:      models.RoleEstagio,
		Ativo:     false,
		SenhaHash: "31bb05de749b80fdaad6c5905f27d713dedc172cba167473522aba29859894b3",
	},
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// HashSenha returns the hex SHA-256 digest stored in the credential table
func HashSenha(senha string) string {
	sum := sha256.Sum256([]byte(senha))
	return hex.EncodeToString(sum[:])
}

// IsValidEmail checks the basic shape of an e-mail address
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidCPF validates the two check digits of a Brazilian CPF. Dots and
// dashes are ignored; repeated-digit sequences are rejected.
func IsValidCPF(cpf string) bool {
	if strings.ContainsFunc(cpf, func(r rune) bool { return (r < '0' || r > '9') && r != '.' && r != '-' }) {
		return false
	}
	digits := onlyDigits(cpf)
	if len(digits) != 11 {
		return false
	}
	if strings.Count(digits, digits[:1]) == 11 {
		return false
	}

	for _, n := range []int{9, 10} {
		sum := 0
		for i := 0; i < n; i++ {
			sum += int(digits[i]-'0') * (n + 1 - i)
		}
		check := sum * 10 % 11
		if check == 10 {
			check = 0
		}
		if check != int(digits[n]-'0') {
			return false
		}
	}
	return true
}

// ValidateIdentifier normalizes a login identifier. E-mails are lower-cased
// and CPFs reduced to their digits.
func ValidateIdentifier(usuario string) (string, error) {
	usuario = strings.TrimSpace(usuario)
	if IsValidEmail(usuario) {
		return strings.ToLower(usuario), nil
	}
	if IsValidCPF(usuario) {
		return onlyDigits(usuario), nil
	}
	return "", ErrInvalidIdentifier
}

// FindUsuario looks a user up by normalized e-mail or CPF
func FindUsuario(identifier string) (*models.Usuario, bool) {
	for i := range usuarios {
		u := usuarios[i]
		if strings.EqualFold(u.Email, identifier) || u.CPF == identifier {
			return &u, true
		}
	}
	return nil, false
}

// Authenticate checks the credentials against the demonstration table.
// The password is checked before the active flag.
func Authenticate(usuario, senha string) (*models.Usuario, error) {
	identifier, err := ValidateIdentifier(usuario)
	if err != nil {
		return nil, err
	}

	u, ok := FindUsuario(identifier)
	if !ok {
		return nil, ErrUserNotFound
	}
	if HashSenha(senha) != u.SenhaHash {
		return nil, ErrWrongPassword
	}
	if !u.Ativo {
		return nil, ErrUserInactive
	}
	return u, nil
}

// GenerateSessionToken generates a cryptographically secure random token
func GenerateSessionToken() (string, error) {
	bytes := make([]byte, SessionTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// CreateSession creates a new session for a user
func CreateSession(db *gorm.DB, userEmail, ipAddress, userAgent string) (*models.Session, error) {
	token, err := GenerateSessionToken()
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:        uuid.New().String(),
		UserEmail: userEmail,
		Token:     token,
		ExpiresAt: time.Now().Add(DefaultSessionDuration),
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}

	if err := db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// ValidateSession validates a session token and returns the session if valid
func ValidateSession(db *gorm.DB, token string) (*models.Session, error) {
	var session models.Session

	err := db.Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to validate session: %w", err)
	}

	if session.IsExpired() {
		db.Delete(&session)
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// DeleteSession deletes a session (logout)
func DeleteSession(db *gorm.DB, token string) error {
	result := db.Where("token = ?", token).Delete(&models.Session{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete session: %w", result.Error)
	}
	return nil
}

// CleanupExpiredSessions removes all expired sessions from the database
func CleanupExpiredSessions(db *gorm.DB) error {
	result := db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
	if result.Error != nil {
		return fmt.Errorf("failed to cleanup expired sessions: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		log.Printf("[INFO] Cleaned up %d expired sessions", result.RowsAffected)
	}
	return nil
}

// LogSecurityEvent logs security-related events
func LogSecurityEvent(eventType, user, details string) {
	log.Printf("[SECURITY] %s | User: %s | Details: %s", eventType, user, details)
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
