// internal/infra/config/config.go
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the environment configuration for the storefront service.
type Config struct {
	Port      string
	GCPCreds  string
	ProjectID string

	// Firestore
	FirestoreCredentialsFile string

	// Object storage
	ImageBucket string

	// Auth
	AdminUID string

	// Square checkout
	SquareAccessToken string
	SquareEnv         string // "production" or anything else (sandbox)
	SquareLocationID  string
	SquareRedirectURL string

	// Contact transports
	SendGridAPIKey string
	SendGridFrom   string
	ReceiverEmail  string
	WhatsAppToken  string
	WhatsAppURL    string
	WhatsAppTo     string

	// CORS
	AllowedOrigin string
}

// Load reads configuration from the environment. A local .env file is loaded
// first when present (never on Cloud Run, where K_SERVICE is set).
func Load() *Config {
	if _, onCloudRun := os.LookupEnv("K_SERVICE"); !onCloudRun {
		if err := godotenv.Load(); err == nil {
			log.Printf("[config] .env loaded")
		}
	}

	cfg := &Config{
		Port:      getenvDefault("PORT", "8080"),
		GCPCreds:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		ProjectID: resolveProjectID(),

		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),

		ImageBucket: getenvDefault("IMAGE_BUCKET", "radacycling-images"),

		AdminUID: os.Getenv("ADMIN_UID"),

		SquareAccessToken: os.Getenv("SQUARE_ACCESS_TOKEN"),
		SquareEnv:         getenvDefault("SQUARE_ENV", "sandbox"),
		SquareLocationID:  os.Getenv("SQUARE_LOCATION_ID"),
		SquareRedirectURL: os.Getenv("SQUARE_REDIRECT_URL"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		SendGridFrom:   os.Getenv("SENDGRID_FROM"),
		ReceiverEmail:  os.Getenv("RECEIVER_EMAIL"),
		WhatsAppToken:  os.Getenv("WHATSAPP_TOKEN"),
		WhatsAppURL:    os.Getenv("WHATSAPP_ENDPOINT"),
		WhatsAppTo:     os.Getenv("WHATSAPP_TO"),

		AllowedOrigin: getenvDefault("ALLOWED_ORIGIN", "https://radacycling.com"),
	}

	return cfg
}

// resolveProjectID picks the GCP project ID from the usual suspects, in order.
func resolveProjectID() string {
	for _, k := range []string{
		"FIRESTORE_PROJECT_ID",
		"GCP_PROJECT_ID",
		"GOOGLE_CLOUD_PROJECT",
		"FIREBASE_PROJECT_ID",
	} {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
